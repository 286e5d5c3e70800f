/*
Package wordlist reads raw German word lists and prepares them for use as an
umlaut.Dictionary.

Raw lists contain one word per line, in any order, possibly with duplicates.
Blank lines and lines starting with '#' are ignored, as is leading and
trailing white space. Build sorts and deduplicates a raw list, which is
what umlaut.Dictionary requires.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/umlaut"
)

// Reader streams words from a raw word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader for a raw word list.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the line number of the word most recently returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		word := strings.TrimSpace(r.scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		return word, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("word list, line %d: %w", r.line+1, err)
	}
	return "", io.EOF
}

// Words reads all words from reader, sorted in ascending byte order and
// without duplicates.
func Words(reader io.Reader) ([]string, error) {
	r := NewReader(reader)
	words := make([]string, 0, 1024)
	for {
		word, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	slices.Sort(words)
	return slices.Compact(words), nil
}

// Build reads a raw word list and returns it as a dictionary. The dictionary
// is verified before it is returned.
func Build(name string, reader io.Reader) (*umlaut.Dictionary, error) {
	words, err := Words(reader)
	if err != nil {
		return nil, err
	}
	dict := umlaut.NewDictionary(name, strings.Join(words, "\n"))
	if err = dict.Verify(); err != nil {
		return nil, err
	}
	return dict, nil
}

// Write reads a raw word list and writes it to w in dictionary format, one
// word per line.
func Write(w io.Writer, reader io.Reader) (int, error) {
	words, err := Words(reader)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err = bw.WriteString(word); err != nil {
			return 0, err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return 0, err
		}
	}
	return len(words), bw.Flush()
}
