package umlaut

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Dictionary is a read-only list of valid German words.
//
// The word list is kept as a single newline-separated text, sorted in
// ascending byte order without duplicates. It has to be the full list of
// words, not just the words containing umlauts or ß: compound words are
// checked by looking up their parts.
type Dictionary struct {
	words      string
	Identifier string // Identifies the dictionary
}

// Errors reported by Verify.
var (
	ErrUnsorted      = errors.New("dictionary is not sorted")
	ErrDuplicate     = errors.New("dictionary contains duplicate entries")
	ErrEmptyEntry    = errors.New("dictionary contains an empty entry")
	ErrFilteredWords = errors.New("dictionary contains no ASCII-only entries")
)

// NewDictionary wraps a newline-separated word list. The list is not
// copied or split; call Verify to check its invariants.
func NewDictionary(name string, words string) *Dictionary {
	words = strings.TrimSuffix(words, "\n")
	return &Dictionary{
		words:      words,
		Identifier: fmt.Sprintf("words: %s", name),
	}
}

// LoadDictionary reads a newline-separated word list from reader.
func LoadDictionary(name string, reader io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %q: %w", name, err)
	}
	dict := NewDictionary(name, string(data))
	tracer().Infof("loaded dictionary %q with %d words", name, dict.Len())
	return dict, nil
}

// Len returns the number of words in the dictionary.
func (dict *Dictionary) Len() int {
	if dict == nil || dict.words == "" {
		return 0
	}
	return strings.Count(dict.words, "\n") + 1
}

// Contains looks up word by a binary search directly over the word list.
//
// Entries have different lengths, so instead of indexing entries we probe
// a byte offset, widen it to the line around it and narrow the search range
// to line boundaries.
func (dict *Dictionary) Contains(word string) bool {
	if dict == nil {
		return false
	}
	words := dict.words
	lo, hi := 0, len(words) // lo is a line start, hi a line end
	for lo < hi {
		mid := lo + (hi-lo)/2
		start := lo
		if i := strings.LastIndexByte(words[lo:mid], '\n'); i >= 0 {
			start = lo + i + 1
		}
		end := hi
		if i := strings.IndexByte(words[mid:hi], '\n'); i >= 0 {
			end = mid + i
		}
		switch line := words[start:end]; {
		case line == word:
			return true
		case line < word:
			lo = end + 1
		case start > lo:
			hi = start - 1
		default:
			hi = lo
		}
	}
	return false
}

// Verify checks the invariants of the word list: entries are non-empty,
// strictly ascending (which rules out duplicates), and at least one entry
// consists of ASCII characters only.
func (dict *Dictionary) Verify() error {
	if dict == nil || dict.words == "" {
		return fmt.Errorf("%s: %w", dict.name(), ErrFilteredWords)
	}
	prev := ""
	sawASCII := false
	for n, line := range lines(dict.words) {
		switch {
		case line == "":
			return fmt.Errorf("%s, line %d: %w", dict.Identifier, n+1, ErrEmptyEntry)
		case n > 0 && line == prev:
			return fmt.Errorf("%s, line %d %q: %w", dict.Identifier, n+1, line, ErrDuplicate)
		case n > 0 && line < prev:
			return fmt.Errorf("%s, line %d %q after %q: %w", dict.Identifier, n+1, line, prev, ErrUnsorted)
		}
		sawASCII = sawASCII || isASCII(line)
		prev = line
	}
	if !sawASCII {
		return fmt.Errorf("%s: %w", dict.Identifier, ErrFilteredWords)
	}
	return nil
}

func (dict *Dictionary) name() string {
	if dict == nil {
		return "<nil dictionary>"
	}
	return dict.Identifier
}

// lines iterates over the lines of s together with their index.
func lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for {
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				yield(n, s)
				return
			}
			if !yield(n, s[:i]) {
				return
			}
			s = s[i+1:]
			n++
		}
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
