package umlaut

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// Replacement is an opportunity to replace a digraph within a word by a
// native German letter.
//
// Start and End are byte offsets into the word's content.
type Replacement struct {
	Start  int
	End    int
	Native rune
}

func (r Replacement) String() string {
	return fmt.Sprintf("[%d:%d]→%c", r.Start, r.End, r.Native)
}

// Word is a maximal run of word-constituent characters together with all the
// replacement opportunities found in it.
//
// Replacements are ordered by position and do not overlap.
type Word struct {
	content      []byte
	replacements []Replacement
	last         rune // most recently appended rune
	lastOffset   int  // byte offset of last
}

func newWord(r rune) *Word {
	w := &Word{
		content: make([]byte, 0, 16),
	}
	w.push(r)
	return w
}

// Content returns the original text of the word.
func (w *Word) Content() string {
	return string(w.content)
}

// Replacements returns the replacement opportunities of a word, in
// left-to-right order.
func (w *Word) Replacements() []Replacement {
	return w.replacements
}

func (w *Word) String() string {
	return fmt.Sprintf("%q%v", w.content, w.replacements)
}

// push appends r to the word and registers a replacement if the last two
// runes form a digraph.
func (w *Word) push(r rune) {
	offset := len(w.content)
	w.content = utf8.AppendRune(w.content, r)
	if offset > 0 {
		if native, ok := nativeFor(w.last, r); ok {
			n := len(w.replacements)
			if n == 0 || w.replacements[n-1].End <= w.lastOffset {
				w.replacements = append(w.replacements, Replacement{
					Start:  w.lastOffset,
					End:    len(w.content),
					Native: native,
				})
			}
		}
	}
	w.last = r
	w.lastOffset = offset
}

// apply replaces the spans of rr within the word's content. rr has to be
// ordered by position.
func (w *Word) apply(rr []Replacement) string {
	var b strings.Builder
	b.Grow(len(w.content))
	prev := 0
	for _, r := range rr {
		assert(r.Start >= prev, "replacements out of order")
		b.Write(w.content[prev:r.Start])
		b.WriteRune(r.Native)
		prev = r.End
	}
	b.Write(w.content[prev:])
	return b.String()
}

// --- Digraphs --------------------------------------------------------------

// digraphs maps every casing of a digraph to its native letter. The case of
// the native letter follows the case of the digraph's first letter.
var digraphs = func() *trie.Trie {
	t := trie.New()
	letters := []struct {
		lower, upper   string
		second         string
		small, capital rune
	}{
		{"a", "A", "e", 'ä', 'Ä'},
		{"o", "O", "e", 'ö', 'Ö'},
		{"u", "U", "e", 'ü', 'Ü'},
		{"s", "S", "s", 'ß', 'ẞ'},
	}
	for _, l := range letters {
		second := strings.ToUpper(l.second)
		t.Add(l.lower+l.second, l.small)
		t.Add(l.lower+second, l.small)
		t.Add(l.upper+l.second, l.capital)
		t.Add(l.upper+second, l.capital)
	}
	return t
}()

func nativeFor(first, second rune) (rune, bool) {
	if first >= utf8.RuneSelf || second >= utf8.RuneSelf {
		return 0, false
	}
	node, ok := digraphs.Find(string([]byte{byte(first), byte(second)}))
	if !ok {
		return 0, false
	}
	native, ok := node.Meta().(rune)
	return native, ok
}
