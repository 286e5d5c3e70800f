package umlaut

import "unicode/utf8"

// IsCompoundWord reports whether word is a concatenation of at least two
// standalone words, as is common in German ("Mauerdübelkübel" = "Mauer" +
// "dübel" + "kübel"). Only the first part carries the capitalization of
// the compound; all other parts appear in lowercase, even if they are nouns.
//
// The first part has to be a dictionary word in titlecase or lowercase. The
// remainder is checked by the oracle, which makes it either a single word or
// a compound itself.
func (o *Oracle) IsCompoundWord(word string) bool {
	_, ok := o.compoundSplit(word)
	return ok
}

// SplitCompound decomposes a compound word into its parts. It returns false
// if word is not a compound word.
func (o *Oracle) SplitCompound(word string) ([]string, bool) {
	at, ok := o.compoundSplit(word)
	if !ok {
		return nil, false
	}
	parts := []string{word[:at]}
	tail := word[at:]
	for !o.isStandalone(tail) {
		if at, ok = o.compoundSplit(tail); !ok {
			break
		}
		parts = append(parts, tail[:at])
		tail = tail[at:]
	}
	return append(parts, tail), true
}

// compoundSplit finds the first position to split word into a standalone
// head and a valid tail. Split positions are tried from the shortest head
// to the longest. The returned position is a byte offset.
func (o *Oracle) compoundSplit(word string) (int, bool) {
	if n := utf8.RuneCountInString(word); n < 2 || n > o.opts.maxCompoundRunes {
		return 0, false
	}
	for at := range word {
		if at == 0 {
			continue
		}
		head, tail := word[:at], word[at:]
		if o.isStandalone(head) && o.IsValid(ToTitle(tail)) {
			tracer().Debugf("compound %q = %q + %q", word, head, tail)
			return at, true
		}
	}
	return 0, false
}

func (o *Oracle) isStandalone(part string) bool {
	return o.dict.Contains(ToTitle(part)) || o.dict.Contains(lowercase(part))
}
