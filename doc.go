/*
Package umlaut restores German orthography in text where umlauts and sharp-s
have been typed as ASCII digraphs ("ae", "oe", "ue", "ss").

Input text is segmented into words by a small state machine. While a word is
being read, every digraph which could stand for a native letter is recorded.
For a completed word, all non-empty combinations of these replacements are
tried in a fixed order, and the first candidate accepted by a validity oracle
is used. If no candidate is accepted, the word is left unchanged. Everything
in between words (punctuation, digits, whitespace, emoji, ...) is copied
through verbatim.

The oracle consults a sorted word list (see type Dictionary), taking German
casing conventions into account: nouns are capitalized, every word may be
capitalized at the start of a sentence, and compound words concatenate
standalone words with only the first part capitalized ("Mauerdübelkübel").

	dict, _ := umlaut.LoadDictionary(f)
	s := umlaut.NewSubstituter(dict)
	out := s.Substitute("Ich mag Aepfel, aber nicht Aerger.")
	// out = "Ich mag Äpfel, aber nicht Ärger."

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package umlaut

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'umlaut'
func tracer() tracing.Trace {
	return tracing.Select("umlaut")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
