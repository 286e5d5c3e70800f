package umlaut

import (
	"iter"
	"strings"
	"sync/atomic"
)

// sentinel closes the last word of an input. It is not a word constituent
// and never part of the output.
const sentinel = '\x00'

// Substituter replaces digraphs in German text by umlauts and ß, wherever
// this results in valid words.
//
// A Substituter is safe for concurrent use.
type Substituter struct {
	oracle  *Oracle
	opts    options
	words   atomic.Int64
	changed atomic.Int64
}

// Stats reports counters of a Substituter.
type Stats struct {
	Words   int64 // words inspected
	Changed int64 // words replaced by a different spelling
}

// NewSubstituter creates a Substituter checking words against dict.
func NewSubstituter(dict *Dictionary, opts ...Option) *Substituter {
	o := applyOptions(opts)
	return &Substituter{
		oracle: newOracle(dict, o),
		opts:   o,
	}
}

// Oracle returns the validity oracle used by s.
func (s *Substituter) Oracle() *Oracle {
	return s.oracle
}

// Stats returns the counters accumulated since s was created.
func (s *Substituter) Stats() Stats {
	return Stats{
		Words:   s.words.Load(),
		Changed: s.changed.Load(),
	}
}

// Substitute returns input with digraphs replaced by native characters.
// Words for which no valid replacement exists, and all characters in
// between words, are copied unchanged.
//
//	"Ich mag Aepfel, aber nicht Aerger." => "Ich mag Äpfel, aber nicht Ärger."
func (s *Substituter) Substitute(input string) string {
	tracer().Debugf("working on input %q", input)
	var out strings.Builder
	out.Grow(len(input) + 1)
	machine := newStateMachine()
	for r := range withSentinel(input) {
		switch machine.transition(r) {
		case transitionExternal:
			out.WriteRune(r)
		case transitionEntered, transitionInternal:
			// wait for the word to be complete
		case transitionExited:
			word := machine.currentWord()
			out.WriteString(s.decide(word))
			out.WriteRune(r) // the character which ended the word
		}
	}
	output, ok := strings.CutSuffix(out.String(), string(sentinel))
	if !ok {
		tracer().Errorf("sentinel missing at end of output for input %q", input)
		return input
	}
	tracer().Debugf("output is %q", output)
	return output
}

// Apply is Substitute in the form of a text transformation step which may
// fail. It never returns an error.
func (s *Substituter) Apply(input string) (string, error) {
	return s.Substitute(input), nil
}

// decide returns the first valid candidate spelling of word, or its
// original content.
func (s *Substituter) decide(word *Word) string {
	s.words.Add(1)
	original := word.Content()
	if n := len(word.Replacements()); n > s.opts.maxReplacements {
		tracer().Infof("word %q has %d replacement opportunities, leaving it unchanged", original, n)
		return original
	}
	for candidate := range word.Candidates() {
		if s.oracle.IsValid(candidate) {
			tracer().Debugf("replacing %q by %q", original, candidate)
			s.changed.Add(1)
			return candidate
		}
	}
	return original
}

func withSentinel(input string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range input {
			if !yield(r) {
				return
			}
		}
		yield(sentinel)
	}
}
