package umlaut

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Oracle decides whether a string is a valid German word, given a
// dictionary and German casing conventions. Decisions are memoized per
// exact input string in a fixed-size LRU cache.
//
// An Oracle is safe for concurrent use.
type Oracle struct {
	dict  *Dictionary
	cache *lru.Cache[string, bool]
	opts  options
}

// NewOracle creates an oracle for dict.
func NewOracle(dict *Dictionary, opts ...Option) *Oracle {
	return newOracle(dict, applyOptions(opts))
}

func newOracle(dict *Dictionary, opts options) *Oracle {
	cache, err := lru.New[string, bool](opts.cacheSize)
	assert(err == nil, "cannot create validity cache")
	return &Oracle{
		dict:  dict,
		cache: cache,
		opts:  opts,
	}
}

// Dictionary returns the word list the oracle consults.
func (o *Oracle) Dictionary() *Dictionary {
	return o.dict
}

// IsValid reports whether word is an admissible German word.
//
//   - Lowercase words have to be in the dictionary. Nouns are never
//     assumed to occur in lowercase.
//   - Uppercase and mixed-case words are titlecased first
//     ("ABENTEUER" => "Abenteuer").
//   - Titlecase words are valid if they are in the dictionary (nouns), if
//     their lowercase form is valid (start of a sentence), or if they are a
//     compound word.
//
// Words containing uncased characters, and the empty string, are never valid.
func (o *Oracle) IsValid(word string) bool {
	if valid, ok := o.cache.Get(word); ok {
		return valid
	}
	valid := o.decide(word)
	o.cache.Add(word, valid)
	return valid
}

func (o *Oracle) decide(word string) bool {
	casing, err := ClassifyCasing(word)
	if err != nil {
		tracer().Debugf("candidate %q not classifiable: %v", word, err)
		return false
	}
	switch casing {
	case AllLowercase:
		return o.dict.Contains(word)
	case AllUppercase, Mixed:
		tc := ToTitle(word)
		if c, err := ClassifyCasing(tc); err != nil || c != Titlecase {
			tracer().Errorf("titlecased %q to %q, which is not classified as titlecase", word, tc)
			return false
		}
		return o.IsValid(tc)
	case Titlecase:
		return o.dict.Contains(word) ||
			o.IsValid(lowercase(word)) ||
			o.IsCompoundWord(word)
	}
	return false
}

// CacheLen returns the number of memoized decisions.
func (o *Oracle) CacheLen() int {
	return o.cache.Len()
}

// Purge drops all memoized decisions.
func (o *Oracle) Purge() {
	o.cache.Purge()
}
