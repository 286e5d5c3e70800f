package umlaut

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordCasing classifies a word by the case of its letters.
type WordCasing uint8

// Casings recognized by ClassifyCasing.
const (
	AllLowercase WordCasing = iota // "haus"
	AllUppercase                   // "HAUS"
	Mixed                          // "hAuS"
	Titlecase                      // "Haus"
)

func (c WordCasing) String() string {
	switch c {
	case AllLowercase:
		return "AllLowercase"
	case AllUppercase:
		return "AllUppercase"
	case Mixed:
		return "Mixed"
	case Titlecase:
		return "Titlecase"
	}
	return "<unknown>"
}

// ErrEmptyWord is returned when classifying the empty string.
var ErrEmptyWord = errors.New("empty word has no casing")

// ErrUncased is returned when classifying a word containing characters
// without letter case (digits, punctuation, emoji, most non-Latin scripts).
var ErrUncased = errors.New("word contains uncased character")

// ClassifyCasing determines the casing of word.
//
// A single capital letter counts as Titlecase, not AllUppercase.
func ClassifyCasing(word string) (WordCasing, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}
	upper, lower := 0, 0
	firstUpper := false
	for i, r := range word {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			upper++
			firstUpper = firstUpper || i == 0
		case unicode.IsLower(r):
			lower++
		default:
			return 0, fmt.Errorf("%w: %q", ErrUncased, r)
		}
	}
	switch {
	case upper == 0:
		return AllLowercase, nil
	case upper == 1 && firstUpper:
		return Titlecase, nil
	case lower == 0:
		return AllUppercase, nil
	}
	return Mixed, nil
}

// ToTitle converts the first letter of word to upper case and all others
// to lower case, regardless of their casing in word.
//
//	"ABENTEUER"   => "Abenteuer"
//	"üBeRTrIeBeN" => "Übertrieben"
//	"ßEN"         => "ẞen"
//
// A leading ß becomes the capital ẞ instead of "Ss", so the spelling is kept.
func ToTitle(word string) string {
	for _, sharp := range []string{"ß", "ẞ"} {
		if rest, ok := strings.CutPrefix(word, sharp); ok {
			return "ẞ" + lowercase(rest)
		}
	}
	return cases.Title(language.German).String(word)
}

func lowercase(word string) string {
	return cases.Lower(language.German).String(word)
}
