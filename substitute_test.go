package umlaut

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "umlaut")
	defer teardown()
	//
	s := NewSubstituter(mustLoadFixture(t))
	tests := []struct {
		input string
		want  string
	}{
		{"\x00Kuebel", "\x00Kübel"},
		{"\x00Duebel\x00", "\x00Dübel\x00"},
		{"🤩Duebel", "🤩Dübel"},
		{"🤩Duebel🤐", "🤩Dübel🤐"},
		{"Dübel", "Dübel"},
		{"Abenteuer sind toll!", "Abenteuer sind toll!"},
		{"Koeffizient", "Koeffizient"},
		{"kongruent", "kongruent"},
		{"Ich mag Aepfel, aber nicht Aerger.", "Ich mag Äpfel, aber nicht Ärger."},
		{"Ich mag AEPFEL!! 😍", "Ich mag ÄPFEL!! 😍"},
		{"Wer mag Aepfel?!", "Wer mag Äpfel?!"},
		{"Was sind aepfel?", "Was sind aepfel?"},
		{"Oel ist ein wichtiger Bestandteil von Oel.", "Öl ist ein wichtiger Bestandteil von Öl."},
		{"WARUM SCHLIESSEN WIR NICHT AB?", "WARUM SCHLIEẞEN WIR NICHT AB?"},
		{"Wir schliessen nicht ab.", "Wir schließen nicht ab."},
		{"WiR sChLieSsEn ab!", "WiR sChLieẞEn ab!"},
		{"WiR sChLiesSEn vieLleEcHt aB.", "WiR sChLießEn vieLleEcHt aB."},
		{"Suess!", "Süß!"},
		{"Suess", "Süß"},
		{"SUESS", "SÜẞ"},
		{"SUESSWASSER", "SÜẞWASSER"},
		{"Mauerduebelkuebel", "Mauerdübelkübel"},
		{"Suesswasserschwimmbaeder", "Süßwasserschwimmbäder"},
		{"", ""},
		{"\x00", "\x00"},
		{" \t\n42 ", " \t\n42 "},
		{"Привет, 你好 и مرحبا!", "Привет, 你好 и مرحبا!"},
	}
	for _, tt := range tests {
		if got := s.Substitute(tt.input); got != tt.want {
			t.Errorf("Substitute(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSubstituteIsIdempotent(t *testing.T) {
	s := NewSubstituter(mustLoadFixture(t))
	inputs := []string{
		"Aepfel", "AEPFEL", "Suess", "SUESS", "Oel", "SCHLIESSEN", "sChLieSsEn",
		"Mauerduebelkuebel", "Kuebel",
	}
	for _, input := range inputs {
		once := s.Substitute(input)
		if once == input {
			t.Errorf("expected %q to be changed", input)
			continue
		}
		if twice := s.Substitute(once); twice != once {
			t.Errorf("Substitute(%q) = %q, but re-running gives %q", input, once, twice)
		}
	}
}

func TestSubstituteLeavesUnknownWords(t *testing.T) {
	s := NewSubstituter(mustLoadFixture(t))
	inputs := []string{
		"Haus und Hof",
		"Quelle, Feuer, Wasser",
		"Kaese Boese Muesli Strasse",
		"aeoeuess",
	}
	for _, input := range inputs {
		if got := s.Substitute(input); got != input {
			t.Errorf("expected %q to stay unchanged, got %q", input, got)
		}
	}
	stats := s.Stats()
	if stats.Changed != 0 || stats.Words != 11 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestSubstituteReplacementLimit(t *testing.T) {
	s := NewSubstituter(mustLoadFixture(t), MaxReplacements(1))
	if got := s.Substitute("Suess"); got != "Suess" {
		t.Fatalf("expected word beyond the replacement limit to stay unchanged, got %q", got)
	}
	if got := s.Substitute("Oel"); got != "Öl" {
		t.Fatalf("expected Oel to become Öl, got %q", got)
	}
}

func TestApplyNeverFails(t *testing.T) {
	s := NewSubstituter(mustLoadFixture(t))
	for _, input := range []string{"", "\xff\xfe", "Aerger", strings.Repeat("ss", 100)} {
		if _, err := s.Apply(input); err != nil {
			t.Errorf("Apply(%q) failed: %v", input, err)
		}
	}
}

func TestSubstituteConcurrently(t *testing.T) {
	s := NewSubstituter(mustLoadFixture(t), CacheSize(4))
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got := s.Substitute("Ich mag Aepfel, aber nicht Aerger."); got != "Ich mag Äpfel, aber nicht Ärger." {
					t.Errorf("unexpected result %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
