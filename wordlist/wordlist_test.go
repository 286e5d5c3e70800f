package wordlist

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`# German words
Mauer

  dübel
#Kübel
Öl
`)
	r := NewReader(src)
	for _, want := range []struct {
		word string
		line int
	}{{"Mauer", 2}, {"dübel", 4}, {"Öl", 6}} {
		word, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if word != want.word || r.Line() != want.line {
			t.Fatalf("got %q at line %d, want %q at line %d", word, r.Line(), want.word, want.line)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestWordsAreSortedAndUnique(t *testing.T) {
	words, err := Words(strings.NewReader("süß\nHaus\nÄpfel\nHaus\nab\nMauer\nsüß\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Haus", "Mauer", "ab", "süß", "Äpfel"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("words mismatch: got %v, want %v", words, want)
	}
}

func TestBuild(t *testing.T) {
	dict, err := Build("raw", strings.NewReader("Öl\nMauer\nkübel\nMauer\nDübel\n"))
	if err != nil {
		t.Fatal(err)
	}
	if dict.Len() != 4 {
		t.Fatalf("expected 4 words, got %d", dict.Len())
	}
	for _, word := range []string{"Dübel", "Mauer", "kübel", "Öl"} {
		if !dict.Contains(word) {
			t.Errorf("expected dictionary to contain %q", word)
		}
	}
}

func TestBuildRejectsFilteredList(t *testing.T) {
	if _, err := Build("umlauts-only", strings.NewReader("Öl\nÄpfel\nüber\n")); err == nil {
		t.Fatalf("expected a list without ASCII-only words to be rejected")
	}
}

func TestWriteReproducesFixture(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("..", "testdata", "de.txt"))
	if err != nil {
		t.Fatalf("cannot read fixture: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(fixture)), "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	var out bytes.Buffer
	n, err := Write(&out, strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(lines) {
		t.Fatalf("expected %d words written, got %d", len(lines), n)
	}
	if out.String() != string(fixture) {
		t.Fatalf("sorted output differs from fixture:\n%s", out.String())
	}
}
