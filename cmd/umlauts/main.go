// Command umlauts restores umlauts and ß in German text read from stdin.
//
//	umlauts -dict de.txt < input.txt > output.txt
//	umlauts -build < raw-words.txt > de.txt
//
// Settings may also be given as environment variables or in a .env file:
// UMLAUTS_DICT names the dictionary, and UMLAUT_CACHESIZE,
// UMLAUT_MAXREPLACEMENTS and UMLAUT_MAXCOMPOUNDRUNES set the limits of the
// same name.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/umlaut"
	"github.com/npillmayer/umlaut/wordlist"
)

// diag receives tracing output and statistics.
var diag io.Writer = os.Stderr

// logSelector hands out one shared tracer for every key.
type logSelector struct {
	trace tracing.Trace
}

func (sel logSelector) Select(string) tracing.Trace {
	return sel.trace
}

// traceTo routes all tracing to a Go logger writing to w.
func traceTo(w io.Writer, level tracing.TraceLevel) {
	t := gologadapter.New()
	t.SetTraceLevel(level)
	t.SetOutput(w)
	tracing.SetTraceSelector(logSelector{trace: t})
}

func main() {
	_ = godotenv.Load() // a missing .env is fine
	dictPath := flag.String("dict", os.Getenv("UMLAUTS_DICT"), "sorted word list, one word per line")
	build := flag.Bool("build", false, "sort and deduplicate a raw word list from stdin")
	verbose := flag.Bool("v", false, "trace decisions to stderr")
	flag.Parse()

	if *verbose {
		traceTo(diag, tracing.LevelDebug)
	}
	var err error
	if *build {
		var n int
		n, err = wordlist.Write(os.Stdout, os.Stdin)
		if err == nil && *verbose {
			fmt.Fprintf(diag, "wrote %d words\n", n)
		}
	} else {
		err = run(*dictPath, os.Stdin, os.Stdout, *verbose)
	}
	if err != nil {
		fmt.Fprintf(diag, "umlauts: %v\n", err)
		os.Exit(1)
	}
}

func run(dictPath string, in io.Reader, out io.Writer, verbose bool) error {
	if dictPath == "" {
		return errors.New("no dictionary given (use -dict or UMLAUTS_DICT)")
	}
	f, err := os.Open(dictPath)
	if err != nil {
		return err
	}
	defer f.Close()
	dict, err := umlaut.LoadDictionary(dictPath, f)
	if err != nil {
		return err
	}
	if err = dict.Verify(); err != nil {
		return err
	}
	subst := umlaut.NewSubstituter(dict, umlaut.OptionsFromConfig(envConfig{})...)
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	for {
		line, rerr := r.ReadString('\n')
		if line != "" {
			if _, err = w.WriteString(subst.Substitute(line)); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	if verbose {
		stats := subst.Stats()
		fmt.Fprintf(diag, "%d words, %d changed\n", stats.Words, stats.Changed)
	}
	return w.Flush()
}

// envConfig is a schuko.Configuration backed by environment variables:
// key "umlaut.cachesize" is read from UMLAUT_CACHESIZE.
type envConfig struct{}

func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (envConfig) InitDefaults() {}

func (envConfig) IsSet(key string) bool {
	_, ok := os.LookupEnv(envKey(key))
	return ok
}

func (envConfig) GetString(key string) string {
	return os.Getenv(envKey(key))
}

func (c envConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c envConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (envConfig) IsInteractive() bool { return false }
