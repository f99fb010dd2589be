// Package dictionary reads word lists and normalizes them for a game: accents are
// removed, words are lower cased and only words of the game length are kept.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/powellquiring/wordlehelper/wordle"
)

//go:embed words.txt
var embeddedWords string

type Options struct {
	WordLength int  // 0 is wordle.DefaultWordLength
	Progress   bool // show a progress bar while reading a file
}

func (o Options) wordLength() int {
	if o.WordLength <= 0 {
		return wordle.DefaultWordLength
	}
	return o.WordLength
}

// Normalize strips accents and case, ok is false if the result is not a plain a-z word
func Normalize(word string) (string, bool) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ret, _, err := transform.String(t, strings.TrimSpace(word))
	if err != nil {
		return "", false
	}
	ret = strings.ToLower(ret)
	if ret == "" {
		return "", false
	}
	for _, r := range ret {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return ret, true
}

// Load reads one word per line. Words that do not normalize or have the wrong
// length are skipped, duplicates are dropped keeping the first.
func Load(r io.Reader, opts Options) ([]string, error) {
	length := opts.wordLength()
	seen := make(map[string]bool)
	ret := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word, ok := Normalize(sc.Text())
		if !ok || len(word) != length || seen[word] {
			continue
		}
		seen[word] = true
		ret = append(ret, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return ret, nil
}

// LoadFile reads the dictionary at path
func LoadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.DefaultBytes(info.Size(), "loading "+path)
	} else {
		bar = progressbar.DefaultBytesSilent(info.Size())
	}
	defer bar.Finish()
	return Load(io.TeeReader(f, bar), opts)
}

// Default returns the embedded word list filtered to length letters
func Default(length int) []string {
	ret, err := Load(strings.NewReader(embeddedWords), Options{WordLength: length})
	if err != nil {
		panic("embedded dictionary: " + err.Error())
	}
	return ret
}
