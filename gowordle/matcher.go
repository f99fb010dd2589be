package gowordle

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/wordlehelper/wordle"
)

/*
WordleMatcher indexes a dictionary so the candidate passes become set algebra.

letters[0]['a'] all words whose first letter is an a, [1] second letter is an a, ...
contains['a'] all words with one or more a

a word is represented by it's index into words
*/
type WordleMatcher struct {
	words        []string
	stringToWord map[string]uint
	length       int
	valid        *bitset.BitSet // words with the right number of letters
	letters      []map[wordle.Letter]*bitset.BitSet
	contains     map[wordle.Letter]*bitset.BitSet
}

// NewWordleMatcher indexes words of length letters
func NewWordleMatcher(words []string, length int) *WordleMatcher {
	n := uint(len(words))
	ret := &WordleMatcher{
		words:        words,
		stringToWord: make(map[string]uint, len(words)),
		length:       length,
		valid:        bitset.New(n),
		letters:      make([]map[wordle.Letter]*bitset.BitSet, length),
		contains:     make(map[wordle.Letter]*bitset.BitSet, 26),
	}
	for l := range ret.letters {
		ret.letters[l] = make(map[wordle.Letter]*bitset.BitSet)
	}
	for w, word := range words {
		if _, ok := ret.stringToWord[word]; !ok {
			ret.stringToWord[word] = uint(w)
		}
		runes := []rune(word)
		if len(runes) != length {
			continue
		}
		ret.valid.Set(uint(w))
		for l, r := range runes {
			letter := wordle.Letter(r)
			if _, ok := ret.letters[l][letter]; !ok {
				ret.letters[l][letter] = bitset.New(n)
			}
			ret.letters[l][letter].Set(uint(w))
			if _, ok := ret.contains[letter]; !ok {
				ret.contains[letter] = bitset.New(n)
			}
			ret.contains[letter].Set(uint(w))
		}
	}
	return ret
}

func (wd *WordleMatcher) Len() int {
	return len(wd.words)
}

// Matching returns the indexed words allowed by the constraints as a set of indices
func (wd *WordleMatcher) Matching(cs *wordle.ConstraintSet) *bitset.BitSet {
	ret := wd.valid.Clone()
	if cs.Len() != wd.length || cs.Contradictory() {
		return ret.ClearAll()
	}
	grey := cs.Grey()

	// grey letters remove every word that contains them
	for _, letter := range grey.Slice() {
		if set, ok := wd.contains[letter]; ok {
			ret.InPlaceDifference(set)
		}
	}

	// every yellow letter must be somewhere in the word
	for _, letter := range cs.MustContain().Slice() {
		set, ok := wd.contains[letter]
		if !ok {
			return ret.ClearAll()
		}
		ret.InPlaceIntersection(set)
	}

	// greens keep only the matching letter, yellow and grey letters are removed from
	// the position they were guessed at and grey letters from every position that is
	// not green
	for l := 0; l < wd.length; l++ {
		position := cs.Position(l)
		excluded := position.ExcludedHere.Union(position.AbsentHere)
		if position.IsConfirmed() {
			set, ok := wd.letters[l][position.Confirmed]
			if !ok {
				return ret.ClearAll()
			}
			ret.InPlaceIntersection(set)
		} else {
			excluded = excluded.Union(grey)
		}
		for _, letter := range excluded.Slice() {
			// words may not exist with this letter
			if set, ok := wd.letters[l][letter]; ok {
				ret.InPlaceDifference(set)
			}
		}
	}
	return ret
}

// Evaluate implements wordle.Filter. Candidates that were not indexed are checked
// one by one.
func (wd *WordleMatcher) Evaluate(cs *wordle.ConstraintSet, candidates []string) []string {
	matching := wd.Matching(cs)
	var query *wordle.Query
	ret := make([]string, 0, len(candidates))
	for _, word := range candidates {
		if w, ok := wd.stringToWord[word]; ok {
			if matching.Test(w) {
				ret = append(ret, word)
			}
			continue
		}
		if query == nil {
			query = wordle.NewQuery(cs)
		}
		if query.Match(word) {
			ret = append(ret, word)
		}
	}
	return ret
}

// Words returns the indexed words in the set, in dictionary order
func (wd *WordleMatcher) Words(set *bitset.BitSet) []string {
	indices := make([]uint, set.Count())
	set.NextSetMany(0, indices)
	ret := make([]string, len(indices))
	for i, index := range indices {
		ret[i] = wd.words[index]
	}
	return ret
}
