package wordle

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set"
)

// Letter is a single lower case letter of a word
type Letter rune

// Feedback is the color the game shows for one letter of a guess
type Feedback uint8

const (
	Absent Feedback = iota
	Present
	Confirmed
)

// NewLetter returns the canonical (lower case) letter, ok is false for non letters
func NewLetter(r rune) (Letter, bool) {
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return Letter(unicode.ToLower(r)), true
}

func (l Letter) String() string {
	return string(rune(l))
}

// ParseFeedback converts a color code: r (grey), y (yellow), g (green)
func ParseFeedback(code rune) (Feedback, bool) {
	switch unicode.ToLower(code) {
	case 'r':
		return Absent, true
	case 'y':
		return Present, true
	case 'g':
		return Confirmed, true
	}
	return 0, false
}

// ParseFeedbackName converts a color name, grey gray yellow or green, or a single code
func ParseFeedbackName(name string) (Feedback, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grey", "gray":
		return Absent, true
	case "yellow":
		return Present, true
	case "green":
		return Confirmed, true
	}
	if len(name) == 1 {
		return ParseFeedback(rune(name[0]))
	}
	return 0, false
}

func (f Feedback) Code() byte {
	switch f {
	case Absent:
		return 'r'
	case Present:
		return 'y'
	case Confirmed:
		return 'g'
	}
	panic("Can not parse Feedback: " + strconv.Itoa(int(f)))
}

func (f Feedback) String() string {
	switch f {
	case Absent:
		return "grey"
	case Present:
		return "yellow"
	case Confirmed:
		return "green"
	}
	return "Feedback(" + strconv.Itoa(int(f)) + ")"
}

// LetterSet is an unordered set of letters
type LetterSet struct {
	set mapset.Set
}

func NewLetterSet(letters ...Letter) LetterSet {
	ret := LetterSet{set: mapset.NewThreadUnsafeSet()}
	for _, l := range letters {
		ret.set.Add(l)
	}
	return ret
}

func (ls LetterSet) Add(l Letter) {
	ls.set.Add(l)
}

func (ls LetterSet) Contains(l Letter) bool {
	return ls.set.Contains(l)
}

func (ls LetterSet) Len() int {
	return ls.set.Cardinality()
}

func (ls LetterSet) Clear() {
	ls.set.Clear()
}

func (ls LetterSet) Clone() LetterSet {
	return LetterSet{set: ls.set.Clone()}
}

// Union returns a new set, ls and other are unchanged
func (ls LetterSet) Union(other LetterSet) LetterSet {
	return LetterSet{set: ls.set.Union(other.set)}
}

// Difference returns the letters of ls not in other
func (ls LetterSet) Difference(other LetterSet) LetterSet {
	return LetterSet{set: ls.set.Difference(other.set)}
}

// Slice returns the letters in alphabetical order
func (ls LetterSet) Slice() []Letter {
	ret := make([]Letter, 0, ls.set.Cardinality())
	for _, item := range ls.set.ToSlice() {
		ret = append(ret, item.(Letter))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

func (ls LetterSet) String() string {
	var sb strings.Builder
	for _, l := range ls.Slice() {
		sb.WriteRune(rune(l))
	}
	return sb.String()
}
