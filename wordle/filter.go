package wordle

// Filter returns the candidates still possible under the constraints. Candidate order
// is kept and the inputs are not modified.
type Filter interface {
	Evaluate(cs *ConstraintSet, candidates []string) []string
}

// FilterFunc adapts a function to the Filter interface
type FilterFunc func(cs *ConstraintSet, candidates []string) []string

func (f FilterFunc) Evaluate(cs *ConstraintSet, candidates []string) []string {
	return f(cs, candidates)
}

// Scan is the Filter that checks every candidate string directly
var Scan Filter = FilterFunc(Evaluate)

// Evaluate runs the grey, yellow and positional passes over candidates
func Evaluate(cs *ConstraintSet, candidates []string) []string {
	q := NewQuery(cs)
	ret := make([]string, 0, len(candidates))
	for _, word := range candidates {
		if q.Match(word) {
			ret = append(ret, word)
		}
	}
	return ret
}

// Query is a snapshot of a ConstraintSet prepared for matching many words
type Query struct {
	conflict    bool
	grey        LetterSet
	mustContain []Letter
	positions   []positionQuery
}

type positionQuery struct {
	confirmed Letter
	excluded  LetterSet // yellow or grey letters guessed here
}

func NewQuery(cs *ConstraintSet) *Query {
	ret := &Query{
		conflict:    cs.Contradictory(),
		grey:        cs.Grey(),
		mustContain: cs.mustContain.Slice(),
		positions:   make([]positionQuery, cs.Len()),
	}
	for i := range cs.positions {
		ret.positions[i] = positionQuery{
			confirmed: cs.positions[i].Confirmed,
			excluded:  cs.positions[i].ExcludedHere.Union(cs.positions[i].AbsentHere),
		}
	}
	return ret
}

func (q *Query) Match(word string) bool {
	letters := []Letter(nil)
	for _, r := range word {
		letters = append(letters, Letter(r))
	}
	if q.conflict || len(letters) != len(q.positions) {
		return false
	}
	return q.matchGrey(letters) && q.matchYellow(letters) && q.matchPositions(letters)
}

// matchGrey rejects words with a grey letter anywhere
func (q *Query) matchGrey(letters []Letter) bool {
	if q.grey.Len() == 0 {
		return true
	}
	for _, l := range letters {
		if q.grey.Contains(l) {
			return false
		}
	}
	return true
}

// matchYellow requires every yellow letter somewhere, one occurrence is enough
func (q *Query) matchYellow(letters []Letter) bool {
	return containsAll(letters, q.mustContain)
}

// matchPositions checks each letter against what was guessed at its position. A letter
// that came back grey here is rejected here even when another copy of it was green or
// yellow elsewhere in the same guess, so speed scored rrrgr still rules out an e at 2.
func (q *Query) matchPositions(letters []Letter) bool {
	for i, p := range q.positions {
		l := letters[i]
		if p.excluded.Contains(l) {
			return false
		}
		if p.confirmed != 0 {
			if l != p.confirmed {
				return false
			}
			continue
		}
		if q.grey.Contains(l) {
			return false
		}
	}
	return true
}

func containsAll(letters []Letter, required []Letter) bool {
	for _, r := range required {
		found := false
		for _, l := range letters {
			if l == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
