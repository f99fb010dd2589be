package wordle

import (
	"fmt"
	"strings"
)

// DefaultWordLength is the number of letters in a game word
const DefaultWordLength = 5

// PositionConstraint is what is known about one position of the solution
type PositionConstraint struct {
	Confirmed    Letter    // 0 until a green is seen at this position
	ExcludedHere LetterSet // yellow letters: in the word but not here
	AbsentHere   LetterSet // grey letters guessed here, kept even when the letter is elsewhere
	History      []Letter  // every letter guessed here, oldest first
}

func (p *PositionConstraint) IsConfirmed() bool {
	return p.Confirmed != 0
}

// ConstraintSet accumulates the feedback of all turns of a game.
//
// Marks are staged by RecordFeedback and only applied by FinalizeTurn so a rejected
// turn leaves the set untouched.
type ConstraintSet struct {
	positions      []PositionConstraint
	mustContain    LetterSet // recomputed every turn from the yellow letters
	mustNotContain LetterSet // grey letters, only ever grows
	pending        []*Mark
	lastGuess      string
	turns          int
	conflict       bool // two different greens were seen at one position
}

func NewConstraintSet(wordLength int) *ConstraintSet {
	if wordLength < 1 {
		panic(fmt.Sprintf("bad word length: %d", wordLength))
	}
	ret := &ConstraintSet{
		positions:      make([]PositionConstraint, wordLength),
		mustContain:    NewLetterSet(),
		mustNotContain: NewLetterSet(),
		pending:        make([]*Mark, wordLength),
	}
	for i := range ret.positions {
		ret.positions[i].ExcludedHere = NewLetterSet()
		ret.positions[i].AbsentHere = NewLetterSet()
	}
	return ret
}

// Clone returns a deep copy, staged marks included
func (cs *ConstraintSet) Clone() *ConstraintSet {
	ret := &ConstraintSet{
		positions:      make([]PositionConstraint, len(cs.positions)),
		mustContain:    cs.mustContain.Clone(),
		mustNotContain: cs.mustNotContain.Clone(),
		pending:        make([]*Mark, len(cs.pending)),
		lastGuess:      cs.lastGuess,
		turns:          cs.turns,
		conflict:       cs.conflict,
	}
	for i, p := range cs.positions {
		ret.positions[i] = PositionConstraint{
			Confirmed:    p.Confirmed,
			ExcludedHere: p.ExcludedHere.Clone(),
			AbsentHere:   p.AbsentHere.Clone(),
			History:      append([]Letter{}, p.History...),
		}
	}
	for i, m := range cs.pending {
		if m != nil {
			staged := *m
			ret.pending[i] = &staged
		}
	}
	return ret
}

func (cs *ConstraintSet) Len() int {
	return len(cs.positions)
}

// Position returns the constraint for index i. The caller must not modify it.
func (cs *ConstraintSet) Position(i int) *PositionConstraint {
	return &cs.positions[i]
}

// MustContain is the set of yellow letters that have not been confirmed since
func (cs *ConstraintSet) MustContain() LetterSet {
	return cs.mustContain.Clone()
}

// MustNotContain is every letter ever found grey, see Grey for the letters actually filtered
func (cs *ConstraintSet) MustNotContain() LetterSet {
	return cs.mustNotContain.Clone()
}

// ConfirmedLetters returns the green letters of all positions
func (cs *ConstraintSet) ConfirmedLetters() LetterSet {
	ret := NewLetterSet()
	for i := range cs.positions {
		if cs.positions[i].IsConfirmed() {
			ret.Add(cs.positions[i].Confirmed)
		}
	}
	return ret
}

// Grey returns the letters no candidate may contain. Green and yellow evidence wins
// over grey, so a contradictory stream narrows to nothing instead of failing.
func (cs *ConstraintSet) Grey() LetterSet {
	return cs.mustNotContain.Difference(cs.mustContain).Difference(cs.ConfirmedLetters())
}

// Contradictory is true once a position has been green with two different letters.
// No word matches a contradictory set.
func (cs *ConstraintSet) Contradictory() bool {
	return cs.conflict
}

// LastGuess is the word of the most recent finalized turn
func (cs *ConstraintSet) LastGuess() string {
	return cs.lastGuess
}

// Turns is the number of finalized turns
func (cs *ConstraintSet) Turns() int {
	return cs.turns
}

// RecordFeedback stages the feedback for one position of the current turn
func (cs *ConstraintSet) RecordFeedback(position int, letter Letter, feedback Feedback) error {
	if position < 0 || position >= len(cs.positions) {
		return fmt.Errorf("%w: position %d out of range 0..%d", ErrMalformedTurn, position, len(cs.positions)-1)
	}
	if cs.pending[position] != nil {
		return fmt.Errorf("%w: position %d already has feedback", ErrMalformedTurn, position)
	}
	if feedback > Confirmed {
		return fmt.Errorf("%w: unknown feedback %d", ErrMalformedTurn, feedback)
	}
	cs.pending[position] = &Mark{Position: position, Letter: letter, Feedback: feedback}
	return nil
}

// DiscardTurn drops all staged feedback
func (cs *ConstraintSet) DiscardTurn() {
	for i := range cs.pending {
		cs.pending[i] = nil
	}
}

// FinalizeTurn applies the staged turn and returns its guess. Every position must
// have feedback, otherwise nothing is applied and the staged marks are kept.
func (cs *ConstraintSet) FinalizeTurn() (string, error) {
	missing := []string{}
	for i, m := range cs.pending {
		if m == nil {
			missing = append(missing, fmt.Sprint(i))
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: no feedback for position %s", ErrMalformedTurn, strings.Join(missing, ","))
	}

	guess := make([]rune, len(cs.positions))
	greys := []Letter{}
	for i, m := range cs.pending {
		position := &cs.positions[i]
		switch m.Feedback {
		case Confirmed:
			if position.IsConfirmed() && position.Confirmed != m.Letter {
				// the first green is kept, nothing can match both
				cs.conflict = true
				break
			}
			position.Confirmed = m.Letter
			position.ExcludedHere.Clear()
		case Present:
			position.ExcludedHere.Add(m.Letter)
		case Absent:
			position.AbsentHere.Add(m.Letter)
			greys = append(greys, m.Letter)
		}
		position.History = append(position.History, m.Letter)
		guess[i] = rune(m.Letter)
	}

	cs.updateMustContain()
	confirmed := cs.ConfirmedLetters()
	for _, grey := range greys {
		// a repeated letter can be green or yellow once and grey elsewhere
		if cs.mustContain.Contains(grey) || confirmed.Contains(grey) {
			continue
		}
		cs.mustNotContain.Add(grey)
	}

	cs.lastGuess = string(guess)
	cs.turns++
	cs.DiscardTurn()
	return cs.lastGuess, nil
}

// updateMustContain rebuilds the yellow letters from scratch so letters cleared by a
// green drop out
func (cs *ConstraintSet) updateMustContain() {
	cs.mustContain = NewLetterSet()
	for i := range cs.positions {
		for _, l := range cs.positions[i].ExcludedHere.Slice() {
			cs.mustContain.Add(l)
		}
	}
}
