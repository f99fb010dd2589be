package wordle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedTurn is returned for a turn that is incomplete, has two marks for one
	// position or references a position out of range. The turn is not applied.
	ErrMalformedTurn = errors.New("malformed turn")
	// ErrSessionTerminated is returned by ApplyTurn once the session is over
	ErrSessionTerminated = errors.New("session terminated")
)

// Mark is the feedback for one position of a guess
type Mark struct {
	Position int
	Letter   Letter
	Feedback Feedback
}

// Turn is one guess with a mark for every position
type Turn []Mark

// ParseTurn builds a turn from a guess and its colors, like: "angle", "yrygg"
func ParseTurn(guess, colors string) (Turn, error) {
	guessRunes := []rune(strings.TrimSpace(guess))
	colorRunes := []rune(strings.TrimSpace(colors))
	if len(guessRunes) == 0 {
		return nil, fmt.Errorf("%w: empty guess", ErrMalformedTurn)
	}
	if len(guessRunes) != len(colorRunes) {
		return nil, fmt.Errorf("%w: guess %q has %d letters but %d colors", ErrMalformedTurn, guess, len(guessRunes), len(colorRunes))
	}
	ret := make(Turn, 0, len(guessRunes))
	for i, r := range guessRunes {
		letter, ok := NewLetter(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a letter", ErrMalformedTurn, r)
		}
		feedback, ok := ParseFeedback(colorRunes[i])
		if !ok {
			return nil, fmt.Errorf("%w: color %q must be one of r,y,g", ErrMalformedTurn, colorRunes[i])
		}
		ret = append(ret, Mark{Position: i, Letter: letter, Feedback: feedback})
	}
	return ret, nil
}

// Guess returns the letters of the turn in position order, missing positions are '?'
func (t Turn) Guess() string {
	length := 0
	for _, m := range t {
		if m.Position+1 > length {
			length = m.Position + 1
		}
	}
	ret := []rune(strings.Repeat("?", length))
	for _, m := range t {
		if m.Position >= 0 {
			ret[m.Position] = rune(m.Letter)
		}
	}
	return string(ret)
}

// Colors returns the feedback codes in position order
func (t Turn) Colors() string {
	ret := make([]byte, len(t))
	for i, m := range t {
		ret[i] = m.Feedback.Code()
	}
	return string(ret)
}

// Score returns the feedback the game shows for guess when the answer is solution.
// Greens are assigned first, then the remaining solution letters are handed out as
// yellows left to right so repeated letters are handled like the real game.
func Score(solution, guess string) Turn {
	solutionRunes := []rune(solution)
	guessRunes := []rune(guess)
	if len(solutionRunes) != len(guessRunes) {
		panic("solution and guess lengths differ: " + solution + " " + guess)
	}
	ret := make(Turn, len(guessRunes))
	solutionNotGreenCount := make(map[rune]int, len(solutionRunes))
	for i, solutionLetter := range solutionRunes {
		ret[i] = Mark{Position: i, Letter: Letter(guessRunes[i]), Feedback: Absent}
		if solutionLetter == guessRunes[i] {
			ret[i].Feedback = Confirmed
		} else {
			solutionNotGreenCount[solutionLetter]++
		}
	}
	// turn the grey to yellow if in the word but not green
	for i, guessLetter := range guessRunes {
		if ret[i].Feedback == Absent && solutionNotGreenCount[guessLetter] > 0 {
			ret[i].Feedback = Present
			solutionNotGreenCount[guessLetter]--
		}
	}
	return ret
}

// Solved reports whether every mark is green
func (t Turn) Solved() bool {
	for _, m := range t {
		if m.Feedback != Confirmed {
			return false
		}
	}
	return len(t) > 0
}
