package wordle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionApplyTurn(t *testing.T) {
	s := NewSession([]string{"apple", "angle", "table", "eagle"})
	assert.Equal(t, InProgress, s.State())
	require.NoError(t, s.ApplyTurn(parseTurn(t, "angle", "yrggg")))
	assert.Equal(t, "angle", s.LastGuess())
	assert.Equal(t, []string{"eagle"}, s.Candidates())
	assert.Equal(t, 1, s.Turns())
	assert.False(t, s.IsTerminated())

	s.MarkSolved()
	assert.True(t, s.IsTerminated())
	assert.True(t, s.Solved())
	assert.ErrorIs(t, s.ApplyTurn(parseTurn(t, "eagle", "ggggg")), ErrSessionTerminated)
}

func TestSessionMalformedTurnLeavesStateUnchanged(t *testing.T) {
	words := []string{"crane", "moist", "tower"}
	s := NewSession(words)

	short := parseTurn(t, "cran", "gggg")
	assert.ErrorIs(t, s.ApplyTurn(short), ErrMalformedTurn)

	duplicate := parseTurn(t, "crane", "rrrrr")
	duplicate[4].Position = 0
	assert.ErrorIs(t, s.ApplyTurn(duplicate), ErrMalformedTurn)

	outOfRange := parseTurn(t, "crane", "rrrrr")
	outOfRange[0].Position = 9
	assert.ErrorIs(t, s.ApplyTurn(outOfRange), ErrMalformedTurn)

	assert.Equal(t, words, s.Candidates())
	assert.Equal(t, 0, s.Turns())
	assert.Equal(t, "", s.LastGuess())
	assert.Equal(t, 0, s.Constraints().MustNotContain().Len())

	// nothing staged by the rejected turns leaks into the next one
	require.NoError(t, s.ApplyTurn(parseTurn(t, "crane", "rrrrr")))
	assert.Equal(t, []string{"moist"}, s.Candidates())
}

func TestSessionEmptyIsTerminal(t *testing.T) {
	s := NewSession([]string{"crane", "crate", "brave"})
	require.NoError(t, s.ApplyTurn(parseTurn(t, "crane", "gggrg")))
	assert.Equal(t, []string{"crate"}, s.Candidates())
	// a different green at position 0 contradicts the first turn
	require.NoError(t, s.ApplyTurn(parseTurn(t, "brave", "grrrr")))
	assert.Empty(t, s.Candidates())
	assert.True(t, s.IsTerminated())
	assert.False(t, s.Solved())
}

func TestSessionConflictSurvivesRefiltering(t *testing.T) {
	words := []string{"cults", "busty"}
	s := NewSession(words)
	require.NoError(t, s.ApplyTurn(parseTurn(t, "crane", "grrrr")))
	require.NoError(t, s.ApplyTurn(parseTurn(t, "bloom", "grrrr")))
	assert.True(t, s.IsTerminated())
	assert.True(t, s.Constraints().Contradictory())
	assert.Empty(t, Evaluate(s.Constraints(), words))
}

func TestSessionConstraintsIsACopy(t *testing.T) {
	s := NewSession([]string{"crane", "moist", "tower"})
	require.NoError(t, s.ApplyTurn(parseTurn(t, "crane", "rrrrr")))

	cs := s.Constraints()
	finalize(t, cs, "moist", "rrrrr")
	cs.Position(0).ExcludedHere.Add('q')

	assert.Equal(t, 1, s.Turns())
	assert.Equal(t, "crane", s.LastGuess())
	assert.Equal(t, 0, s.Constraints().Position(0).ExcludedHere.Len())
	require.NoError(t, s.ApplyTurn(parseTurn(t, "pluck", "rrrrr")))
	assert.Equal(t, []string{"moist"}, s.Candidates())
}

func TestSessionEmptyDictionary(t *testing.T) {
	s := NewSession(nil)
	assert.True(t, s.IsTerminated())
}

func TestSessionOwnsCandidates(t *testing.T) {
	words := []string{"crane", "moist"}
	s := NewSession(words)
	words[0] = "zzzzz"
	got := s.Candidates()
	got[1] = "zzzzz"
	assert.Equal(t, []string{"crane", "moist"}, s.Candidates())
}

func TestSessionWordLength(t *testing.T) {
	s := NewSession([]string{"cat", "cot", "dog"}, WithWordLength(3))
	assert.Equal(t, 3, s.WordLength())
	require.NoError(t, s.ApplyTurn(parseTurn(t, "cut", "grg")))
	assert.Equal(t, []string{"cat", "cot"}, s.Candidates())
}

func TestSessionCustomFilter(t *testing.T) {
	calls := 0
	f := FilterFunc(func(cs *ConstraintSet, candidates []string) []string {
		calls++
		return Evaluate(cs, candidates)
	})
	s := NewSession([]string{"crane", "moist"}, WithFilter(f))
	require.NoError(t, s.ApplyTurn(parseTurn(t, "crane", "rrrrr")))
	assert.Equal(t, 1, calls)
}

func TestSessionSolutionSurvives(t *testing.T) {
	words := testWords()
	r := rand.New(rand.NewSource(3))
	for game := 0; game < 300; game++ {
		solution := words[r.Intn(len(words))]
		s := NewSession(words)
		for turn := 0; turn < 6 && !s.IsTerminated(); turn++ {
			guess := words[r.Intn(len(words))]
			feedback := Score(solution, guess)
			before := len(s.Candidates())
			require.NoError(t, s.ApplyTurn(feedback))
			require.Contains(t, s.Candidates(), solution, "solution %s guess %s %s", solution, guess, feedback.Colors())
			require.LessOrEqual(t, len(s.Candidates()), before)
			if feedback.Solved() {
				assert.Equal(t, []string{solution}, s.Candidates())
				s.MarkSolved()
			}
		}
	}
}
