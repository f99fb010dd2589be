package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlehelper/wordle"
)

func run(t *testing.T, words []string, input string, opts Options) (*wordle.Session, string) {
	t.Helper()
	s := wordle.NewSession(words)
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader(input), &out, s, opts))
	return s, out.String()
}

func TestRunSolved(t *testing.T) {
	s, out := run(t, []string{"apple", "angle", "table", "eagle"}, "angle yrggg\ny\n", Options{})
	assert.True(t, s.Solved())
	assert.Contains(t, out, "Last guess: ANGLE.")
	assert.Contains(t, out, "Current dictionary (1):\n    * eagle\n")
	assert.Contains(t, out, "Solved in 1 turns.")
}

func TestRunReentersMalformedTurn(t *testing.T) {
	s, out := run(t, []string{"crane", "moist"}, "crane\ncran rrrr\ncrane rrbrr\ncrane rrrrr\nn\n", Options{})
	assert.Contains(t, out, "Enter the guessed word and its colors separated by a space.")
	assert.Equal(t, 2, strings.Count(out, "enter the turn again."))
	assert.Equal(t, []string{"moist"}, s.Candidates())
	assert.Equal(t, 1, s.Turns())
	assert.False(t, s.IsTerminated())
}

func TestRunEmptyDictionaryEnds(t *testing.T) {
	s, out := run(t, []string{"crane"}, "moist rrrgr\n", Options{})
	assert.True(t, s.IsTerminated())
	assert.False(t, s.Solved())
	assert.Contains(t, out, "The dictionary is empty")
	assert.NotContains(t, out, "Have you won?")
}

func TestRunColor(t *testing.T) {
	_, out := run(t, []string{"apple", "angle", "table", "eagle"}, "angle yrggg\n", Options{Color: true})
	assert.Contains(t, out, "\033[32mL")
	assert.Contains(t, out, "\033[33mA")
}

func TestRunColorNames(t *testing.T) {
	s, out := run(t, []string{"apple", "angle", "table", "eagle"},
		"angle yellow grey blue green green\nangle yellow GREY green green green\ny\n", Options{})
	assert.Equal(t, 1, strings.Count(out, "enter the turn again."))
	assert.Contains(t, out, `unknown color "blue"`)
	assert.Equal(t, []string{"eagle"}, s.Candidates())
	assert.True(t, s.Solved())
}

func TestRunColorNamesWrongCount(t *testing.T) {
	s, out := run(t, []string{"crane", "moist"}, "crane grey grey grey grey\n", Options{})
	assert.Equal(t, 1, strings.Count(out, "enter the turn again."))
	assert.Equal(t, 0, s.Turns())
}
