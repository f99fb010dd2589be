package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Crane", "crane", true},
		{"  árbol ", "arbol", true},
		{"CAÑÓN", "canon", true},
		{"pingüino", "pinguino", true},
		{"two words", "", false},
		{"abc12", "", false},
		{"", "", false},
		{"straße", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	words, err := Load(strings.NewReader("Crane\nárbol\ncat\ncrane\n\nMoist\nlonger\nCAÑÓN\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "arbol", "moist", "canon"}, words)

	words, err = Load(strings.NewReader("cat\ncrane\ndog\n"), Options{WordLength: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, words)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nangle\ntable\neagle\n"), 0o644))
	words, err := LoadFile(path, Options{WordLength: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "angle", "table", "eagle"}, words)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	words := Default(5)
	assert.Greater(t, len(words), 400)
	for _, w := range words {
		assert.Len(t, w, 5)
	}
	assert.Contains(t, words, "eagle")
	assert.Empty(t, Default(9))
}
