// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charsets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclude(t *testing.T) {
	assert.Equal(t, "ace", Exclude("abcde", "bd"))
	assert.Equal(t, "abc", Exclude("abc", ""))
	assert.Len(t, Distinguishable, len(Alphanumeric)-len(Ambiguous))
	for _, r := range Ambiguous {
		assert.NotContains(t, Distinguishable, string(r))
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		expect int
	}{
		{"lowercase", 26},
		{"UPPERCASE", 26},
		{"digits", 10},
		{" alphanumeric ", 62},
		{"distinguishable", 57},
		{"punctuation", 32},
		{"printable", 94},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.name), func(t *testing.T) {
			got, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Len(t, got, tt.expect)
		})
	}

	_, err := Lookup("emoji")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distinguishable")
}

func TestWords(t *testing.T) {
	w := Words()
	require.Greater(t, len(w), 500)
	seen := make(map[string]bool, len(w))
	for _, word := range w {
		assert.False(t, seen[word], "duplicate word %q", word)
		seen[word] = true
		assert.NotContains(t, word, " ")
	}
	assert.Equal(t, "able", w[0])

	w[0] = "changed"
	assert.Equal(t, "able", Words()[0], "Words must return a copy")

	viaLookup, err := Lookup(WordsName)
	require.NoError(t, err)
	assert.Equal(t, Words(), viaLookup)
}

func TestSplitKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split("abc"))
	assert.Equal(t, "a", Split(Alphanumeric)[0])
	assert.Equal(t, "9", Split(Alphanumeric)[61])
}
