package automaton

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sorted(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func TestGenerateWords(t *testing.T) {
	a := endsInA()

	t.Run("exactSetUpToLengthTwo", func(t *testing.T) {
		words := GenerateWords(a, 2)
		assert.Equal(t, []string{"a", "aa", "ba"}, sorted(words))
	})

	t.Run("matchesAccepts", func(t *testing.T) {
		words := GenerateWords(a, 3)
		got := make(map[string]struct{}, len(words))
		for _, w := range words {
			got[w] = struct{}{}
		}
		for _, w := range allWords([]string{"a", "b"}, 3) {
			_, generated := got[w]
			assert.Equalf(t, a.AcceptsString(w), generated, "word %q", w)
		}
	})

	t.Run("lengthZero", func(t *testing.T) {
		assert.Empty(t, GenerateWords(a, 0))
	})
}

func TestGenerateWordsNFA(t *testing.T) {
	words := GenerateWords(containsAB(), 3)
	assert.Equal(t, []string{"aab", "ab", "aba", "abb", "bab"}, sorted(words))
}

func TestGenerateWordsEpsilon(t *testing.T) {
	// The epsilon move reaches the final state without consuming
	// input, so the empty word is generated at every max length.
	words := GenerateWords(epsilonNFA(), 0)
	assert.Equal(t, []string{""}, words)
}

func TestGenerateWordsEpsilonCycle(t *testing.T) {
	// An epsilon cycle must not loop the traversal forever.
	n := New("cycle", NewAlphabet("a"))
	n.AddState(State{Name: "q0", Initial: true})
	n.AddState(State{Name: "q1", Final: true})
	n.AddTransition("q0", "q1", Epsilon)
	n.AddTransition("q1", "q0", Epsilon)
	n.AddTransition("q1", "q1", "a")

	words := GenerateWords(n, 2)
	assert.Equal(t, []string{"", "a", "aa"}, sorted(words))
}

func TestGenerateWordsNoDuplicates(t *testing.T) {
	// Several NFA paths can spell the same word; it is reported once.
	words := GenerateWords(nfaEndsInA(), 2)
	assert.Equal(t, []string{"a", "aa", "ba"}, sorted(words))
}
