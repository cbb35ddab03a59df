package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redundantEndsInA accepts words ending in 'a' with q1 and q2
// behaviorally identical, so minimization must merge them.
func redundantEndsInA() *Automaton {
	a := New("redundant", NewAlphabet("a", "b"))
	a.AddState(State{Name: "q0", Initial: true})
	a.AddState(State{Name: "q1", Final: true})
	a.AddState(State{Name: "q2", Final: true})
	a.AddTransition("q0", "q1", "a")
	a.AddTransition("q0", "q0", "b")
	a.AddTransition("q1", "q2", "a")
	a.AddTransition("q1", "q0", "b")
	a.AddTransition("q2", "q2", "a")
	a.AddTransition("q2", "q0", "b")
	return a
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	m := Minimize(redundantEndsInA())
	require.True(t, m.IsDeterministic())
	assert.Equal(t, 2, m.NumStates())

	require.Len(t, m.InitialStates(), 1)
	require.Len(t, m.FinalStates(), 1)
}

func TestMinimizePreservesLanguage(t *testing.T) {
	a := redundantEndsInA()
	m := Minimize(a)
	for _, w := range allWords([]string{"a", "b"}, 4) {
		assert.Equalf(t, a.AcceptsString(w), m.AcceptsString(w), "word %q", w)
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	m := Minimize(redundantEndsInA())
	assert.Equal(t, m.NumStates(), Minimize(m).NumStates())
}

func TestMinimizeAlreadyMinimal(t *testing.T) {
	a := endsInA()
	m := Minimize(a)
	assert.Equal(t, a.NumStates(), m.NumStates())
}

func TestMinimizeNFA(t *testing.T) {
	// Determinizes and completes on the way in.
	m := Minimize(containsAB())
	require.True(t, m.IsComplete())
	for _, w := range allWords([]string{"a", "b"}, 4) {
		assert.Equalf(t, containsAB().AcceptsString(w), m.AcceptsString(w), "word %q", w)
	}
}

func TestMinimizeAllFinal(t *testing.T) {
	// Accepts everything: the initial partition has no non-final block.
	a := New("total", NewAlphabet("a"))
	a.AddState(State{Name: "q0", Initial: true, Final: true})
	a.AddState(State{Name: "q1", Final: true})
	a.AddTransition("q0", "q1", "a")
	a.AddTransition("q1", "q0", "a")

	m := Minimize(a)
	assert.Equal(t, 1, m.NumStates())
	assert.True(t, m.AcceptsString(""))
	assert.True(t, m.AcceptsString("aaa"))
}
