package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementLaw(t *testing.T) {
	a := endsInA()
	c := Complement(a)
	require.True(t, c.IsComplete())

	for _, w := range allWords([]string{"a", "b"}, 3) {
		assert.NotEqualf(t, a.AcceptsString(w), c.AcceptsString(w), "word %q", w)
	}
}

func TestComplementOfPartial(t *testing.T) {
	// Completion happens on the way in, so the complement accepts
	// everything the partial DFA rejects.
	c := Complement(partialDFA())
	assert.True(t, c.AcceptsString(""))
	assert.True(t, c.AcceptsString("b"))
	assert.True(t, c.AcceptsString("ab"))
	assert.False(t, c.AcceptsString("a"))
}

func TestUnion(t *testing.T) {
	u, err := Union(endsInA(), atLeastOneA())
	require.NoError(t, err)

	t.Run("scenario", func(t *testing.T) {
		assert.False(t, u.AcceptsString("b"))
		assert.True(t, u.AcceptsString("a"))
		assert.True(t, u.AcceptsString("ab")) // B accepts, A does not
	})

	t.Run("law", func(t *testing.T) {
		a, b := endsInA(), atLeastOneA()
		for _, w := range allWords([]string{"a", "b"}, 3) {
			want := a.AcceptsString(w) || b.AcceptsString(w)
			assert.Equalf(t, want, u.AcceptsString(w), "word %q", w)
		}
	})
}

func TestIntersection(t *testing.T) {
	i, err := Intersection(endsInA(), atLeastOneA())
	require.NoError(t, err)

	t.Run("scenario", func(t *testing.T) {
		assert.True(t, i.AcceptsString("ba"))
		assert.False(t, i.AcceptsString("b"))
	})

	t.Run("law", func(t *testing.T) {
		a, b := endsInA(), atLeastOneA()
		for _, w := range allWords([]string{"a", "b"}, 3) {
			want := a.AcceptsString(w) && b.AcceptsString(w)
			assert.Equalf(t, want, i.AcceptsString(w), "word %q", w)
		}
	})
}

func TestProductCombinesAlphabets(t *testing.T) {
	onlyA := New("onlyA", NewAlphabet("a"))
	onlyA.AddState(State{Name: "q0", Initial: true, Final: true})
	onlyA.AddTransition("q0", "q0", "a")

	onlyB := New("onlyB", NewAlphabet("b"))
	onlyB.AddState(State{Name: "q0", Initial: true, Final: true})
	onlyB.AddTransition("q0", "q0", "b")

	u, err := Union(onlyA, onlyB)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, u.Alphabet().Symbols())
	assert.True(t, u.AcceptsString("aa"))
	assert.True(t, u.AcceptsString("bb"))
	assert.False(t, u.AcceptsString("ab"))
}

func TestProductPrunesUnreachablePairs(t *testing.T) {
	u, err := Union(endsInA(), atLeastOneA())
	require.NoError(t, err)
	// Both operands are complete 2-state DFAs; the full pair space has
	// 4 states but (q1, q0) is unreachable from (q0, q0).
	assert.Equal(t, 3, u.NumStates())
}

func TestBinaryOperationGuards(t *testing.T) {
	empty := New("empty", NewAlphabet("a"))
	noInitial := New("noInitial", NewAlphabet("a"))
	noInitial.AddState(State{Name: "q0", Final: true})

	t.Run("noStates", func(t *testing.T) {
		_, err := Union(empty, endsInA())
		assert.ErrorIs(t, err, ErrNoStates)
		_, err = Intersection(endsInA(), empty)
		assert.ErrorIs(t, err, ErrNoStates)
	})

	t.Run("noInitialState", func(t *testing.T) {
		_, err := Union(noInitial, endsInA())
		assert.ErrorIs(t, err, ErrNoInitialState)
		_, err = Intersection(endsInA(), noInitial)
		assert.ErrorIs(t, err, ErrNoInitialState)
	})
}

func TestOperationsLeaveInputsUntouched(t *testing.T) {
	a, b := endsInA(), atLeastOneA()
	_, err := Union(a, b)
	require.NoError(t, err)
	_ = Complement(a)
	assert.Equal(t, 2, a.NumStates())
	assert.Equal(t, 4, a.NumTransitions())
	assert.Equal(t, 2, b.NumStates())
}
