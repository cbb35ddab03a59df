package automaton

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	a := endsInA()
	b := FromRecord(a.Record())

	assert.Equal(t, a.Record(), b.Record())
	assert.True(t, b.AcceptsString("ba"))
	assert.False(t, b.AcceptsString("ab"))
}

func TestFromRecordDropsUnknownStates(t *testing.T) {
	rec := Record{
		Name:     "broken",
		Alphabet: []string{"a"},
		States:   []StateRecord{{Name: "q0", Initial: true, Final: true}},
		Transitions: []TransitionRecord{
			{From: "q0", To: "ghost", Symbol: "a"},
			{From: "ghost", To: "q0", Symbol: "a"},
			{From: "q0", To: "q0", Symbol: "a"},
		},
	}
	a := FromRecord(rec)
	assert.Equal(t, 1, a.NumStates())
	assert.Equal(t, 1, a.NumTransitions())
}

func TestFromRecordDropsInvalidSymbols(t *testing.T) {
	rec := Record{
		Name:     "broken",
		Alphabet: []string{"a"},
		States: []StateRecord{
			{Name: "q0", Initial: true},
			{Name: "q1", Final: true},
		},
		Transitions: []TransitionRecord{
			{From: "q0", To: "q1", Symbol: "z"},
			{From: "q0", To: "q1", Symbol: Epsilon},
		},
	}
	a := FromRecord(rec)
	assert.Equal(t, 1, a.NumTransitions()) // the epsilon one survives
}

func TestJSONRoundTrip(t *testing.T) {
	a := endsInA()
	data, err := Marshal(a)
	require.NoError(t, err)

	b, err := Read(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, a.Record(), b.Record())
}

func TestReadTOML(t *testing.T) {
	const def = `
name = "A"
alphabet = ["a", "b"]

[[states]]
name = "q0"
is_initial = true

[[states]]
name = "q1"
is_final = true

[[transitions]]
from_state = "q0"
to_state = "q1"
symbol = "a"

[[transitions]]
from_state = "q1"
to_state = "q1"
symbol = "a"

[[transitions]]
from_state = "q0"
to_state = "q0"
symbol = "b"

[[transitions]]
from_state = "q1"
to_state = "q0"
symbol = "b"
`
	a, err := ReadTOML(strings.NewReader(def))
	require.NoError(t, err)
	assert.Equal(t, endsInA().Record(), a.Record())
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.json")

	require.NoError(t, WriteFile(endsInA(), path))

	a, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, endsInA().Record(), a.Record())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(endsInA(), filepath.Join(dir, "A.json")))
	require.NoError(t, WriteFile(atLeastOneA(), filepath.Join(dir, "B.json")))

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)

	t.Run("missingDirectory", func(t *testing.T) {
		names, err := List(filepath.Join(dir, "missing"))
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
