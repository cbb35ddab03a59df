package automaton

import "fmt"

// Transition is a labeled edge between two states, identified by the
// (from, to, symbol) triple. Symbol is either a member of the owning
// automaton's alphabet or Epsilon.
type Transition struct {
	From   string
	To     string
	Symbol string
}

// IsEpsilon reports whether the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --(%s)--> %s", t.From, t.Symbol, t.To)
}

// less orders transitions by source, then symbol, then destination.
// Used wherever a deterministic transition listing is needed.
func (t Transition) less(o Transition) bool {
	if t.From != o.From {
		return t.From < o.From
	}
	if t.Symbol != o.Symbol {
		return t.Symbol < o.Symbol
	}
	return t.To < o.To
}
