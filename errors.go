package automaton

import "errors"

var (
	// ErrNoStates is returned by binary operations when an operand has
	// no states at all.
	ErrNoStates = errors.New("automaton has no states")

	// ErrNoInitialState is returned by binary operations when an
	// operand has states but none is marked initial.
	ErrNoInitialState = errors.New("automaton has no initial state")
)
