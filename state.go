package automaton

import "fmt"

// State is a named automaton state. Identity is the name alone: the
// owning automaton keeps a single name-keyed map of states, so two
// states with the same name but conflicting flags cannot coexist.
type State struct {
	Name    string
	Initial bool
	Final   bool
}

func (s State) String() string {
	switch {
	case s.Initial && s.Final:
		return fmt.Sprintf("State(%s, initial, final)", s.Name)
	case s.Initial:
		return fmt.Sprintf("State(%s, initial)", s.Name)
	case s.Final:
		return fmt.Sprintf("State(%s, final)", s.Name)
	default:
		return fmt.Sprintf("State(%s)", s.Name)
	}
}
