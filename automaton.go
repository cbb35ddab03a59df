package automaton

import (
	"fmt"
	"sort"
)

// Automaton represents a finite automaton (DFA or NFA) over a declared
// alphabet. States are stored in a single name-keyed map and the
// transition relation as adjacency from (state, symbol) to destination
// sets, so duplicate states and duplicate transitions collapse by
// construction. All transforming operations in this package leave their
// input untouched and return freshly built automata.
type Automaton struct {
	name     string
	alphabet *Alphabet

	states map[string]State

	// delta maps from-state -> symbol -> set of to-states. Symbols are
	// alphabet members or Epsilon.
	delta map[string]map[string]map[string]struct{}
}

// New returns an empty automaton with the given name and alphabet.
// A nil alphabet is replaced by an empty one.
func New(name string, alphabet *Alphabet) *Automaton {
	if alphabet == nil {
		alphabet = NewAlphabet()
	}
	return &Automaton{
		name:     name,
		alphabet: alphabet,
		states:   make(map[string]State),
		delta:    make(map[string]map[string]map[string]struct{}),
	}
}

// Name returns the automaton's name.
func (a *Automaton) Name() string {
	return a.name
}

// Alphabet returns the automaton's alphabet.
func (a *Automaton) Alphabet() *Alphabet {
	return a.alphabet
}

// AddState inserts a state. Adding a state whose name already exists
// replaces its flags; identity is the name alone.
func (a *Automaton) AddState(s State) {
	a.states[s.Name] = s
}

// RemoveState removes the named state and every transition touching it.
func (a *Automaton) RemoveState(name string) {
	if _, ok := a.states[name]; !ok {
		return
	}
	delete(a.states, name)
	delete(a.delta, name)
	for from, bySymbol := range a.delta {
		for symbol, dests := range bySymbol {
			delete(dests, name)
			if len(dests) == 0 {
				delete(bySymbol, symbol)
			}
		}
		if len(bySymbol) == 0 {
			delete(a.delta, from)
		}
	}
}

// StateByName returns the named state, if present.
func (a *Automaton) StateByName(name string) (State, bool) {
	s, ok := a.states[name]
	return s, ok
}

// NumStates returns how many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// States returns all states sorted by name.
func (a *Automaton) States() []State {
	out := make([]State, 0, len(a.states))
	for _, s := range a.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddTransition inserts a transition and reports whether the symbol was
// admissible: a member of the alphabet, or Epsilon. Endpoints not yet
// in the automaton are added implicitly with both flags unset.
func (a *Automaton) AddTransition(from, to, symbol string) bool {
	if symbol != Epsilon && !a.alphabet.Contains(symbol) {
		return false
	}
	if _, ok := a.states[from]; !ok {
		a.states[from] = State{Name: from}
	}
	if _, ok := a.states[to]; !ok {
		a.states[to] = State{Name: to}
	}
	bySymbol, ok := a.delta[from]
	if !ok {
		bySymbol = make(map[string]map[string]struct{})
		a.delta[from] = bySymbol
	}
	dests, ok := bySymbol[symbol]
	if !ok {
		dests = make(map[string]struct{})
		bySymbol[symbol] = dests
	}
	dests[to] = struct{}{}
	return true
}

// RemoveTransition removes a transition if present.
func (a *Automaton) RemoveTransition(from, to, symbol string) {
	bySymbol, ok := a.delta[from]
	if !ok {
		return
	}
	dests, ok := bySymbol[symbol]
	if !ok {
		return
	}
	delete(dests, to)
	if len(dests) == 0 {
		delete(bySymbol, symbol)
	}
	if len(bySymbol) == 0 {
		delete(a.delta, from)
	}
}

// NumTransitions returns how many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, bySymbol := range a.delta {
		for _, dests := range bySymbol {
			n += len(dests)
		}
	}
	return n
}

// Transitions returns all transitions sorted by source, symbol,
// destination.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, a.NumTransitions())
	for from, bySymbol := range a.delta {
		for symbol, dests := range bySymbol {
			for to := range dests {
				out = append(out, Transition{From: from, To: to, Symbol: symbol})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// TransitionsFrom returns the transitions leaving a state, optionally
// restricted to a single symbol.
func (a *Automaton) TransitionsFrom(state string, symbol ...string) []Transition {
	bySymbol, ok := a.delta[state]
	if !ok {
		return nil
	}
	var out []Transition
	if len(symbol) > 0 {
		for to := range bySymbol[symbol[0]] {
			out = append(out, Transition{From: state, To: to, Symbol: symbol[0]})
		}
	} else {
		for sym, dests := range bySymbol {
			for to := range dests {
				out = append(out, Transition{From: state, To: to, Symbol: sym})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// NextStates returns the states reachable from a state with one
// transition on the given symbol, sorted by name.
func (a *Automaton) NextStates(state, symbol string) []State {
	dests := a.destinations(state, symbol)
	out := make([]State, 0, len(dests))
	for name := range dests {
		out = append(out, a.states[name])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// destinations returns the raw destination set for (state, symbol), or
// nil. Callers must not mutate it.
func (a *Automaton) destinations(state, symbol string) map[string]struct{} {
	bySymbol, ok := a.delta[state]
	if !ok {
		return nil
	}
	return bySymbol[symbol]
}

// InitialStates returns all states flagged initial, sorted by name.
func (a *Automaton) InitialStates() []State {
	var out []State
	for _, s := range a.states {
		if s.Initial {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FinalStates returns all states flagged final, sorted by name.
func (a *Automaton) FinalStates() []State {
	var out []State
	for _, s := range a.states {
		if s.Final {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsDeterministic reports whether this automaton is a DFA: exactly one
// initial state, no epsilon transitions, and at most one outgoing
// transition per (state, symbol) pair.
func (a *Automaton) IsDeterministic() bool {
	initials := 0
	for _, s := range a.states {
		if s.Initial {
			initials++
		}
	}
	if initials != 1 {
		return false
	}
	for _, bySymbol := range a.delta {
		for symbol, dests := range bySymbol {
			if symbol == Epsilon && len(dests) > 0 {
				return false
			}
			if len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether this automaton is a DFA with exactly one
// outgoing transition for every (state, symbol) pair.
func (a *Automaton) IsComplete() bool {
	if !a.IsDeterministic() {
		return false
	}
	for name := range a.states {
		for _, symbol := range a.alphabet.Symbols() {
			if len(a.destinations(name, symbol)) == 0 {
				return false
			}
		}
	}
	return true
}

// IsMinimal reports whether this automaton is a DFA that minimization
// cannot shrink. Always false for NFAs.
func (a *Automaton) IsMinimal() bool {
	if !a.IsDeterministic() {
		return false
	}
	return Minimize(a).NumStates() == a.NumStates()
}

func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton(%s, %d states, %d transitions)", a.name, a.NumStates(), a.NumTransitions())
}
