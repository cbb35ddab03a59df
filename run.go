package automaton

import "github.com/bits-and-blooms/bitset"

// Accepts reports whether the automaton accepts the word given as a
// sequence of symbols. A symbol outside the alphabet is an ordinary
// rejection, not an error. DFAs are walked state by state; NFAs are
// simulated on the epsilon-closed set of active states, so an NFA with
// an epsilon path from an initial to a final state accepts the empty
// word.
func (a *Automaton) Accepts(word ...string) bool {
	if a.IsDeterministic() {
		return a.acceptsDFA(word)
	}
	return a.acceptsNFA(word)
}

// AcceptsString splits the word into single-rune symbols and checks
// acceptance. Convenience for the common case of one-character
// alphabets.
func (a *Automaton) AcceptsString(word string) bool {
	return a.Accepts(splitRunes(word)...)
}

func (a *Automaton) acceptsDFA(word []string) bool {
	current := a.InitialStates()[0].Name
	for _, symbol := range word {
		if !a.alphabet.Contains(symbol) {
			return false
		}
		dests := a.destinations(current, symbol)
		if len(dests) == 0 {
			return false
		}
		for to := range dests {
			current = to
		}
	}
	return a.states[current].Final
}

func (a *Automaton) acceptsNFA(word []string) bool {
	idx := newStateIndex(a)

	active := bitset.New(idx.size())
	for _, s := range a.states {
		if s.Initial {
			active.Set(uint(idx.pos[s.Name]))
		}
	}
	closeEpsilon(a, idx, active)

	for _, symbol := range word {
		if !a.alphabet.Contains(symbol) {
			return false
		}
		next := bitset.New(idx.size())
		for i, ok := active.NextSet(0); ok; i, ok = active.NextSet(i + 1) {
			for to := range a.destinations(idx.names[i], symbol) {
				next.Set(uint(idx.pos[to]))
			}
		}
		closeEpsilon(a, idx, next)
		if next.Count() == 0 {
			return false
		}
		active = next
	}

	return anyFinal(a, idx, active)
}

func splitRunes(word string) []string {
	symbols := make([]string, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, string(r))
	}
	return symbols
}
