package automaton

import "github.com/bits-and-blooms/bitset"

// closeEpsilon grows set in place to the smallest superset closed under
// epsilon transitions. Terminates because each state enters the
// worklist at most once.
func closeEpsilon(a *Automaton, idx *stateIndex, set *bitset.BitSet) {
	workList := make([]uint, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		workList = append(workList, i)
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for to := range a.destinations(idx.names[state], Epsilon) {
			j := uint(idx.pos[to])
			if set.Test(j) == false {
				set.Set(j)
				workList = append(workList, j)
			}
		}
	}
}

// EpsilonClosure returns the set of states reachable from the given
// states via epsilon transitions alone, including the states
// themselves, sorted by name. Unknown names are ignored.
func (a *Automaton) EpsilonClosure(names ...string) []State {
	idx := newStateIndex(a)
	set := bitset.New(idx.size())
	for _, name := range names {
		if _, ok := a.states[name]; ok {
			set.Set(uint(idx.pos[name]))
		}
	}
	closeEpsilon(a, idx, set)
	out := make([]State, 0, set.Count())
	for _, name := range idx.members(set) {
		out = append(out, a.states[name])
	}
	return out
}

// reachableSet returns the bitset of states reachable from the initial
// states over all transitions, epsilon included.
func reachableSet(a *Automaton, idx *stateIndex) *bitset.BitSet {
	seen := bitset.New(idx.size())
	workList := make([]string, 0, len(a.states))
	for _, s := range a.states {
		if s.Initial {
			seen.Set(uint(idx.pos[s.Name]))
			workList = append(workList, s.Name)
		}
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, dests := range a.delta[state] {
			for to := range dests {
				j := uint(idx.pos[to])
				if seen.Test(j) == false {
					seen.Set(j)
					workList = append(workList, to)
				}
			}
		}
	}
	return seen
}

// Reachable returns the states reachable from the automaton's initial
// states over all transitions, sorted by name.
func Reachable(a *Automaton) []State {
	idx := newStateIndex(a)
	set := reachableSet(a, idx)
	out := make([]State, 0, set.Count())
	for _, name := range idx.members(set) {
		out = append(out, a.states[name])
	}
	return out
}

// HasAcceptingPath reports whether some final state is reachable from
// an initial state. The search stops as soon as one is found.
func HasAcceptingPath(a *Automaton) bool {
	idx := newStateIndex(a)
	seen := bitset.New(idx.size())
	workList := make([]string, 0, len(a.states))
	for _, s := range a.states {
		if s.Initial {
			if s.Final {
				return true
			}
			seen.Set(uint(idx.pos[s.Name]))
			workList = append(workList, s.Name)
		}
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, dests := range a.delta[state] {
			for to := range dests {
				j := uint(idx.pos[to])
				if seen.Test(j) {
					continue
				}
				if a.states[to].Final {
					return true
				}
				seen.Set(j)
				workList = append(workList, to)
			}
		}
	}
	return false
}

// pruneUnreachable returns a copy of a with every state unreachable
// from the initial states removed, along with its transitions.
// Transitions between retained states are all preserved.
func pruneUnreachable(a *Automaton) *Automaton {
	idx := newStateIndex(a)
	live := reachableSet(a, idx)

	result := New(a.name, a.alphabet.Clone())
	for _, name := range idx.members(live) {
		result.AddState(a.states[name])
	}
	for _, name := range idx.members(live) {
		for symbol, dests := range a.delta[name] {
			for to := range dests {
				if live.Test(uint(idx.pos[to])) {
					result.AddTransition(name, to, symbol)
				}
			}
		}
	}
	return result
}
