package automaton

import "github.com/bits-and-blooms/bitset"

// Determinize converts an NFA to an equivalent DFA using the subset
// construction. If the input is already deterministic it is returned
// unchanged, not copied. Only subsets reachable from the initial
// closure are materialized, so the work is bounded by the reachable
// subset graph rather than the full powerset.
//
// DFA states are named by the canonical rendering of their subset
// (sorted member names in braces), and a subset state is final iff any
// member is final. Symbols whose move yields the empty subset get no
// transition at all, so the result may be incomplete.
func Determinize(a *Automaton) *Automaton {
	if a.IsDeterministic() {
		return a
	}

	idx := newStateIndex(a)
	dfa := New(a.name+"_DFA", a.alphabet.Clone())

	initial := bitset.New(idx.size())
	for _, s := range a.states {
		if s.Initial {
			initial.Set(uint(idx.pos[s.Name]))
		}
	}
	closeEpsilon(a, idx, initial)

	dfa.AddState(State{
		Name:    idx.subsetName(initial),
		Initial: true,
		Final:   anyFinal(a, idx, initial),
	})

	// Subsets are keyed by their frozen member encoding, not by the
	// display name, so the "seen" map is collision free even for state
	// names containing braces or commas.
	seen := map[string]string{idx.frozen(initial): idx.subsetName(initial)}
	workList := []*bitset.BitSet{initial}

	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		currentName := seen[idx.frozen(current)]

		for _, symbol := range a.alphabet.Symbols() {
			next := bitset.New(idx.size())
			for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
				for to := range a.destinations(idx.names[i], symbol) {
					next.Set(uint(idx.pos[to]))
				}
			}
			if next.Count() == 0 {
				continue
			}
			closeEpsilon(a, idx, next)

			key := idx.frozen(next)
			nextName, ok := seen[key]
			if !ok {
				nextName = idx.subsetName(next)
				dfa.AddState(State{Name: nextName, Final: anyFinal(a, idx, next)})
				seen[key] = nextName
				workList = append(workList, next)
			}
			dfa.AddTransition(currentName, nextName, symbol)
		}
	}

	return dfa
}

// anyFinal reports whether any member of the subset is a final state.
func anyFinal(a *Automaton, idx *stateIndex, set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if a.states[idx.names[i]].Final {
			return true
		}
	}
	return false
}
