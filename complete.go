package automaton

// Complete makes a DFA complete by adding a non-initial, non-final sink
// state that absorbs every missing (state, symbol) transition.
// Non-deterministic input is determinized first. If the automaton is
// already complete it is returned unchanged.
func Complete(a *Automaton) *Automaton {
	d := Determinize(a)
	if d.IsComplete() {
		return d
	}
	return completeOver(d, d.alphabet.Clone())
}

// completeOver builds a complete copy of the deterministic automaton d
// over the given alphabet, which must be a superset of d's own. Binary
// operations use it to complete both operands over their combined
// alphabet before the product construction.
func completeOver(d *Automaton, alphabet *Alphabet) *Automaton {
	result := New(d.name+"_complete", alphabet)
	for _, s := range d.States() {
		result.AddState(s)
	}

	sink := sinkName(d)
	result.AddState(State{Name: sink})
	for _, symbol := range alphabet.Symbols() {
		result.AddTransition(sink, sink, symbol)
	}

	for _, s := range d.States() {
		for _, symbol := range alphabet.Symbols() {
			dests := d.destinations(s.Name, symbol)
			if len(dests) == 0 {
				result.AddTransition(s.Name, sink, symbol)
				continue
			}
			for to := range dests {
				result.AddTransition(s.Name, to, symbol)
			}
		}
	}
	return result
}

// sinkName picks a sink state name not already used by a.
func sinkName(a *Automaton) string {
	name := "sink"
	for {
		if _, ok := a.states[name]; !ok {
			return name
		}
		name += "_"
	}
}
