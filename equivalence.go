package automaton

// Equivalent reports whether both automata accept exactly the same
// language. Both operands are minimized first; since minimal DFAs for
// equal languages are isomorphic, mismatched state counts, transition
// counts, or alphabets short-circuit to false. Otherwise the symmetric
// difference is tested for emptiness:
//
//	L(A) = L(B)  iff  (L(A) ∩ L(B)ᶜ) ∪ (L(A)ᶜ ∩ L(B)) = ∅
//
// Returns ErrNoStates or ErrNoInitialState for malformed operands.
func Equivalent(a, b *Automaton) (bool, error) {
	if err := checkOperand(a); err != nil {
		return false, err
	}
	if err := checkOperand(b); err != nil {
		return false, err
	}

	am := Minimize(a)
	bm := Minimize(b)

	if am.NumStates() != bm.NumStates() {
		return false, nil
	}
	if am.NumTransitions() != bm.NumTransitions() {
		return false, nil
	}
	if !am.alphabet.Equal(bm.alphabet) {
		return false, nil
	}

	// L(A) ∩ L(B)ᶜ must be empty.
	diff, err := Intersection(am, Complement(bm))
	if err != nil {
		return false, err
	}
	if HasAcceptingPath(diff) {
		return false, nil
	}

	// L(A)ᶜ ∩ L(B) must be empty.
	diff, err = Intersection(Complement(am), bm)
	if err != nil {
		return false, err
	}
	return !HasAcceptingPath(diff), nil
}
