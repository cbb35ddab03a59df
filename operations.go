package automaton

import "fmt"

// Complement returns an automaton accepting exactly the words over the
// alphabet that a rejects. The input is forced to a complete DFA first;
// flipping final flags is only sound when every (state, symbol) pair
// has a transition.
func Complement(a *Automaton) *Automaton {
	d := Complete(a)

	result := New(a.name+"_complement", d.alphabet.Clone())
	for _, s := range d.States() {
		s.Final = !s.Final
		result.AddState(s)
	}
	for _, t := range d.Transitions() {
		result.AddTransition(t.From, t.To, t.Symbol)
	}
	return result
}

// Union returns an automaton accepting words accepted by either
// operand, via the product construction over the combined alphabet.
// Returns ErrNoStates or ErrNoInitialState for malformed operands.
func Union(a, b *Automaton) (*Automaton, error) {
	name := fmt.Sprintf("%s|%s", a.name, b.name)
	return combine(name, a, b, func(aFinal, bFinal bool) bool {
		return aFinal || bFinal
	})
}

// Intersection returns an automaton accepting words accepted by both
// operands, via the product construction over the combined alphabet.
// Returns ErrNoStates or ErrNoInitialState for malformed operands.
func Intersection(a, b *Automaton) (*Automaton, error) {
	name := fmt.Sprintf("%s&%s", a.name, b.name)
	return combine(name, a, b, func(aFinal, bFinal bool) bool {
		return aFinal && bFinal
	})
}

// combine builds the product of both operands after forcing each to a
// complete DFA over the union of the two alphabets. A pair state is
// initial iff both components are initial and final per the accept
// rule. Completion guarantees a transition for every pair and symbol;
// pairs unreachable from the product's initial state are pruned
// afterwards.
func combine(name string, a, b *Automaton, accept func(aFinal, bFinal bool) bool) (*Automaton, error) {
	if err := checkOperand(a); err != nil {
		return nil, err
	}
	if err := checkOperand(b); err != nil {
		return nil, err
	}

	combined := a.alphabet.Union(b.alphabet)
	ad := completeOver(Determinize(a), combined)
	bd := completeOver(Determinize(b), combined)

	result := New(name, combined.Clone())
	pairName := func(sa, sb string) string {
		return fmt.Sprintf("(%s,%s)", sa, sb)
	}

	for _, sa := range ad.States() {
		for _, sb := range bd.States() {
			result.AddState(State{
				Name:    pairName(sa.Name, sb.Name),
				Initial: sa.Initial && sb.Initial,
				Final:   accept(sa.Final, sb.Final),
			})
		}
	}

	for _, sa := range ad.States() {
		for _, sb := range bd.States() {
			for _, symbol := range combined.Symbols() {
				na := singleDestination(ad, sa.Name, symbol)
				nb := singleDestination(bd, sb.Name, symbol)
				result.AddTransition(pairName(sa.Name, sb.Name), pairName(na, nb), symbol)
			}
		}
	}

	return pruneUnreachable(result), nil
}

// checkOperand guards binary operations against inputs the product
// construction cannot give a meaning to.
func checkOperand(a *Automaton) error {
	if a.NumStates() == 0 {
		return fmt.Errorf("%s: %w", a.name, ErrNoStates)
	}
	if len(a.InitialStates()) == 0 {
		return fmt.Errorf("%s: %w", a.name, ErrNoInitialState)
	}
	return nil
}

// singleDestination returns the unique destination for (state, symbol)
// on a complete DFA.
func singleDestination(d *Automaton, state, symbol string) string {
	for to := range d.destinations(state, symbol) {
		return to
	}
	return ""
}
