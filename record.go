package automaton

// Record is the stable serialization form of an automaton: name,
// alphabet symbols, states with their flags, and transitions by state
// name. It is the boundary handed to persistence collaborators; the
// encoding itself (JSON, TOML) is dealt with in io.go.
type Record struct {
	Name        string             `json:"name" toml:"name"`
	Alphabet    []string           `json:"alphabet" toml:"alphabet"`
	States      []StateRecord      `json:"states" toml:"states"`
	Transitions []TransitionRecord `json:"transitions" toml:"transitions"`
}

// StateRecord is the serialized form of a single state.
type StateRecord struct {
	Name    string `json:"name" toml:"name"`
	Initial bool   `json:"is_initial" toml:"is_initial"`
	Final   bool   `json:"is_final" toml:"is_final"`
}

// TransitionRecord is the serialized form of a single transition,
// referencing its endpoints by name.
type TransitionRecord struct {
	From   string `json:"from_state" toml:"from_state"`
	To     string `json:"to_state" toml:"to_state"`
	Symbol string `json:"symbol" toml:"symbol"`
}

// Record converts the automaton to its serialization form. States and
// transitions are sorted for deterministic output.
func (a *Automaton) Record() Record {
	rec := Record{
		Name:     a.name,
		Alphabet: a.alphabet.Symbols(),
	}
	for _, s := range a.States() {
		rec.States = append(rec.States, StateRecord{Name: s.Name, Initial: s.Initial, Final: s.Final})
	}
	for _, t := range a.Transitions() {
		rec.Transitions = append(rec.Transitions, TransitionRecord{From: t.From, To: t.To, Symbol: t.Symbol})
	}
	return rec
}

// FromRecord builds an automaton from its serialization form.
// Transitions referencing unknown state names are dropped silently, as
// are transitions whose symbol is neither in the alphabet nor Epsilon;
// validation beyond that is the producer's responsibility.
func FromRecord(rec Record) *Automaton {
	a := New(rec.Name, NewAlphabet(rec.Alphabet...))
	for _, s := range rec.States {
		a.AddState(State{Name: s.Name, Initial: s.Initial, Final: s.Final})
	}
	for _, t := range rec.Transitions {
		if _, ok := a.states[t.From]; !ok {
			continue
		}
		if _, ok := a.states[t.To]; !ok {
			continue
		}
		a.AddTransition(t.From, t.To, t.Symbol)
	}
	return a
}
