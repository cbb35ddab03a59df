package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Epsilon is the reserved label for transitions that consume no input.
// It is never a member of an alphabet.
const Epsilon = "ε"

// Alphabet is a set of input symbols. Symbols are opaque non-empty
// strings; duplicates collapse and Epsilon is rejected as a member.
type Alphabet struct {
	symbols map[string]struct{}
}

// NewAlphabet returns an alphabet containing the given symbols.
// Empty strings and Epsilon are skipped.
func NewAlphabet(symbols ...string) *Alphabet {
	a := &Alphabet{symbols: make(map[string]struct{}, len(symbols))}
	for _, s := range symbols {
		a.AddSymbol(s)
	}
	return a
}

// AddSymbol adds a symbol and reports whether it was admissible.
// Epsilon and the empty string are not admissible.
func (a *Alphabet) AddSymbol(symbol string) bool {
	if symbol == "" || symbol == Epsilon {
		return false
	}
	a.symbols[symbol] = struct{}{}
	return true
}

// RemoveSymbol removes a symbol if present.
func (a *Alphabet) RemoveSymbol(symbol string) {
	delete(a.symbols, symbol)
}

// Contains reports whether symbol is a member of the alphabet.
func (a *Alphabet) Contains(symbol string) bool {
	_, ok := a.symbols[symbol]
	return ok
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the symbols in sorted order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, 0, len(a.symbols))
	for s := range a.symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the alphabet.
func (a *Alphabet) Clone() *Alphabet {
	return NewAlphabet(a.Symbols()...)
}

// Union returns a new alphabet containing the symbols of both operands.
func (a *Alphabet) Union(other *Alphabet) *Alphabet {
	out := a.Clone()
	for s := range other.symbols {
		out.symbols[s] = struct{}{}
	}
	return out
}

// Equal reports whether both alphabets contain exactly the same symbols.
func (a *Alphabet) Equal(other *Alphabet) bool {
	if len(a.symbols) != len(other.symbols) {
		return false
	}
	for s := range a.symbols {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("Alphabet(%s)", strings.Join(a.Symbols(), ", "))
}
