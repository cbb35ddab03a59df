// Package automaton computes with finite automata over declared
// alphabets: DFA/NFA representation, determinization by subset
// construction, sink-state completion, partition-refinement
// minimization, complement, union and intersection by product
// construction, language equivalence testing, word acceptance, and
// bounded word enumeration.
//
// Every operation is a synchronous pure function: it reads its input
// automata and returns a freshly built automaton (or a verdict),
// sharing no state with the inputs. The one exception is the identity
// short-circuit of Determinize, which hands back the input itself when
// it is already deterministic.
//
// States are identified by name; the automaton owns the single map
// from name to flags, and the transition relation is an adjacency
// structure over those names rather than an object graph. Epsilon
// transitions use the reserved Epsilon label, which is never a member
// of an alphabet.
package automaton
