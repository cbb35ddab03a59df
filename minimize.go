package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Minimize returns the minimal DFA for the automaton's language using
// partition refinement. The input is forced to a complete DFA first
// (determinizing if necessary). Refinement starts from the
// final/non-final split and repeatedly separates states that disagree
// on which block a symbol leads into, re-queueing only the smaller half
// of each split; at the fixed point "same block" is exactly
// Myhill-Nerode state equivalence.
func Minimize(a *Automaton) *Automaton {
	d := Complete(a)
	idx := newStateIndex(d)

	finals := bitset.New(idx.size())
	for _, s := range d.states {
		if s.Final {
			finals.Set(uint(idx.pos[s.Name]))
		}
	}
	nonFinals := finals.Complement()

	partitions := make([]*bitset.BitSet, 0, 2)
	if finals.Count() > 0 {
		partitions = append(partitions, finals)
	}
	if nonFinals.Count() > 0 {
		partitions = append(partitions, nonFinals)
	}

	workList := make([]*bitset.BitSet, 0, len(partitions))
	for _, p := range partitions {
		workList = append(workList, p.Clone())
	}

	for len(workList) > 0 {
		splitter := workList[0]
		workList = workList[1:]

		for _, symbol := range d.alphabet.Symbols() {
			// States whose transition on symbol lands in the splitter.
			leading := bitset.New(idx.size())
			for i, name := range idx.names {
				for to := range d.destinations(name, symbol) {
					if splitter.Test(uint(idx.pos[to])) {
						leading.Set(uint(i))
					}
				}
			}

			refined := make([]*bitset.BitSet, 0, len(partitions))
			for _, p := range partitions {
				in := p.Intersection(leading)
				out := p.Difference(leading)
				if in.Count() == 0 || out.Count() == 0 {
					refined = append(refined, p)
					continue
				}
				refined = append(refined, in, out)
				smaller := in
				if out.Count() < in.Count() {
					smaller = out
				}
				workList = append(workList, smaller.Clone())
			}
			partitions = refined
		}
	}

	return buildQuotient(d, idx, partitions)
}

// buildQuotient collapses each partition block into one state of the
// minimized automaton. Blocks are ordered by their smallest member so
// the generated names are stable, and transitions are derived from a
// single representative per block; all members of a block behave
// identically on a complete DFA by construction.
func buildQuotient(d *Automaton, idx *stateIndex, partitions []*bitset.BitSet) *Automaton {
	sort.Slice(partitions, func(i, j int) bool {
		a, _ := partitions[i].NextSet(0)
		b, _ := partitions[j].NextSet(0)
		return a < b
	})

	minimized := New(d.name+"_minimized", d.alphabet.Clone())
	blockOf := make([]int, len(idx.names))
	blockName := make([]string, len(partitions))

	for i, p := range partitions {
		members := idx.members(p)
		initial, final := false, false
		for _, name := range members {
			s := d.states[name]
			initial = initial || s.Initial
			final = final || s.Final
			blockOf[idx.pos[name]] = i
		}
		blockName[i] = fmt.Sprintf("q%d_%s", i, strings.Join(members, ","))
		minimized.AddState(State{Name: blockName[i], Initial: initial, Final: final})
	}

	for i, p := range partitions {
		rep, _ := p.NextSet(0)
		for _, symbol := range d.alphabet.Symbols() {
			for to := range d.destinations(idx.names[rep], symbol) {
				minimized.AddTransition(blockName[i], blockName[blockOf[idx.pos[to]]], symbol)
			}
		}
	}

	return minimized
}
