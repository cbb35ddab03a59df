package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// stateIndex assigns dense bit positions to state names so that the
// set-heavy algorithms (closure, reachability, subset construction,
// partition refinement) can work on bitsets instead of name sets. The
// assignment is sorted by name, which keeps every derived ordering and
// every canonical subset name stable for a given automaton.
type stateIndex struct {
	names []string
	pos   map[string]int
}

func newStateIndex(a *Automaton) *stateIndex {
	idx := &stateIndex{
		names: make([]string, 0, len(a.states)),
		pos:   make(map[string]int, len(a.states)),
	}
	for name := range a.states {
		idx.names = append(idx.names, name)
	}
	sort.Strings(idx.names)
	for i, name := range idx.names {
		idx.pos[name] = i
	}
	return idx
}

func (idx *stateIndex) size() uint {
	return uint(len(idx.names))
}

// set returns a bitset holding the given state names.
func (idx *stateIndex) set(names ...string) *bitset.BitSet {
	bs := bitset.New(idx.size())
	for _, name := range names {
		bs.Set(uint(idx.pos[name]))
	}
	return bs
}

// members returns the state names in a bitset, in index (= name) order.
func (idx *stateIndex) members(bs *bitset.BitSet) []string {
	out := make([]string, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, idx.names[i])
	}
	return out
}

// frozen returns an order-independent key for the subset held in bs.
// Two bitsets freeze to the same key iff they hold the same members,
// which makes the key safe for "seen" maps in the subset construction.
func (idx *stateIndex) frozen(bs *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(',')
	}
	return sb.String()
}

// subsetName renders the canonical display name for a subset of states:
// the sorted member names in braces, or "∅" for the empty subset.
func (idx *stateIndex) subsetName(bs *bitset.BitSet) string {
	if bs.Count() == 0 {
		return "∅"
	}
	return "{" + strings.Join(idx.members(bs), ",") + "}"
}
