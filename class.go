package minimoore

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// stateClass is a frozen block of a state partition. Members are kept sorted;
// the bitset mirrors them for O(1) membership tests during splitter
// application. The content hash lets classes key a HashMap.
type stateClass struct {
	members  []State
	bits     *bitset.BitSet
	hashCode uint64
}

func newStateClass(members []State) *stateClass {
	slices.Sort(members)
	bits := bitset.New(uint(len(members)))
	hash := uint64(len(members))
	for _, s := range members {
		bits.Set(uint(s))
		hash += uint64(uint32(mix32(s)))
	}
	return &stateClass{members: members, bits: bits, hashCode: hash}
}

// freezeClass snapshots a mutable state set into a class.
func freezeClass(states Set[State]) *stateClass {
	members := make([]State, 0, states.Len())
	for s := range states {
		members = append(members, s)
	}
	return newStateClass(members)
}

func (c *stateClass) Hash() uint64 {
	return c.hashCode
}

func (c *stateClass) Equals(other Hashable) bool {
	o, ok := other.(*stateClass)
	return ok && slices.Equal(c.members, o.members)
}

func (c *stateClass) Contains(state State) bool {
	return state >= 0 && c.bits.Test(uint(state))
}

func (c *stateClass) Size() int {
	return len(c.members)
}

// mix32 is the MurmurHash3 32-bit finalization step.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
