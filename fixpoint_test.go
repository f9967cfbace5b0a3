package minimoore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	// Every update in this suite is monotone; let the solver verify it.
	monotoneChecks = true
}

// addOnePrefix grows the set by one missing string prefix per call.
func addOnePrefix(x Set[string]) Set[string] {
	for elem := range x {
		prefix := ""
		if len(elem) > 0 {
			prefix = elem[:len(elem)-1]
		}
		if !x.Contains(prefix) {
			x.Add(prefix)
			break
		}
	}
	return x
}

// removeOneHigh shrinks the set by one element >= 5 per call.
func removeOneHigh(x Set[int]) Set[int] {
	for elem := range x {
		if elem >= 5 {
			x.Remove(elem)
			break
		}
	}
	return x
}

// plusTwo produces successors-by-two, bounded below 10.
func plusTwo(x Set[int]) Set[int] {
	out := NewSet[int]()
	for elem := range x {
		if elem < 8 {
			out.Add(elem + 2)
		}
	}
	return out
}

// keepChained keeps an element iff its successor is present or it is small.
func keepChained(x Set[int]) Set[int] {
	out := NewSet[int]()
	for elem := range x {
		if x.Contains(elem+1) || elem < 5 {
			out.Add(elem)
		}
	}
	return out
}

// dropUnchained identifies elements to remove: successor absent and >= 5.
func dropUnchained(x Set[int]) Set[int] {
	out := NewSet[int]()
	for elem := range x {
		if !x.Contains(elem+1) && elem >= 5 {
			out.Add(elem)
		}
	}
	return out
}

func intRange(lo, hi int) Set[int] {
	s := NewSet[int]()
	for i := lo; i < hi; i++ {
		s.Add(i)
	}
	return s
}

func TestFixpoints(t *testing.T) {
	t.Run("least", func(t *testing.T) {
		lfp := LeastFixpoint(addOnePrefix, NewSet("testing"), nil)
		assert.Equal(t, NewSet("testing", "testin", "testi", "test", "tes", "te", "t", ""), lfp)

		lfp = LeastFixpoint(addOnePrefix, NewSet("ciao", "cia", "ok"), nil)
		assert.Equal(t, NewSet("ciao", "cia", "ci", "c", "", "ok", "o"), lfp)
	})

	t.Run("least from nil start", func(t *testing.T) {
		lfp := LeastFixpoint(Union(plusTwo), nil, nil)
		assert.Equal(t, 0, lfp.Len())
	})

	t.Run("greatest", func(t *testing.T) {
		gfp := GreatestFixpoint(removeOneHigh, intRange(2, 8), nil)
		assert.Equal(t, NewSet(2, 3, 4), gfp)

		gfp = GreatestFixpoint(removeOneHigh, NewSet(-2, 0, 5, 3), nil)
		assert.Equal(t, NewSet(-2, 0, 3), gfp)
	})

	t.Run("least with union", func(t *testing.T) {
		lfp := LeastFixpoint(Union(plusTwo), NewSet(1), nil)
		assert.Equal(t, NewSet(1, 3, 5, 7, 9), lfp)
	})

	t.Run("greatest with intersection", func(t *testing.T) {
		gfp := GreatestFixpoint(Intersection(keepChained), intRange(0, 50), nil)
		assert.Equal(t, NewSet(0, 1, 2, 3, 4), gfp)
	})

	t.Run("greatest with difference", func(t *testing.T) {
		gfp := GreatestFixpoint(Difference(dropUnchained), intRange(0, 50), nil)
		assert.Equal(t, NewSet(0, 1, 2, 3, 4), gfp)
	})

	t.Run("stop conditions", func(t *testing.T) {
		lfp := LeastFixpoint(Union(plusTwo), NewSet(1), func(x Set[int]) bool {
			return x.Contains(7)
		})
		assert.Equal(t, NewSet(1, 3, 5, 7), lfp)

		gfp := GreatestFixpoint(Intersection(keepChained), intRange(0, 50), func(x Set[int]) bool {
			return !x.Contains(6)
		})
		assert.Equal(t, NewSet(0, 1, 2, 3, 4, 5), gfp)
	})

	t.Run("duality", func(t *testing.T) {
		// bounded has a unique fixpoint, so iterating up from the empty set
		// and down from the universe must land on the same set.
		bounded := func(x Set[int]) Set[int] {
			out := NewSet(0)
			for elem := range x {
				if elem < 5 {
					out.Add(elem + 1)
				}
			}
			return out
		}

		lfp := LeastFixpoint(Union(bounded), nil, nil)
		gfp := GreatestFixpoint(Intersection(bounded), intRange(0, 10), nil)
		assert.Equal(t, NewSet(0, 1, 2, 3, 4, 5), lfp)
		assert.Equal(t, lfp, gfp)
	})

	t.Run("non-monotone update panics under checks", func(t *testing.T) {
		swap := func(x Set[int]) Set[int] {
			if x.Contains(1) {
				return NewSet(2)
			}
			return NewSet(1)
		}
		assert.Panics(t, func() {
			ReachFixpoint(swap, NewSet(1), nil)
		})
	})
}
