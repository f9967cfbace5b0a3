package minimoore

// UpdateFunc is one refinement step of a fixpoint iteration. The function
// receives ownership of the set and returns a (possibly the same) set; callers
// must not retain aliases to a set passed through the solver, since it is
// freely mutated across iterations.
type UpdateFunc[E comparable] func(Set[E]) Set[E]

// StopCond stops the iteration early as soon as it returns true. The set
// reached equals the exact fixpoint only if no stop condition fired.
type StopCond[E comparable] func(Set[E]) bool

// monotoneChecks turns on a costly per-iteration inclusion check. The solver
// terminates on cardinality stability, which is only sound for monotone
// updates; the test suite enables this to catch non-monotone functions.
var monotoneChecks bool

// ReachFixpoint iterates x ← fn(x) from start until the cardinality of x
// stops changing, or stop(x) holds. fn must be monotone: every application
// must only ever grow the set, or only ever shrink it. The domain must be
// finite; the iteration does not terminate otherwise.
func ReachFixpoint[E comparable](fn UpdateFunc[E], start Set[E], stop StopCond[E]) Set[E] {
	x := start
	size := -1

	for x.Len() != size {
		if stop != nil && stop(x) {
			break
		}
		size = x.Len()

		var before Set[E]
		if monotoneChecks {
			before = x.Clone()
		}
		x = fn(x)
		if monotoneChecks && !before.SubsetOf(x) && !x.SubsetOf(before) {
			panic("minimoore: fixpoint update function is not monotone")
		}
	}
	return x
}

// LeastFixpoint returns the least fixpoint of fn, iterating from start (nil
// means the empty set). fn must only ever grow its argument.
func LeastFixpoint[E comparable](fn UpdateFunc[E], start Set[E], stop StopCond[E]) Set[E] {
	if start == nil {
		start = NewSet[E]()
	}
	return ReachFixpoint(fn, start, stop)
}

// GreatestFixpoint returns the greatest fixpoint of fn, iterating from the
// full universe. fn must only ever shrink its argument.
func GreatestFixpoint[E comparable](fn UpdateFunc[E], universe Set[E], stop StopCond[E]) Set[E] {
	return ReachFixpoint(fn, universe, stop)
}

// Union adapts a candidate producer into a growing update: every element fn
// returns is added to the set. For use with LeastFixpoint. fn must not mutate
// its argument.
func Union[E comparable](fn func(Set[E]) Set[E]) UpdateFunc[E] {
	return func(x Set[E]) Set[E] {
		x.Union(fn(x))
		return x
	}
}

// Intersection adapts a candidate producer into a shrinking update: the set
// is intersected with whatever fn returns. For use with GreatestFixpoint. fn
// must not mutate its argument.
func Intersection[E comparable](fn func(Set[E]) Set[E]) UpdateFunc[E] {
	return func(x Set[E]) Set[E] {
		x.Intersect(fn(x))
		return x
	}
}

// Difference adapts a candidate producer into a shrinking update: every
// element fn returns is removed from the set. For use with GreatestFixpoint
// when fn identifies elements to discard. fn must not mutate its argument.
func Difference[E comparable](fn func(Set[E]) Set[E]) UpdateFunc[E] {
	return func(x Set[E]) Set[E] {
		x.Subtract(fn(x))
		return x
	}
}
