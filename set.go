package minimoore

import (
	"iter"
	"maps"
)

// Set is an unordered collection of comparable elements.
type Set[E comparable] map[E]struct{}

// NewSet returns a set holding the given elements.
func NewSet[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s Set[E]) Add(e E) {
	s[e] = struct{}{}
}

func (s Set[E]) Remove(e E) {
	delete(s, e)
}

func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

func (s Set[E]) Len() int {
	return len(s)
}

func (s Set[E]) Clone() Set[E] {
	return maps.Clone(s)
}

// Union adds every element of other to s.
func (s Set[E]) Union(other Set[E]) {
	for e := range other {
		s.Add(e)
	}
}

// Intersect removes from s every element not in other.
func (s Set[E]) Intersect(other Set[E]) {
	for e := range s {
		if !other.Contains(e) {
			delete(s, e)
		}
	}
}

// Subtract removes from s every element of other.
func (s Set[E]) Subtract(other Set[E]) {
	for e := range other {
		delete(s, e)
	}
}

func (s Set[E]) SubsetOf(other Set[E]) bool {
	if len(s) > len(other) {
		return false
	}
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

func (s Set[E]) Equal(other Set[E]) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// All iterates over the elements in unspecified order.
func (s Set[E]) All() iter.Seq[E] {
	return maps.Keys(s)
}
