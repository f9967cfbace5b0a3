package minimoore

import (
	"fmt"
	"hash/maphash"
	"slices"
)

// splitter pairs a candidate class with an input symbol. Popping splitters
// from a waiting set and testing every class against them drives the
// partition refinement.
type splitter[I comparable] struct {
	class  *stateClass
	symbol I
}

var symbolSeed = maphash.MakeSeed()

func (s splitter[I]) Hash() uint64 {
	return s.class.Hash() ^ maphash.Comparable(symbolSeed, s.symbol)
}

func (s splitter[I]) Equals(other Hashable) bool {
	o, ok := other.(splitter[I])
	return ok && s.symbol == o.symbol && s.class.Equals(o.class)
}

// Minimize returns a fresh machine with the fewest states computing the same
// input→output mapping, via Hopcroft-style partition refinement. The
// transition function must be total and every state must have an output
// assigned. The receiver is never mutated; the returned machine has fresh
// state ids.
func (m *MooreMachine[I, O]) Minimize() (*MooreMachine[I, O], error) {
	if m.numStates == 0 {
		// Fastmatch for the empty machine.
		return NewMooreMachine[I, O](), nil
	}
	if !m.IsComplete() {
		return nil, fmt.Errorf("minimize: %w", ErrIncomplete)
	}

	partition, err := m.outputPartition()
	if err != nil {
		return nil, fmt.Errorf("minimize: %w", err)
	}

	waiting := NewHashMap[struct{}](WithCapacity(len(partition) * (m.inputSyms.Len() + 1)))
	for symbol := range m.inputSyms {
		for _, class := range partition {
			waiting.Set(splitter[I]{class: class, symbol: symbol}, struct{}{})
		}
	}

	for waiting.Size() > 0 {
		key, _, _ := waiting.Pop()
		split := key.(splitter[I])

		newPartition := make(classList, 0, len(partition))
		for _, class := range partition {
			sub, err := m.applySplitter(class, split.symbol, split.class)
			if err != nil {
				return nil, fmt.Errorf("minimize: %w", err)
			}
			newPartition = append(newPartition, sub...)

			// Not split, nothing to requeue.
			if len(sub) == 1 {
				continue
			}
			for symbol := range m.inputSyms {
				waiting.Delete(splitter[I]{class: class, symbol: symbol})
				for _, subClass := range sub {
					waiting.Set(splitter[I]{class: subClass, symbol: symbol}, struct{}{})
				}
			}
		}
		partition = newPartition
	}

	return m.fromPartition(partition)
}

// classList is a partition of the machine's states: pairwise-disjoint,
// jointly-exhaustive classes.
type classList []*stateClass

// outputPartition groups states by output symbol: the initial partition of
// the refinement.
func (m *MooreMachine[I, O]) outputPartition() (classList, error) {
	groups := make(map[O]Set[State])
	for state := 0; state < m.numStates; state++ {
		output, err := m.OutputOf(state)
		if err != nil {
			return nil, err
		}
		group, ok := groups[output]
		if !ok {
			group = NewSet[State]()
			groups[output] = group
		}
		group.Add(state)
	}

	partition := make(classList, 0, len(groups))
	for _, group := range groups {
		partition = append(partition, freezeClass(group))
	}
	return partition, nil
}

// applySplitter sub-partitions group under the splitter (testSet, symbol):
// two states stay together iff, on symbol, they emit the same output and
// their destinations agree on membership in testSet.
func (m *MooreMachine[I, O]) applySplitter(group *stateClass, symbol I, testSet *stateClass) (classList, error) {
	type splitKey struct {
		inside bool
		output O
	}
	buckets := make(map[splitKey]Set[State])

	for _, state := range group.members {
		arc, ok, err := m.DetStep(state, symbol)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no transition on (%d, %v): %w", state, symbol, ErrIncomplete)
		}

		key := splitKey{inside: testSet.Contains(arc.Dest), output: arc.Output}
		bucket, seen := buckets[key]
		if !seen {
			bucket = NewSet[State]()
			buckets[key] = bucket
		}
		bucket.Add(state)
	}

	sub := make(classList, 0, len(buckets))
	for _, bucket := range buckets {
		sub = append(sub, freezeClass(bucket))
	}
	return sub, nil
}

// fromPartition rebuilds a machine with one state per class. The class output
// is copied from an arbitrary representative, well-defined because class
// members share outputs by construction. Classes are ordered by least member
// so the rebuilt ids are deterministic.
func (m *MooreMachine[I, O]) fromPartition(partition classList) (*MooreMachine[I, O], error) {
	slices.SortFunc(partition, func(a, b *stateClass) int {
		return a.members[0] - b.members[0]
	})

	classOf := make([]int, m.numStates)
	for i, class := range partition {
		for _, s := range class.members {
			classOf[s] = i
		}
	}

	out := NewMooreMachine[I, O]()
	for _, class := range partition {
		output, err := m.OutputOf(class.members[0])
		if err != nil {
			return nil, fmt.Errorf("rebuild: %w", err)
		}
		out.NewStateOutput(output)
	}

	if init, ok := m.InitialState(); ok {
		if err := out.SetInitial(classOf[init]); err != nil {
			return nil, fmt.Errorf("rebuild: %w", err)
		}
	}

	for i, class := range partition {
		rep := class.members[0]
		for symbol := range m.inputSyms {
			arc, ok, err := m.DetStep(rep, symbol)
			if err != nil {
				return nil, fmt.Errorf("rebuild: %w", err)
			}
			if !ok {
				return nil, fmt.Errorf("no transition on (%d, %v): %w", rep, symbol, ErrIncomplete)
			}
			if err := out.NewTransition(i, symbol, classOf[arc.Dest]); err != nil {
				return nil, fmt.Errorf("rebuild: %w", err)
			}
		}
	}
	return out, nil
}
