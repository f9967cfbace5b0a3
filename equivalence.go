package minimoore

import "fmt"

// statePair relates a state of one machine with a state of another.
type statePair struct {
	s1, s2 State
}

// IsEquivalent reports whether m and other compute the same input→output
// mapping, by refining a bisimulation relation on the pair universe toward
// its greatest fixpoint. Machines with different input or output alphabets
// are trivially not equivalent (false, not an error). Both machines must have
// an initial state designated and every state's output assigned; neither
// machine is mutated.
func (m *MooreMachine[I, O]) IsEquivalent(other *MooreMachine[I, O]) (bool, error) {
	if m == other {
		return true, nil
	}
	init1, ok := m.InitialState()
	if !ok {
		return false, fmt.Errorf("is equivalent: %w", ErrNoInitial)
	}
	init2, ok := other.InitialState()
	if !ok {
		return false, fmt.Errorf("is equivalent: %w", ErrNoInitial)
	}
	if !m.allOutputsAssigned() || !other.allOutputsAssigned() {
		return false, fmt.Errorf("is equivalent: %w", ErrNoOutput)
	}
	if !m.inputSyms.Equal(other.inputSyms) || !m.outputSyms.Equal(other.outputSyms) {
		return false, nil
	}

	universe := NewSet[statePair]()
	for s1 := 0; s1 < m.numStates; s1++ {
		for s2 := 0; s2 < other.numStates; s2++ {
			universe.Add(statePair{s1, s2})
		}
	}

	// Pairs provably not bisimilar under the current relation.
	notBisimilar := func(relation Set[statePair]) Set[statePair] {
		removed := NewSet[statePair]()
		for pair := range relation {
			if m.distinguished(other, pair, relation) {
				removed.Add(pair)
			}
		}
		return removed
	}

	initPair := statePair{init1, init2}
	stop := func(relation Set[statePair]) bool {
		return !relation.Contains(initPair)
	}

	relation := GreatestFixpoint(Difference(notBisimilar), universe, stop)
	return relation.Contains(initPair), nil
}

// distinguished reports whether the pair is provably not bisimilar under
// relation: outputs differ, the outgoing symbol sets differ, or some symbol
// leads to a pair outside the relation.
func (m *MooreMachine[I, O]) distinguished(other *MooreMachine[I, O], pair statePair, relation Set[statePair]) bool {
	if m.outputs[pair.s1] != other.outputs[pair.s2] {
		return true
	}
	row1 := m.edges[pair.s1]
	row2 := other.edges[pair.s2]
	if len(row1) != len(row2) {
		return true
	}
	for symbol, dest1 := range row1 {
		dest2, defined := row2[symbol]
		if !defined {
			return true
		}
		if !relation.Contains(statePair{dest1, dest2}) {
			return true
		}
	}
	return false
}
