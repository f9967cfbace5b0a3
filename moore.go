package minimoore

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// MooreMachine is a deterministic finite transducer whose output symbols are
// attached to states. States are created with NewState or NewStateOutput;
// NewTransition inserts or overwrites the single (state, symbol) edge, which
// keeps the machine deterministic by construction. Alphabets are derived from
// the symbols actually used.
type MooreMachine[I, O comparable] struct {
	machineCore

	outputs  []O
	assigned *bitset.BitSet // states with an output assigned
	edges    []map[I]State

	inputSyms  Set[I]
	outputSyms Set[O]
}

var _ Transducer[int, string] = (*MooreMachine[int, string])(nil)

func NewMooreMachine[I, O comparable]() *MooreMachine[I, O] {
	m := &MooreMachine[I, O]{
		machineCore: newMachineCore(),
		assigned:    bitset.New(2),
		inputSyms:   NewSet[I](),
		outputSyms:  NewSet[O](),
	}
	m.registerState = m.registerTables
	return m
}

// registerTables grows the per-state tables for a newly created state.
func (m *MooreMachine[I, O]) registerTables(State) {
	var zero O
	m.outputs = append(m.outputs, zero)
	m.edges = append(m.edges, make(map[I]State))
}

// NewStateOutput creates a new state and assigns its output symbol.
func (m *MooreMachine[I, O]) NewStateOutput(output O) State {
	state := m.NewState()
	m.setOutput(state, output)
	return state
}

// SetStateOutput assigns an output symbol to an existing state.
func (m *MooreMachine[I, O]) SetStateOutput(state State, output O) error {
	if !m.IsState(state) {
		return fmt.Errorf("set output of %d: %w", state, ErrInvalidState)
	}
	m.setOutput(state, output)
	return nil
}

func (m *MooreMachine[I, O]) setOutput(state State, output O) {
	m.outputs[state] = output
	m.assigned.Set(uint(state))
	m.outputSyms.Add(output)
}

// NewTransition adds the (s1, symbol) → s2 edge, overwriting a previous edge
// on the same pair.
func (m *MooreMachine[I, O]) NewTransition(s1 State, symbol I, s2 State) error {
	if !m.IsState(s1) {
		return fmt.Errorf("transition from %d: %w", s1, ErrInvalidState)
	}
	if !m.IsState(s2) {
		return fmt.Errorf("transition to %d: %w", s2, ErrInvalidState)
	}
	m.edges[s1][symbol] = s2
	m.inputSyms.Add(symbol)
	return nil
}

// OutputOf returns the output symbol assigned to state. Reading a state whose
// output was never assigned is a precondition violation.
func (m *MooreMachine[I, O]) OutputOf(state State) (O, error) {
	var zero O
	if !m.IsState(state) {
		return zero, fmt.Errorf("output of %d: %w", state, ErrInvalidState)
	}
	if !m.assigned.Test(uint(state)) {
		return zero, fmt.Errorf("state %d: %w", state, ErrNoOutput)
	}
	return m.outputs[state], nil
}

// ArcsFrom returns the set of input symbols with an outgoing transition from
// state.
func (m *MooreMachine[I, O]) ArcsFrom(state State) Set[I] {
	symbols := NewSet[I]()
	if !m.IsState(state) {
		return symbols
	}
	for symbol := range m.edges[state] {
		symbols.Add(symbol)
	}
	return symbols
}

// Step processes one input symbol from state. The returned set holds at most
// one arc, empty when the transition is undefined; the output emitted is the
// one attached to the source state.
func (m *MooreMachine[I, O]) Step(state State, symbol I) (Set[Arc[O]], error) {
	if !m.IsState(state) {
		return nil, fmt.Errorf("step from %d: %w", state, ErrInvalidState)
	}
	arcs := NewSet[Arc[O]]()
	dest, ok := m.edges[state][symbol]
	if !ok {
		return arcs, nil
	}
	output, err := m.OutputOf(state)
	if err != nil {
		return nil, err
	}
	arcs.Add(Arc[O]{Dest: dest, Output: output})
	return arcs, nil
}

// DetStep reads one symbol deterministically; ok is false when the transition
// is undefined.
func (m *MooreMachine[I, O]) DetStep(state State, symbol I) (Arc[O], bool, error) {
	return detStep[I, O](m, state, symbol)
}

// ProcessWordFrom transforms word starting at state and returns the output
// word together with the state reached. See ProcessWord for strictness.
func (m *MooreMachine[I, O]) ProcessWordFrom(state State, word []I, strict bool) ([]O, State, error) {
	return processWordFrom[I, O](m, state, word, strict)
}

// ProcessWord transforms word from the initial state. With strict set, an
// undefined transition yields ErrMissingTransition; otherwise the output
// produced up to that point is returned.
func (m *MooreMachine[I, O]) ProcessWord(word []I, strict bool) ([]O, error) {
	init, ok := m.InitialState()
	if !ok {
		return nil, fmt.Errorf("process word: %w", ErrNoInitial)
	}
	output, _, err := processWordFrom[I, O](m, init, word, strict)
	return output, err
}

func (m *MooreMachine[I, O]) InputAlphabet() iter.Seq[I] {
	return m.inputSyms.All()
}

func (m *MooreMachine[I, O]) OutputAlphabet() iter.Seq[O] {
	return m.outputSyms.All()
}

// Transitions iterates over all transitions in unspecified order.
func (m *MooreMachine[I, O]) Transitions() iter.Seq[Transition[I]] {
	return func(yield func(Transition[I]) bool) {
		for state, row := range m.edges {
			for symbol, dest := range row {
				if !yield(Transition[I]{Source: state, Symbol: symbol, Dest: dest}) {
					return
				}
			}
		}
	}
}

// NumTransitions returns how many transitions the machine has.
func (m *MooreMachine[I, O]) NumTransitions() int {
	n := 0
	for _, row := range m.edges {
		n += len(row)
	}
	return n
}

// IsComplete reports whether every state has a transition for every symbol of
// the input alphabet.
func (m *MooreMachine[I, O]) IsComplete() bool {
	for _, row := range m.edges {
		if len(row) != m.inputSyms.Len() {
			return false
		}
	}
	return true
}

// allOutputsAssigned reports whether every state has an output symbol.
func (m *MooreMachine[I, O]) allOutputsAssigned() bool {
	for state := 0; state < m.numStates; state++ {
		if !m.assigned.Test(uint(state)) {
			return false
		}
	}
	return true
}

// CompleteOutputs assigns def to every state with no output. Idempotent:
// reapplying changes nothing once all outputs are set.
func (m *MooreMachine[I, O]) CompleteOutputs(def O) {
	for state := 0; state < m.numStates; state++ {
		if !m.assigned.Test(uint(state)) {
			m.setOutput(state, def)
		}
	}
}

// CompleteSink makes the transition function total by creating one absorbing
// state with output defaultOutput, self-looping on every alphabet symbol, and
// redirecting every missing (state, symbol) edge to it. When the machine is
// already complete this is a no-op and ok is false; the machine is left
// untouched, which makes the operation idempotent.
func (m *MooreMachine[I, O]) CompleteSink(defaultOutput O) (sink State, ok bool) {
	if m.IsComplete() {
		return -1, false
	}
	sink = m.NewStateOutput(defaultOutput)
	for state := range m.edges {
		for symbol := range m.inputSyms {
			if _, defined := m.edges[state][symbol]; !defined {
				m.edges[state][symbol] = sink
			}
		}
	}
	return sink, true
}

// Equal reports structural equality: same state count, initial designation,
// alphabets, transition set and output table. Ids must line up exactly; this
// is not isomorphism-equality.
func (m *MooreMachine[I, O]) Equal(other *MooreMachine[I, O]) bool {
	if m == other {
		return true
	}
	if m.numStates != other.numStates || m.initState != other.initState {
		return false
	}
	if !m.initials.Equal(other.initials) {
		return false
	}
	if !m.inputSyms.Equal(other.inputSyms) || !m.outputSyms.Equal(other.outputSyms) {
		return false
	}
	for state := 0; state < m.numStates; state++ {
		if m.assigned.Test(uint(state)) != other.assigned.Test(uint(state)) {
			return false
		}
		if m.assigned.Test(uint(state)) && m.outputs[state] != other.outputs[state] {
			return false
		}
	}
	for state, row := range m.edges {
		if len(row) != len(other.edges[state]) {
			return false
		}
		for symbol, dest := range row {
			if otherDest, defined := other.edges[state][symbol]; !defined || otherDest != dest {
				return false
			}
		}
	}
	return true
}
