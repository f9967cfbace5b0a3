package minimoore

import (
	"fmt"
	"iter"
)

// State identifies a machine state. Ids are contiguous integers assigned
// sequentially from 0; they are never reused or renumbered except when a
// machine is rebuilt wholesale.
type State = int

// Transition is a (source, input symbol, destination) triple.
type Transition[I comparable] struct {
	Source State
	Symbol I
	Dest   State
}

// Arc is one outcome of reading a symbol: the destination state together with
// the output symbol emitted.
type Arc[O comparable] struct {
	Dest   State
	Output O
}

// Transducer is the surface shared by finite transducers. Step returns the
// set of arcs available on a symbol, empty when the transition is undefined;
// the set-returning contract is the seam between the general (possibly
// nondeterministic) interface and the deterministic stepping below.
type Transducer[I, O comparable] interface {
	NumStates() int
	IsState(state State) bool
	States() iter.Seq[State]
	ArcsFrom(state State) Set[I]
	Step(state State, symbol I) (Set[Arc[O]], error)
	InputAlphabet() iter.Seq[I]
	OutputAlphabet() iter.Seq[O]
	Transitions() iter.Seq[Transition[I]]
}

// machineCore carries the state bookkeeping shared by concrete machines:
// the dense id counter, the candidate-initial set and the single canonical
// initial state of the deterministic specialization.
type machineCore struct {
	numStates int
	initials  Set[State]
	initState State

	// registerState, when set, runs for each created state so the embedding
	// machine can grow its per-state tables.
	registerState func(State)
}

func newMachineCore() machineCore {
	return machineCore{
		initials:  NewSet[State](),
		initState: -1,
	}
}

// NewState creates a new state and returns its id.
func (c *machineCore) NewState() State {
	state := c.numStates
	c.numStates++
	if c.registerState != nil {
		c.registerState(state)
	}
	return state
}

func (c *machineCore) NumStates() int {
	return c.numStates
}

// IsState reports whether state is a valid id.
func (c *machineCore) IsState(state State) bool {
	return state >= 0 && state < c.numStates
}

func (c *machineCore) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		for state := 0; state < c.numStates; state++ {
			if !yield(state) {
				return
			}
		}
	}
}

// SetInitial designates state as the initial state. A previous designation is
// replaced, not kept.
func (c *machineCore) SetInitial(state State) error {
	if !c.IsState(state) {
		return fmt.Errorf("set initial %d: %w", state, ErrInvalidState)
	}
	c.initials = NewSet(state)
	c.initState = state
	return nil
}

// InitialState returns the canonical initial state; ok is false when none has
// been designated.
func (c *machineCore) InitialState() (State, bool) {
	return c.initState, c.initState >= 0
}

// detStep reads one symbol deterministically. ok is false when no transition
// is defined for the symbol; more than one candidate arc is an invariant
// violation reported as ErrNotDeterministic.
func detStep[I, O comparable](t Transducer[I, O], state State, symbol I) (Arc[O], bool, error) {
	var zero Arc[O]
	if !t.IsState(state) {
		return zero, false, fmt.Errorf("step from %d: %w", state, ErrInvalidState)
	}
	arcs, err := t.Step(state, symbol)
	if err != nil {
		return zero, false, err
	}
	if arcs.Len() == 0 {
		return zero, false, nil
	}
	if arcs.Len() > 1 {
		return zero, false, fmt.Errorf("%d arcs on (%d, %v): %w", arcs.Len(), state, symbol, ErrNotDeterministic)
	}
	for arc := range arcs {
		return arc, true, nil
	}
	return zero, false, nil
}

// processWordFrom folds detStep over word starting at state, accumulating the
// output symbols. With strict set, an undefined transition yields
// ErrMissingTransition; otherwise processing stops and the output produced so
// far is returned together with the state reached.
func processWordFrom[I, O comparable](t Transducer[I, O], state State, word []I, strict bool) ([]O, State, error) {
	if !t.IsState(state) {
		return nil, state, fmt.Errorf("process word from %d: %w", state, ErrInvalidState)
	}
	output := make([]O, 0, len(word))
	for _, symbol := range word {
		arc, ok, err := detStep(t, state, symbol)
		if err != nil {
			return nil, state, err
		}
		if !ok {
			if strict {
				return nil, state, fmt.Errorf("transition (%d, %v): %w", state, symbol, ErrMissingTransition)
			}
			break
		}
		output = append(output, arc.Output)
		state = arc.Dest
	}
	return output, state, nil
}
