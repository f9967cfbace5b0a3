package minimoore

import "errors"

var (
	// ErrInvalidState reports a state id outside [0, NumStates).
	ErrInvalidState = errors.New("not a valid state")

	// ErrNoOutput reports a read of a state whose output was never assigned.
	ErrNoOutput = errors.New("output not assigned")

	// ErrNotDeterministic reports more than one candidate transition for a
	// (state, symbol) pair during a deterministic step.
	ErrNotDeterministic = errors.New("machine is not deterministic")

	// ErrMissingTransition reports an undefined transition during strict word
	// processing.
	ErrMissingTransition = errors.New("transition does not exist")

	// ErrIncomplete reports a machine whose transition function is not total
	// where totality is required.
	ErrIncomplete = errors.New("transition function is not complete")

	// ErrNoInitial reports an operation that needs an initial state on a
	// machine that has none designated.
	ErrNoInitial = errors.New("initial state not set")
)
