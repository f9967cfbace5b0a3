package minimoore

// Builder constructs Moore machines from named states, creating states on
// first use so transitions can reference states declared later:
//
//	b := minimoore.NewBuilder[int, string]()
//	b.State("s0").Init().Output("a").To(0, "s1").To(1, "s0")
//	b.State("s1").Output("b").To(0, "s0").To(1, "s1")
//	m := b.Machine()
type Builder[I, O comparable] struct {
	machine *MooreMachine[I, O]
	names   map[string]State
}

func NewBuilder[I, O comparable]() *Builder[I, O] {
	return &Builder[I, O]{
		machine: NewMooreMachine[I, O](),
		names:   make(map[string]State),
	}
}

// State returns a builder scoped to the named state, creating the state if it
// does not exist yet.
func (b *Builder[I, O]) State(name string) *StateBuilder[I, O] {
	return &StateBuilder[I, O]{builder: b, state: b.resolve(name)}
}

// Machine returns the machine under construction.
func (b *Builder[I, O]) Machine() *MooreMachine[I, O] {
	return b.machine
}

func (b *Builder[I, O]) resolve(name string) State {
	if state, ok := b.names[name]; ok {
		return state
	}
	state := b.machine.NewState()
	b.names[name] = state
	return state
}

// StateBuilder chains declarations for one named state. All referenced states
// exist by construction, so the chained calls cannot fail.
type StateBuilder[I, O comparable] struct {
	builder *Builder[I, O]
	state   State
}

// Init designates this state as initial, replacing a previous designation.
func (sb *StateBuilder[I, O]) Init() *StateBuilder[I, O] {
	_ = sb.builder.machine.SetInitial(sb.state)
	return sb
}

// Output assigns the state's output symbol.
func (sb *StateBuilder[I, O]) Output(output O) *StateBuilder[I, O] {
	_ = sb.builder.machine.SetStateOutput(sb.state, output)
	return sb
}

// To adds a transition on symbol to the named destination, creating the
// destination state if needed.
func (sb *StateBuilder[I, O]) To(symbol I, dest string) *StateBuilder[I, O] {
	_ = sb.builder.machine.NewTransition(sb.state, symbol, sb.builder.resolve(dest))
	return sb
}

// ID returns the underlying state id.
func (sb *StateBuilder[I, O]) ID() State {
	return sb.state
}
