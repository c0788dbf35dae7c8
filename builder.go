package fsmx

// MachineBuilder provides a fluent API for assembling a Config. States are
// declared in the order they are first named through State.
type MachineBuilder struct {
	config Config
	index  map[string]int
}

// StateBuilder provides fluent methods for configuring an individual state.
type StateBuilder struct {
	b    *MachineBuilder
	name string
}

// NewMachineBuilder creates a builder for a machine labelled id that starts
// in initial. The initial state is declared first.
func NewMachineBuilder(id, initial string) *MachineBuilder {
	b := &MachineBuilder{
		config: Config{ID: id, Initial: initial},
		index:  make(map[string]int),
	}
	if initial != "" {
		b.declare(initial)
	}
	return b
}

// State creates or retrieves a state by name.
func (b *MachineBuilder) State(name string) *StateBuilder {
	b.declare(name)
	return &StateBuilder{b: b, name: name}
}

// Config returns a copy of the configuration assembled so far.
func (b *MachineBuilder) Config() Config {
	return b.config.Clone()
}

// Build validates the configuration, including every transition target, and
// constructs the Machine.
func (b *MachineBuilder) Build(opts ...Option) (*Machine, error) {
	return New(b.Config(), append([]Option{WithStrictValidation()}, opts...)...)
}

// declare returns the position of name, appending a new state on first use.
func (b *MachineBuilder) declare(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	i := len(b.config.States)
	b.config.States = append(b.config.States, StateConfig{Name: name})
	b.index[name] = i
	return i
}

// On adds a transition from this state to target when event occurs. The
// target must be declared with State before Build.
func (sb *StateBuilder) On(event, target string) *StateBuilder {
	i := sb.b.declare(sb.name)
	sb.b.config.States[i].On(event, target)
	return sb
}

// State continues the chain with another state.
func (sb *StateBuilder) State(name string) *StateBuilder {
	return sb.b.State(name)
}

// Build finishes the chain; see MachineBuilder.Build.
func (sb *StateBuilder) Build(opts ...Option) (*Machine, error) {
	return sb.b.Build(opts...)
}
