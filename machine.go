package fsmx

import (
	"log/slog"

	"github.com/comalice/fsmx/internal/core"
)

// Machine is a flat finite-state machine with linear undo/redo history.
//
// The configuration is copied at construction and never changes afterwards.
// Every operation either applies fully or not at all. A Machine is not safe
// for concurrent use; callers sharing one across goroutines must serialize
// access themselves.
type Machine struct {
	config  Config
	index   map[string]int // state name -> position in config.States
	current string
	history *core.History

	name            string
	logger          *slog.Logger
	strict          bool
	resetClearsRedo bool
}

// New creates a Machine positioned at cfg.Initial with empty history.
//
// It fails with a *ConfigError when Initial or States is missing, a state
// name is empty or repeated, or Initial is not a declared state. Transition
// targets are only checked when taken, unless WithStrictValidation is given.
func New(cfg Config, opts ...Option) (*Machine, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		config:  cfg,
		index:   cfg.States.Index(),
		current: cfg.Initial,
		history: core.NewHistory(),
		name:    cfg.ID,
		logger:  Logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.strict {
		if err := m.config.ValidateTargets(); err != nil {
			return nil, err
		}
	}
	if m.name != "" {
		m.logger = m.logger.With("machine", m.name)
	}

	m.logger.Debug("machine created", "initial", m.current, "states", len(m.config.States))
	return m, nil
}

// State returns the current state.
func (m *Machine) State() string {
	return m.current
}

// Initial returns the configured initial state.
func (m *Machine) Initial() string {
	return m.config.Initial
}

// ChangeState moves to target regardless of transition rules. The state being
// left is recorded for Undo and any redo history is discarded.
// Fails with *UnknownStateError, changing nothing, if target is undeclared.
func (m *Machine) ChangeState(target string) error {
	return m.changeState(target, "")
}

// Trigger takes the transition mapped to event from the current state.
// Fails with *NoTransitionError if the current state has no mapping for
// event, or with *UnknownStateError if the mapping names an undeclared state.
// Either way nothing changes.
func (m *Machine) Trigger(event string) error {
	target, ok := m.currentConfig().Target(event)
	if !ok {
		err := &NoTransitionError{State: m.current, Event: event}
		m.logger.Debug("event rejected", "state", m.current, "event", event, "err", err)
		return err
	}
	return m.changeState(target, event)
}

// Can reports whether Trigger(event) would succeed from the current state.
func (m *Machine) Can(event string) bool {
	target, ok := m.currentConfig().Target(event)
	if !ok {
		return false
	}
	_, ok = m.index[target]
	return ok
}

// Reset jumps to the initial state without consulting transition rules. The
// state being left is recorded for Undo. Redo history is kept unless the
// machine was built WithResetClearsRedo.
func (m *Machine) Reset() {
	from := m.current
	if m.resetClearsRedo {
		m.history.Record(from)
	} else {
		m.history.Push(from)
	}
	m.current = m.config.Initial
	m.logger.Debug("state reset", "from", from, "to", m.current)
}

// States returns the declared state names in declared order. With a non-empty
// event it returns only the states that have a mapping for that event.
func (m *Machine) States(event string) []string {
	if event == "" {
		return m.config.States.Names()
	}
	names := make([]string, 0, len(m.config.States))
	for _, s := range m.config.States {
		if s.Handles(event) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Events returns the events mapped from the current state, sorted.
func (m *Machine) Events() []string {
	return m.currentConfig().Events()
}

// Undo steps back to the most recently left state, making the current state
// available to Redo. Returns false, changing nothing, if there is no history.
func (m *Machine) Undo() bool {
	prev, ok := m.history.Undo(m.current)
	if !ok {
		return false
	}
	m.logger.Debug("undo", "from", m.current, "to", prev)
	m.current = prev
	return true
}

// Redo reapplies the most recently undone step. Returns false, changing
// nothing, if there is nothing to redo.
func (m *Machine) Redo() bool {
	next, ok := m.history.Redo(m.current)
	if !ok {
		return false
	}
	m.logger.Debug("redo", "from", m.current, "to", next)
	m.current = next
	return true
}

// ClearHistory empties the undo and redo stacks. The current state is kept.
func (m *Machine) ClearHistory() {
	m.history.Clear()
}

// CanUndo reports whether Undo would succeed.
func (m *Machine) CanUndo() bool {
	return m.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (m *Machine) CanRedo() bool {
	return m.history.CanRedo()
}

// History returns copies of the undo and redo stacks, most recent last.
func (m *Machine) History() (undo, redo []string) {
	return m.history.Snapshot()
}

// Config returns a copy of the machine's configuration.
func (m *Machine) Config() Config {
	return m.config.Clone()
}

func (m *Machine) changeState(target, event string) error {
	if _, ok := m.index[target]; !ok {
		err := &UnknownStateError{State: target}
		m.logger.Debug("state change rejected", "from", m.current, "to", target, "event", event, "err", err)
		return err
	}
	from := m.current
	m.history.Record(from)
	m.current = target
	m.logger.Debug("state changed", "from", from, "to", target, "event", event)
	return nil
}

// currentConfig returns the definition of the current state. current is
// always a declared state, so the index lookup cannot miss.
func (m *Machine) currentConfig() StateConfig {
	return m.config.States[m.index[m.current]]
}
