package fsmx

import "log/slog"

// Logger is the default logger used when none is provided. It discards
// everything.
var Logger = slog.New(slog.DiscardHandler)

// Option is a functional option for configuring a Machine
type Option func(*Machine)

// WithLogger sets the logger for the machine. Transitions are logged at debug
// level, as are rejected operations.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithName sets the label attached to log records. Defaults to Config.ID.
func WithName(name string) Option {
	return func(m *Machine) {
		m.name = name
	}
}

// WithStrictValidation checks every transition target at construction
// instead of when the transition is taken. A dangling target fails New with
// a *ConfigError wrapping an *UnknownStateError.
func WithStrictValidation() Option {
	return func(m *Machine) {
		m.strict = true
	}
}

// WithResetClearsRedo makes Reset discard the redo stack like any other state
// change. By default Reset leaves redo intact.
func WithResetClearsRedo() Option {
	return func(m *Machine) {
		m.resetClearsRedo = true
	}
}
