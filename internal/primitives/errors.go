package primitives

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("invalid configuration")
	// ErrUnknownState matches every *UnknownStateError.
	ErrUnknownState = errors.New("unknown state")
	// ErrNoTransition matches every *NoTransitionError.
	ErrNoTransition = errors.New("no transition")
)

// ConfigError reports a missing or malformed configuration field.
type ConfigError struct {
	Field  string // Dotted path of the offending field, empty for the whole config
	Reason string // Human-readable reason for failure
	Err    error  // Underlying cause, if any
}

func (e *ConfigError) Error() string {
	msg := "config"
	if e.Field != "" {
		msg = fmt.Sprintf("config field %q", e.Field)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Err }

// UnknownStateError reports a state name that is not declared in the config.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.State)
}

func (e *UnknownStateError) Is(target error) bool { return target == ErrUnknownState }

// NoTransitionError reports an event with no mapping from the given state.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition for event %q from state %q", e.Event, e.State)
}

func (e *NoTransitionError) Is(target error) bool { return target == ErrNoTransition }
