package fsmx

import "github.com/comalice/fsmx/internal/primitives"

// Error kinds. Each typed error matches its sentinel with errors.Is and can be
// extracted with errors.As; a *ConfigError may additionally wrap an
// *UnknownStateError when the problem is an undeclared state name.
type (
	ConfigError       = primitives.ConfigError
	UnknownStateError = primitives.UnknownStateError
	NoTransitionError = primitives.NoTransitionError
)

var (
	// ErrConfig is matched by errors from New, NewFromMap and the config loaders.
	ErrConfig = primitives.ErrConfig
	// ErrUnknownState is matched by ChangeState and Trigger failures that name
	// an undeclared state.
	ErrUnknownState = primitives.ErrUnknownState
	// ErrNoTransition is matched by Trigger when the event is not legal from
	// the current state.
	ErrNoTransition = primitives.ErrNoTransition
)
