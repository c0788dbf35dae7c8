// Config represents the top-level configuration of a state machine: the
// initial state and the ordered list of states.
// Validation covers presence of Initial and States, state name uniqueness and
// membership of Initial. Transition targets are checked separately by
// ValidateTargets so callers can choose lazy or eager checking.

package primitives

import (
	"fmt"
	"strings"
)

// Config defines the complete machine configuration.
type Config struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Initial string `json:"initial" yaml:"initial"`
	States  States `json:"states" yaml:"states"`
}

// Validate validates the configuration shape:
// - Non-empty Initial
// - Non-empty States
// - Every state validates and names are unique
// - Initial is a declared state
func (c *Config) Validate() error {
	if c.Initial == "" {
		return &ConfigError{Field: "initial", Reason: "is required"}
	}
	if len(c.States) == 0 {
		return &ConfigError{Field: "states", Reason: "is required and cannot be empty"}
	}

	seen := make(map[string]struct{}, len(c.States))
	for i, state := range c.States {
		if err := state.Validate(); err != nil {
			return &ConfigError{Field: fmt.Sprintf("states[%d]", i), Reason: err.Error()}
		}
		if _, dup := seen[state.Name]; dup {
			return &ConfigError{Field: "states." + state.Name, Reason: "is declared more than once"}
		}
		seen[state.Name] = struct{}{}
	}

	if _, ok := seen[c.Initial]; !ok {
		return &ConfigError{
			Field:  "initial",
			Reason: "is not a declared state",
			Err:    &UnknownStateError{State: c.Initial},
		}
	}
	return nil
}

// ValidateTargets checks that every transition target is a declared state.
// States are visited in declared order and events in name order, so the first
// reported problem is deterministic.
func (c *Config) ValidateTargets() error {
	index := c.States.Index()
	for _, state := range c.States {
		for _, t := range state.TransitionList() {
			if _, ok := index[t.Target]; !ok {
				return &ConfigError{
					Field:  strings.Join([]string{"states", state.Name, "transitions", t.Event}, "."),
					Reason: "targets an undeclared state",
					Err:    &UnknownStateError{State: t.Target},
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy; the copy shares no maps or slices with c.
func (c Config) Clone() Config {
	c.States = c.States.Clone()
	return c
}
