// StateConfig represents a single state and its event-to-target transition
// table. States is the ordered collection a Config carries.
package primitives

import (
	"errors"
	"sort"
	"strings"
)

// StateConfig defines a state configuration. A state with no transitions is
// terminal.
type StateConfig struct {
	Name        string            `json:"-" yaml:"-"` // Carried as the mapping key in documents
	Transitions map[string]string `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// NewStateConfig creates a new StateConfig with the given name.
func NewStateConfig(name string) *StateConfig {
	return &StateConfig{Name: name}
}

// On adds or replaces the transition taken on event.
func (s *StateConfig) On(event, target string) *StateConfig {
	if s.Transitions == nil {
		s.Transitions = make(map[string]string)
	}
	s.Transitions[event] = target
	return s
}

// WithTransitions replaces the transition table with a copy of transitions.
func (s *StateConfig) WithTransitions(transitions map[string]string) *StateConfig {
	s.Transitions = copyTransitions(transitions)
	return s
}

// Validate checks the state name and event names. Targets are not checked.
func (s *StateConfig) Validate() error {
	if s.Name == "" {
		return errors.New("state name is required")
	}
	for event := range s.Transitions {
		if strings.TrimSpace(event) == "" {
			return errors.New("empty event name in transitions of state " + s.Name)
		}
	}
	return nil
}

// Target returns the destination for event. The boolean reports whether the
// event is mapped at all, independent of the target's value.
func (s StateConfig) Target(event string) (string, bool) {
	target, ok := s.Transitions[event]
	return target, ok
}

// Handles reports whether event has a mapping from this state.
func (s StateConfig) Handles(event string) bool {
	_, ok := s.Transitions[event]
	return ok
}

// Terminal reports whether the state has no outgoing transitions.
func (s StateConfig) Terminal() bool {
	return len(s.Transitions) == 0
}

// Events returns the mapped event names in sorted order.
func (s StateConfig) Events() []string {
	events := make([]string, 0, len(s.Transitions))
	for event := range s.Transitions {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// Clone returns a copy that shares no map with s.
func (s StateConfig) Clone() StateConfig {
	s.Transitions = copyTransitions(s.Transitions)
	return s
}

func copyTransitions(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// States is the ordered list of configured states.
type States []StateConfig

// Names returns the state names in declared order.
func (ss States) Names() []string {
	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = s.Name
	}
	return names
}

// Index maps each state name to its position. On duplicate names the first
// declaration wins.
func (ss States) Index() map[string]int {
	index := make(map[string]int, len(ss))
	for i, s := range ss {
		if _, ok := index[s.Name]; !ok {
			index[s.Name] = i
		}
	}
	return index
}

// Lookup returns the first state declared under name.
func (ss States) Lookup(name string) (StateConfig, bool) {
	for _, s := range ss {
		if s.Name == name {
			return s, true
		}
	}
	return StateConfig{}, false
}

// Clone returns a deep copy of the list.
func (ss States) Clone() States {
	if ss == nil {
		return nil
	}
	out := make(States, len(ss))
	for i, s := range ss {
		out[i] = s.Clone()
	}
	return out
}
