// Transition is the flattened form of one entry in a state's transition
// table, used where a stable, listable view is needed.
package primitives

import "sort"

// Transition is a single event-to-target mapping of a state.
type Transition struct {
	Event  string `json:"event" yaml:"event"`
	Target string `json:"target" yaml:"target"`
}

// TransitionList returns the state's transitions sorted by event name.
func (s StateConfig) TransitionList() []Transition {
	list := make([]Transition, 0, len(s.Transitions))
	for event, target := range s.Transitions {
		list = append(list, Transition{Event: event, Target: target})
	}
	SortTransitions(list)
	return list
}

// SortTransitions sorts the slice in place by event name.
func SortTransitions(transitions []Transition) {
	sort.Slice(transitions, func(i, j int) bool {
		return transitions[i].Event < transitions[j].Event
	})
}
