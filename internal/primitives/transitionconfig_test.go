package primitives

import (
	"reflect"
	"testing"
)

func TestTransitionList(t *testing.T) {
	s := NewStateConfig("b").On("to_c", "C").On("to_a", "A")
	want := []Transition{
		{Event: "to_a", Target: "A"},
		{Event: "to_c", Target: "C"},
	}
	if got := s.TransitionList(); !reflect.DeepEqual(got, want) {
		t.Errorf("TransitionList() = %v, want %v", got, want)
	}
}

func TestSortTransitions(t *testing.T) {
	ts := []Transition{{Event: "c"}, {Event: "a"}, {Event: "b"}}
	SortTransitions(ts)
	for i, want := range []string{"a", "b", "c"} {
		if ts[i].Event != want {
			t.Errorf("ts[%d].Event = %q, want %q", i, ts[i].Event, want)
		}
	}
}
