// Package core provides the runtime core tier of the fsmx engine.
// History holds the linear undo/redo record of visited states.
// Stdlib-only implementation.
// Not safe for concurrent use; the owning Machine serializes access.
package core

// History tracks previously visited states for undo and redo.
// Both stacks are most-recent-last. Availability is derived from stack
// length on every query; nothing is cached.
type History struct {
	undo []string // states left behind by a change, most recent last
	redo []string // states stepped back from by Undo, most recent last
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Record registers a forward change away from state. A new branch
// invalidates redo, so the redo stack is discarded.
func (h *History) Record(state string) {
	h.undo = append(h.undo, state)
	h.redo = h.redo[:0]
}

// Push registers a jump away from state without touching redo.
func (h *History) Push(state string) {
	h.undo = append(h.undo, state)
}

// Undo pops the most recent undo entry and files current on the redo stack.
// Returns the state to move to, and false with no change if undo is empty.
func (h *History) Undo(current string) (string, bool) {
	prev, ok := pop(&h.undo)
	if !ok {
		return "", false
	}
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo pops the most recent redo entry and files current on the undo stack.
// Returns the state to move to, and false with no change if redo is empty.
func (h *History) Redo(current string) (string, bool) {
	next, ok := pop(&h.redo)
	if !ok {
		return "", false
	}
	h.undo = append(h.undo, current)
	return next, true
}

// ClearRedo discards the redo stack.
func (h *History) ClearRedo() {
	h.redo = h.redo[:0]
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Snapshot returns copies of both stacks, most recent last.
func (h *History) Snapshot() (undo, redo []string) {
	return append([]string(nil), h.undo...), append([]string(nil), h.redo...)
}

func pop(stack *[]string) (string, bool) {
	s := *stack
	if len(s) == 0 {
		return "", false
	}
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	return top, true
}
