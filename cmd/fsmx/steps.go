package main

import (
	"fmt"
	"strings"

	"github.com/comalice/fsmx"
)

// applyStep feeds one step to m. A step is an event name or one of the
// directives :undo, :redo, :reset, :clear and :goto=STATE.
func applyStep(m *fsmx.Machine, step string) error {
	if !strings.HasPrefix(step, ":") {
		return m.Trigger(step)
	}

	directive, arg, _ := strings.Cut(step[1:], "=")
	switch directive {
	case "undo":
		m.Undo()
	case "redo":
		m.Redo()
	case "reset":
		m.Reset()
	case "clear":
		m.ClearHistory()
	case "goto":
		if arg == "" {
			return fmt.Errorf("directive :goto needs a state, as in :goto=NAME")
		}
		return m.ChangeState(arg)
	default:
		return fmt.Errorf("unknown directive %q", step)
	}
	return nil
}
