// Package fsmx is a small finite-state machine with linear undo/redo.
//
// A machine is built from a declarative Config: an initial state and an
// ordered list of states, each mapping event names to destination states.
//
//	m, err := fsmx.New(fsmx.Config{
//		Initial: "A",
//		States: fsmx.States{
//			*fsmx.NewStateConfig("A").On("to_b", "B"),
//			*fsmx.NewStateConfig("B").On("to_a", "A"),
//		},
//	})
//	if err != nil {
//		return err
//	}
//	_ = m.Trigger("to_b") // A -> B
//	m.Undo()              // back to A
//	m.Redo()              // forward to B
//
// Every move away from a state (ChangeState, Trigger, Reset) records that
// state for Undo. ChangeState and Trigger also discard redo history, since
// they start a new branch. Undo and Redo availability is always derived from
// the recorded history.
//
// Configs can also be loaded from YAML or JSON with LoadConfig, decoded from
// loose maps with ConfigFromMap, or assembled with NewMachineBuilder.
package fsmx
