package fsmx_test

import (
	"errors"
	"fmt"

	"github.com/comalice/fsmx"
)

// Example: document editor with undo/redo over its workflow states
func Example_undoRedo() {
	m, err := fsmx.NewMachineBuilder("editor", "draft").
		State("draft").On("submit", "review").
		State("review").On("approve", "published").On("reject", "draft").
		State("published").
		Build()
	if err != nil {
		panic(err)
	}

	_ = m.Trigger("submit")
	_ = m.Trigger("approve")
	fmt.Println(m.State())

	m.Undo()
	fmt.Println(m.State())

	m.Redo()
	fmt.Println(m.State())

	err = m.Trigger("submit")
	var nt *fsmx.NoTransitionError
	fmt.Println(errors.As(err, &nt), m.State())

	// Output:
	// published
	// review
	// published
	// true published
}

// Example: querying which states react to an event
func Example_states() {
	m, err := fsmx.New(fsmx.Config{
		Initial: "A",
		States: fsmx.States{
			*fsmx.NewStateConfig("A").On("to_b", "B"),
			*fsmx.NewStateConfig("B").On("to_a", "A").On("to_c", "C"),
			*fsmx.NewStateConfig("C"),
		},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(m.States(""))
	fmt.Println(m.States("to_a"))

	// Output:
	// [A B C]
	// [B]
}
