// Package testutil provides configuration fixtures shared by the test suites
// of the engine, the loader and the CLI, so every layer is exercised against
// the same machine.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/comalice/fsmx/internal/primitives"
)

// ScenarioYAML is the three-state scenario machine:
// A -to_b-> B, B -to_a-> A, B -to_c-> C, C terminal.
const ScenarioYAML = `id: scenario
initial: A
states:
  A:
    transitions:
      to_b: B
  B:
    transitions:
      to_a: A
      to_c: C
  C: {}
`

// ScenarioJSON is ScenarioYAML in JSON form.
const ScenarioJSON = `{
  "id": "scenario",
  "initial": "A",
  "states": {
    "A": {"transitions": {"to_b": "B"}},
    "B": {"transitions": {"to_a": "A", "to_c": "C"}},
    "C": {}
  }
}
`

// DanglingYAML declares a transition to a state that does not exist.
const DanglingYAML = `initial: A
states:
  A:
    transitions:
      go: B
      lost: Nowhere
  B: {}
`

// ScenarioConfig returns a fresh copy of the scenario machine.
func ScenarioConfig() primitives.Config {
	return primitives.Config{
		ID:      "scenario",
		Initial: "A",
		States: primitives.States{
			*primitives.NewStateConfig("A").On("to_b", "B"),
			*primitives.NewStateConfig("B").On("to_a", "A").On("to_c", "C"),
			*primitives.NewStateConfig("C"),
		},
	}
}

// WriteFile writes content to name under a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
