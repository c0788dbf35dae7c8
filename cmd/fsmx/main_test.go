package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/loader"
	"github.com/comalice/fsmx/internal/primitives"
	"github.com/comalice/fsmx/testutil"
)

// execute runs the root command with args and stdin, returning what it wrote
// to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"FSMX_LOG_LEVEL", "FSMX_LOG_FORMAT", "FSMX_STRICT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func scenarioFile(t *testing.T) string {
	return testutil.WriteFile(t, "scenario.yaml", testutil.ScenarioYAML)
}

func TestValidate(t *testing.T) {
	path := scenarioFile(t)
	cfg := testutil.ScenarioConfig()
	version := primitives.ComputeVersion(&cfg)

	out, _, err := execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\t"+path+"\nversion\t"+version+"\nstates\t3\ntransitions\t3\n", out)
}

func TestValidate_DanglingTargetFailsEvenWhenLazy(t *testing.T) {
	path := testutil.WriteFile(t, "dangling.yaml", testutil.DanglingYAML)

	_, _, err := execute(t, "", "validate", "--lazy", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fsmx.ErrConfig)
	assert.ErrorIs(t, err, fsmx.ErrUnknownState)
	assert.Contains(t, err.Error(), "Nowhere")
}

func TestValidate_ReportsUnreachable(t *testing.T) {
	path := testutil.WriteFile(t, "island.yaml", `initial: A
states:
  A:
    transitions:
      go: B
  B: {}
  D:
    transitions:
      go: A
`)

	out, _, err := execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable\tD\n")
	assert.NotContains(t, out, "unreachable\tB")
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStates(t *testing.T) {
	path := scenarioFile(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"all", nil, "A\nB\nC\n"},
		{"filtered", []string{"--event", "to_c"}, "B\n"},
		{"unhandled", []string{"--event", "nope"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"states", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvents(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "", "events", path)
	require.NoError(t, err)
	assert.Equal(t, "to_b\n", out)

	out, _, err = execute(t, "", "events", path, "--from", "B")
	require.NoError(t, err)
	assert.Equal(t, "to_a\nto_c\n", out)

	out, _, err = execute(t, "", "events", path, "--from", "C")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = execute(t, "", "events", path, "--from", "Z")
	assert.ErrorIs(t, err, fsmx.ErrUnknownState)
}

func TestRun_UndoRedo(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "", "run", path, "to_b", "to_c", ":undo", ":undo", ":redo")
	require.NoError(t, err)
	assert.Equal(t, "start\tA\nto_b\tB\nto_c\tC\n:undo\tB\n:undo\tA\n:redo\tB\n", out)
}

func TestRun_DirectivesAndNoSteps(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, "start\tA\n", out)

	out, _, err = execute(t, "", "run", path, ":goto=C", ":reset", ":redo", ":clear", ":undo")
	require.NoError(t, err)
	assert.Equal(t, "start\tA\n:goto=C\tC\n:reset\tA\n:redo\tA\n:clear\tA\n:undo\tA\n", out)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "", "run", path, "to_c", "to_b")
	require.Error(t, err)
	assert.ErrorIs(t, err, fsmx.ErrNoTransition)
	assert.Equal(t, "start\tA\n", out)
}

func TestRun_KeepGoing(t *testing.T) {
	path := scenarioFile(t)

	out, errOut, err := execute(t, "", "run", "--keep-going", path, "to_c", ":bogus", "to_b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 steps failed")
	assert.Equal(t, "start\tA\nto_b\tB\n", out)
	assert.Contains(t, errOut, `step "to_c"`)
	assert.Contains(t, errOut, `unknown directive ":bogus"`)
}

func TestRun_LazyTargets(t *testing.T) {
	path := testutil.WriteFile(t, "dangling.yaml", testutil.DanglingYAML)

	_, _, err := execute(t, "", "run", path, "go")
	assert.ErrorIs(t, err, fsmx.ErrConfig, "strict by default")

	out, _, err := execute(t, "", "run", "--lazy", path, "go")
	require.NoError(t, err)
	assert.Equal(t, "start\tA\ngo\tB\n", out)

	_, _, err = execute(t, "", "run", "--lazy", path, "lost")
	assert.ErrorIs(t, err, fsmx.ErrUnknownState)
}

func TestRun_StrictFromEnvFile(t *testing.T) {
	path := testutil.WriteFile(t, "dangling.yaml", testutil.DanglingYAML)
	envFile := testutil.WriteFile(t, "lazy.env", "FSMX_STRICT=false\n")

	out, _, err := execute(t, "", "run", "--env-file", envFile, path, "go")
	require.NoError(t, err)
	assert.Equal(t, "start\tA\ngo\tB\n", out)
}

func TestShell(t *testing.T) {
	path := scenarioFile(t)
	input := strings.Join([]string{
		"to_b",
		"# comment",
		"",
		":state",
		":events",
		":states to_a",
		"bogus",
		":history",
		":quit",
		"to_c",
	}, "\n")

	out, errOut, err := execute(t, input, "shell", path)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\nB\nto_a to_c\nB\nundo\tA\nredo\t\n", out)
	assert.Contains(t, errOut, "error: ")
	assert.Contains(t, errOut, "bogus")
}

func TestShell_EventsNamedLikeCommands(t *testing.T) {
	path := testutil.WriteFile(t, "words.yaml", `initial: idle
states:
  idle:
    transitions:
      state: busy
  busy:
    transitions:
      quit: idle
      history: idle
`)

	out, _, err := execute(t, "state\n:events\nquit\nstate\nhistory\n:state\n", "shell", path)
	require.NoError(t, err)
	assert.Equal(t, "idle\nbusy\nhistory quit\nidle\nbusy\nidle\nidle\n", out)
}

func TestShell_EOFAndDirectives(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "to_b\nto_c\n:undo\n:redo\n:goto=A\n", "shell", path)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\nC\nB\nC\nA\n", out)
}

func TestConvert_Stdout(t *testing.T) {
	path := scenarioFile(t)

	out, _, err := execute(t, "", "convert", path)
	require.NoError(t, err)

	cfg, err := loader.Parse([]byte(out), loader.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.States.Names())
	assert.Equal(t, testutil.ScenarioConfig(), cfg)
}

func TestConvert_ToFile(t *testing.T) {
	src := testutil.WriteFile(t, "scenario.json", testutil.ScenarioJSON)
	dst := filepath.Join(t.TempDir(), "out.yml")

	out, _, err := execute(t, "", "convert", src, "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	cfg, err := loader.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, testutil.ScenarioConfig(), cfg)
}

func TestConvert_ToFileWithExplicitFormat(t *testing.T) {
	src := scenarioFile(t)
	dst := filepath.Join(t.TempDir(), "out.json")

	out, _, err := execute(t, "", "convert", src, "--to", "json", "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	want, err := loader.Encode(testutil.ScenarioConfig(), loader.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestConvert_Errors(t *testing.T) {
	path := scenarioFile(t)

	_, _, err := execute(t, "", "convert", path, "--to", "json", "-o", filepath.Join(t.TempDir(), "out.yaml"))
	assert.ErrorContains(t, err, "conflicts")

	_, _, err = execute(t, "", "convert", path, "--to", "toml")
	assert.Error(t, err)

	dangling := testutil.WriteFile(t, "dangling.yaml", testutil.DanglingYAML)
	_, _, err = execute(t, "", "convert", dangling)
	assert.ErrorIs(t, err, fsmx.ErrConfig)
}

func TestApplyStep_GotoNeedsState(t *testing.T) {
	m, err := fsmx.New(testutil.ScenarioConfig())
	require.NoError(t, err)

	assert.Error(t, applyStep(m, ":goto"))
	assert.Error(t, applyStep(m, ":goto="))
	assert.Equal(t, "A", m.State())
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		in         loader.Format
		to, output string
		want       loader.Format
	}{
		{"flip yaml", loader.FormatYAML, "", "", loader.FormatJSON},
		{"flip json", loader.FormatJSON, "", "", loader.FormatYAML},
		{"explicit", loader.FormatYAML, "yml", "", loader.FormatYAML},
		{"from output", loader.FormatYAML, "", "x.json", loader.FormatJSON},
		{"agreeing", loader.FormatJSON, "json", "x.json", loader.FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputFormat(tt.in, tt.to, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
