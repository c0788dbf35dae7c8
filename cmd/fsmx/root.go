package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/logging"
	"github.com/comalice/fsmx/internal/settings"
)

// app carries what every subcommand needs once flags and settings are read.
type app struct {
	settings settings.Settings
	logger   *slog.Logger
	envFiles []string
	lazy     bool
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "fsmx",
		Short: "fsmx drives finite-state machines from YAML or JSON configs",
		Long: `fsmx loads a machine config (initial state plus states with event transitions)
and lets you validate it, query it, and replay events with undo/redo.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(a.envFiles...)
			if err != nil {
				return err
			}
			a.settings = s
			a.logger = logging.New(cmd.ErrOrStderr(), s.Level(), s.LogFormat)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load settings from these .env files instead of ./.env")
	rootCmd.PersistentFlags().BoolVar(&a.lazy, "lazy", false, "Check transition targets only when taken, overriding FSMX_STRICT")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newStatesCmd(a),
		newEventsCmd(a),
		newRunCmd(a),
		newShellCmd(a),
		newConvertCmd(a),
	)
	return rootCmd
}

// options returns the machine options implied by settings and flags.
func (a *app) options() []fsmx.Option {
	opts := []fsmx.Option{fsmx.WithLogger(a.logger)}
	if a.settings.Strict && !a.lazy {
		opts = append(opts, fsmx.WithStrictValidation())
	}
	return opts
}

// machine loads the config at path and builds a Machine from it.
func (a *app) machine(path string) (*fsmx.Machine, error) {
	cfg, err := fsmx.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	m, err := fsmx.New(cfg, a.options()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("machine loaded", "path", path, "initial", m.Initial())
	return m, nil
}
