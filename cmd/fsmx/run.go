package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run <file> <step>...",
		Short: "Replay a sequence of events",
		Long: `Builds the machine and applies each step in order, printing the state after
every step. A step is an event name or one of the directives
:undo, :redo, :reset, :clear and :goto=STATE.`,
		Example: `  fsmx run door.yaml open close :undo :redo`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			steps := args[1:]

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start\t%s\n", m.State())

			failed := 0
			for _, step := range steps {
				if err := applyStep(m, step); err != nil {
					if !keepGoing {
						return fmt.Errorf("step %q: %w", step, err)
					}
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "step %q: %v\n", step, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", step, m.State())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d steps failed", failed, len(steps))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report failed steps and continue with the rest")
	return cmd
}
