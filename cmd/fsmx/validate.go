package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/primitives"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a machine config for consistency",
		Long: `Loads the config with every transition target checked, then prints its
version digest and counts. States that cannot be reached from the initial
state are listed but do not fail validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fsmx.LoadConfig(args[0])
			if err != nil {
				return err
			}
			m, err := fsmx.New(cfg, fsmx.WithLogger(a.logger), fsmx.WithStrictValidation())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			cfg = m.Config()
			transitions := 0
			for _, s := range cfg.States {
				transitions += len(s.Transitions)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok\t%s\n", args[0])
			fmt.Fprintf(out, "version\t%s\n", primitives.ComputeVersion(&cfg))
			fmt.Fprintf(out, "states\t%d\n", len(cfg.States))
			fmt.Fprintf(out, "transitions\t%d\n", transitions)
			for _, name := range unreachable(cfg) {
				fmt.Fprintf(out, "unreachable\t%s\n", name)
				a.logger.Warn("unreachable state", "state", name)
			}
			return nil
		},
	}
}

// unreachable returns the declared states no event path from the initial
// state leads to, in declared order.
func unreachable(cfg fsmx.Config) []string {
	seen := map[string]bool{cfg.Initial: true}
	queue := []string{cfg.Initial}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		s, ok := cfg.States.Lookup(name)
		if !ok {
			continue
		}
		for _, event := range s.Events() {
			target := s.Transitions[event]
			if !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}

	var names []string
	for _, name := range cfg.States.Names() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}
