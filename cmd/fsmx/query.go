package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatesCmd(a *app) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "states <file>",
		Short: "List declared states",
		Long:  `Prints every declared state in declaration order, or with --event only the states that handle that event.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			for _, name := range m.States(event) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&event, "event", "", "Only list states that handle this event")
	return cmd
}

func newEventsCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "events <file>",
		Short: "List events legal from a state",
		Long:  `Prints the events handled by the initial state, or by the state named with --from, in sorted order.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			if from != "" {
				if err := m.ChangeState(from); err != nil {
					return err
				}
			}
			for _, event := range m.Events() {
				fmt.Fprintln(cmd.OutOrStdout(), event)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "State to list events for (default: initial state)")
	return cmd
}
