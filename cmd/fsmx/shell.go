package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
)

const shellHelp = `commands:
  :state            print the current state
  :states [event]   list states, optionally only those handling event
  :events           list events legal from the current state
  :history          print the undo and redo stacks
  :help             show this text
  :quit, :exit      leave the shell
steps:
  :undo :redo :reset :clear :goto=STATE
any line without a leading colon is triggered as an event`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell <file>",
		Short: "Drive a machine interactively",
		Long:  `Reads steps and queries from stdin, one per line, until EOF or :quit.
Commands and directives start with a colon; every other line is an event.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			return runShell(m, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runShell is the read-eval loop. Lines without a leading colon are always
// events, so an event may share a name with a command. The prompt and step
// errors go to errOut so out carries only results.
func runShell(m *fsmx.Machine, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, m.State())

	for {
		fmt.Fprint(errOut, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case ":quit", ":exit":
			return nil
		case ":help":
			fmt.Fprintln(out, shellHelp)
		case ":state":
			fmt.Fprintln(out, m.State())
		case ":states":
			event := ""
			if len(fields) > 1 {
				event = fields[1]
			}
			fmt.Fprintln(out, strings.Join(m.States(event), " "))
		case ":events":
			fmt.Fprintln(out, strings.Join(m.Events(), " "))
		case ":history":
			undo, redo := m.History()
			fmt.Fprintf(out, "undo\t%s\n", strings.Join(undo, " "))
			fmt.Fprintf(out, "redo\t%s\n", strings.Join(redo, " "))
		default:
			if err := applyStep(m, line); err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, m.State())
		}
	}
	return scanner.Err()
}
