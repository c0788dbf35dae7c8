package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/loader"
)

func newConvertCmd(a *app) *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a config as YAML or JSON",
		Long: `Validates the config and writes it back out with states in declared order.
Without --to the format follows the -o extension, or flips the input format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loader.FormatFromPath(args[0])
			if err != nil {
				return err
			}
			cfg, err := fsmx.LoadConfig(args[0])
			if err != nil {
				return err
			}
			if _, err := fsmx.New(cfg, a.options()...); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			format, err := outputFormat(in, to, output)
			if err != nil {
				return err
			}
			if output == "" {
				data, err := loader.Encode(cfg, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			// outputFormat has checked format against the extension Save uses.
			if err := loader.Save(output, cfg); err != nil {
				return err
			}
			a.logger.Info("config written", "path", output, "format", string(format))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

// outputFormat picks the target format. An explicit --to must agree with the
// -o extension when both are given.
func outputFormat(in loader.Format, to, output string) (loader.Format, error) {
	var fromPath loader.Format
	if output != "" {
		f, err := loader.FormatFromPath(output)
		if err != nil {
			return "", err
		}
		fromPath = f
	}

	if to != "" {
		f, err := loader.ParseFormat(to)
		if err != nil {
			return "", err
		}
		if fromPath != "" && f != fromPath {
			return "", fmt.Errorf("--to %s conflicts with output file %s", to, output)
		}
		return f, nil
	}
	if fromPath != "" {
		return fromPath, nil
	}
	if in == loader.FormatJSON {
		return loader.FormatYAML, nil
	}
	return loader.FormatJSON, nil
}
