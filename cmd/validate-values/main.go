package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goldenchart/crd-schema-sync/internal/values"
)

var (
	pass = color.New(color.FgGreen)
	fail = color.New(color.FgRed)
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "validate-values <values-file>",
		Short:         "Validate a Helm values file against the chart's configuration model",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	v, err := values.Load(path)
	if err == nil {
		err = v.Validate()
	}
	if err != nil {
		_, _ = fail.Fprintf(out, "Validation failed for %s\n", path)
		fmt.Fprintf(out, "  %v\n", err)
		return err
	}

	_, _ = pass.Fprintf(out, "Validation successful for %s\n", path)
	if summary := v.Summary(); len(summary) > 0 {
		fmt.Fprintln(out, "\nSummary:")
		for _, line := range summary {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	return nil
}
