package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldenchart/crd-schema-sync/internal/values"
)

var outputFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-values-schema",
		Short: "Generate the JSON schema for values.yaml validation",
		Long: "Generates a JSON schema from the chart's values model. The schema can be\n" +
			"used by YAML language servers for autocomplete and validation.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "values.schema.json", "Output file for the generated schema")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Failed to generate values schema", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	s := values.JSONSchema()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode values schema: %w", err)
	}
	if err := os.WriteFile(outputFile, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", outputFile, err)
	}

	slog.With("file", outputFile).Info("Generated JSON schema")
	fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", outputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Schema contains %d top-level properties\n", s.Properties.Len())
	return nil
}
