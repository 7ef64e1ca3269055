package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldenchart/crd-schema-sync/internal/versions"
)

var versionsFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "read-versions [component]",
		Short:         "Print the supported versions for a component",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVar(&versionsFile, "versions-file", versions.DefaultFile, "Path to the supported versions file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Failed to read versions", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	component := "kubernetes"
	if len(args) > 0 {
		component = args[0]
	}

	f, err := versions.Read(versionsFile)
	if err != nil {
		return err
	}
	c, err := f.Component(component)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(c.Versions, " "))
	return nil
}
