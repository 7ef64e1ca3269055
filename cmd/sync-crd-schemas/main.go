package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goldenchart/crd-schema-sync/internal/fetch"
	"github.com/goldenchart/crd-schema-sync/internal/schema"
	"github.com/goldenchart/crd-schema-sync/internal/versions"
)

var (
	outputDir    string
	bundleFile   string
	useGit       = false
	versionsFile string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-crd-schemas [version]",
		Short: "Sync Istio CRD JSON schemas for kubeconform validation",
		Long: "Downloads the Istio CRD bundle for the given version (or the one pinned in\n" +
			"supported-k8s-versions.json) and converts the embedded OpenAPI v3 validation\n" +
			"schemas to standalone JSON schema files compatible with kubeconform.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "schemas", "Output directory for schemas")
	cmd.Flags().StringVarP(&bundleFile, "file", "f", "", "Read the CRD bundle from a local file instead of fetching it")
	cmd.Flags().BoolVarP(&useGit, "use-git", "g", false, "Clone the Istio release branch instead of fetching over HTTP")
	cmd.Flags().StringVar(&versionsFile, "versions-file", versions.DefaultFile, "Path to the supported versions file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Sync failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bundle, err := loadBundle(cmd, args)
	if err != nil {
		return err
	}

	extracted, err := schema.Extract(strings.NewReader(bundle))
	if err != nil {
		return err
	}

	sum, err := schema.Write(extracted, outputDir)
	if err != nil {
		return err
	}

	slog.With("count", sum.Total, "dir", outputDir).InfoContext(ctx, "Wrote schemas")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d schemas to %s/\n", sum.Total, outputDir)
	for _, line := range sum.Lines() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
	}
	return nil
}

func loadBundle(cmd *cobra.Command, args []string) (string, error) {
	if bundleFile != "" {
		data, err := os.ReadFile(bundleFile)
		if err != nil {
			return "", fmt.Errorf("failed to read CRD bundle file: %w", err)
		}
		return string(data), nil
	}

	version := ""
	if len(args) > 0 {
		version = args[0]
	}
	if version == "" {
		vf, err := versions.Read(versionsFile)
		if err != nil {
			return "", err
		}
		istio, err := vf.Component("istio")
		if err != nil {
			return "", err
		}
		version = istio.Version
	}

	slog.With("version", version).InfoContext(cmd.Context(), "Syncing Istio CRD schemas")
	if useGit {
		return fetch.BundleGit(cmd.Context(), version)
	}
	return fetch.BundleHTTP(cmd.Context(), version)
}
