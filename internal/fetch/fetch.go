// Package fetch retrieves the Istio CRD bundle for a release, either
// over HTTP from the raw release branch or from a shallow git clone.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	istioRepoURL    = "https://github.com/istio/istio"
	bundlePath      = "manifests/charts/base/files/crd-all.gen.yaml"
	bundleURLFormat = "https://raw.githubusercontent.com/istio/istio/%s/" + bundlePath
	userAgent       = "golden-chart/1.0"
)

// ReleaseBranch maps an Istio version like "1.24.0" to its release
// branch name "release-1.24".
func ReleaseBranch(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid istio version %q: expected at least major.minor", version)
	}
	return fmt.Sprintf("release-%s.%s", parts[0], parts[1]), nil
}

// BundleHTTP downloads the CRD bundle for the given Istio version from
// the raw release branch. There are no retries; transient failures are
// the caller's problem.
func BundleHTTP(ctx context.Context, version string) (string, error) {
	branch, err := ReleaseBranch(version)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf(bundleURLFormat, branch)
	slog.With("url", url).InfoContext(ctx, "Downloading Istio CRD bundle")
	return fetchURL(ctx, url)
}

func fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return string(data), nil
}

// BundleGit clones the Istio release branch into a temp dir and reads
// the bundle file from the worktree. Useful when raw.githubusercontent
// is blocked but git isn't.
func BundleGit(ctx context.Context, version string) (string, error) {
	branch, err := ReleaseBranch(version)
	if err != nil {
		return "", err
	}

	tmp, err := os.MkdirTemp("", "crd-schema-sync")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	slog.With("repo", istioRepoURL, "branch", branch, "tmp", tmp).
		InfoContext(ctx, "Cloning Istio release branch")

	var out bytes.Buffer
	_, err = git.PlainCloneContext(ctx, tmp, false, &git.CloneOptions{
		URL:           istioRepoURL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      &out,
	})
	slog.DebugContext(ctx, "Git clone output", "output", out.String())
	if err != nil {
		return "", fmt.Errorf("failed to clone %s at %s: %w", istioRepoURL, branch, err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, filepath.FromSlash(bundlePath)))
	if err != nil {
		return "", fmt.Errorf("failed to read CRD bundle from clone: %w", err)
	}
	return string(data), nil
}
