package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoSchemas reports that a well-formed input yielded no schemas at
// all. No filtering exists in the pipeline, so an empty result means
// the upstream bundle format drifted or the fetch returned nothing.
var ErrNoSchemas = errors.New("no schemas extracted from CRDs")

// Summary is the success report of one run: the total artifact count
// and, per group, the kind_version identifiers written.
type Summary struct {
	Total  int
	Groups map[string][]string
}

// Lines renders the per-group report, groups and identifiers sorted.
func (s *Summary) Lines() []string {
	lines := make([]string, 0, len(s.Groups))
	for _, group := range slices.Sorted(maps.Keys(s.Groups)) {
		ids := slices.Clone(s.Groups[group])
		slices.Sort(ids)
		lines = append(lines, fmt.Sprintf("%s/: %s", group, strings.Join(ids, ", ")))
	}
	return lines
}

// FileName returns the artifact file name for one schema,
// e.g. "virtualservice_v1beta1.json".
func (cs CRDSchema) FileName() string {
	return fmt.Sprintf("%s_%s.json", strings.ToLower(cs.Kind), cs.Version)
}

// Write converts every extracted schema and persists it under
// <outputRoot>/<group>/<kind>_<version>.json. Existing files are
// overwritten, so a duplicate (group, kind, version) silently wins
// last. An empty input is ErrNoSchemas; any filesystem error aborts
// the run with whatever was already written left in place.
func Write(schemas []CRDSchema, outputRoot string) (*Summary, error) {
	if len(schemas) == 0 {
		return nil, ErrNoSchemas
	}

	sum := &Summary{Groups: map[string][]string{}}
	for _, cs := range schemas {
		dir := filepath.Join(outputRoot, cs.Group)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create group directory %s: %w", dir, err)
		}

		data, err := json.MarshalIndent(Convert(cs), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema for %s/%s %s: %w", cs.Group, cs.Kind, cs.Version, err)
		}

		file := filepath.Join(dir, cs.FileName())
		if err := os.WriteFile(file, append(data, '\n'), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write schema file %s: %w", file, err)
		}
		slog.With("group", cs.Group, "kind", cs.Kind, "version", cs.Version, "file", file).
			Debug("Wrote schema")

		sum.Total++
		id := strings.TrimSuffix(cs.FileName(), ".json")
		sum.Groups[cs.Group] = append(sum.Groups[cs.Group], id)
	}
	return sum, nil
}
