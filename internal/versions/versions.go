// Package versions reads supported-k8s-versions.json, the small
// externally-owned file that pins which component versions the chart
// is tested against.
package versions

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFile is the conventional location of the versions file,
// relative to the repository root.
const DefaultFile = "supported-k8s-versions.json"

// Component is one entry of the versions file: the pinned version and
// the full list of supported versions.
type Component struct {
	Version  string   `json:"version"`
	Versions []string `json:"versions"`
}

// File maps a component name ("kubernetes", "istio") to its entry.
type File map[string]Component

// Read loads and parses the versions file at path.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read versions file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse versions file %s: %w", path, err)
	}
	return f, nil
}

// Component returns the entry for name, or an error for components the
// file doesn't know about.
func (f File) Component(name string) (Component, error) {
	c, ok := f[name]
	if !ok {
		return Component{}, fmt.Errorf("unknown component %q in versions file", name)
	}
	return c, nil
}
