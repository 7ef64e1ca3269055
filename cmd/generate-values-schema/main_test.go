package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenchart/crd-schema-sync/internal/schema"
)

func TestGenerateValuesSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "values.schema.json")

	outputFile = ""

	rootCmd := newRootCmd()
	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs([]string{"--output", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schema.DraftID, doc["$schema"])
	assert.Equal(t, "Golden Helm Chart Values", doc["title"])
	assert.Equal(t, "Schema for golden-chart Helm values.yaml", doc["description"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"nameOverride", "deployments", "services", "configMaps",
		"secrets", "cronjobs", "istio", "serviceAccount",
	} {
		assert.Contains(t, props, key)
	}

	assert.Contains(t, b.String(), "Generated JSON schema: "+out)
	assert.Contains(t, b.String(), "top-level properties")
}

func TestGenerateValuesSchema_WriteError(t *testing.T) {
	outputFile = ""

	rootCmd := newRootCmd()
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--output", filepath.Join(t.TempDir(), "missing", "values.schema.json")})

	err := rootCmd.Execute()
	require.ErrorContains(t, err, "failed to write schema file")
}
