package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetBundle = `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.networking.example.io
spec:
  group: networking.example.io
  names:
    kind: Widget
    plural: widgets
  scope: Namespaced
  versions:
    - name: v1
      served: true
      storage: true
      schema:
        openAPIV3Schema:
          type: object
          properties:
            name:
              type: string
    - name: v1beta1
      served: true
      storage: false
      schema:
        openAPIV3Schema:
          type: object
          properties:
            name:
              type: string
`

func TestExtract(t *testing.T) {
	schemas, err := Extract(strings.NewReader(widgetBundle))
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	for i, version := range []string{"v1", "v1beta1"} {
		assert.Equal(t, "networking.example.io", schemas[i].Group)
		assert.Equal(t, "Widget", schemas[i].Kind)
		assert.Equal(t, version, schemas[i].Version)
		assert.Equal(t, map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
		}, schemas[i].Raw)
	}
}

func TestExtract_SkipRules(t *testing.T) {
	testCases := []struct {
		name   string
		stream string
		count  int
	}{
		{
			name:   "empty_stream",
			stream: "",
			count:  0,
		},
		{
			name:   "empty_documents_only",
			stream: "---\n---\n",
			count:  0,
		},
		{
			name: "non_crd_document_skipped",
			stream: `apiVersion: v1
kind: ConfigMap
metadata:
  name: not-a-crd
data:
  key: value
`,
			count: 0,
		},
		{
			name: "missing_group_skipped",
			stream: `kind: CustomResourceDefinition
spec:
  names:
    kind: Widget
  versions:
    - name: v1
      schema:
        openAPIV3Schema:
          type: object
`,
			count: 0,
		},
		{
			name: "missing_kind_skipped",
			stream: `kind: CustomResourceDefinition
spec:
  group: networking.example.io
  names:
    plural: widgets
  versions:
    - name: v1
      schema:
        openAPIV3Schema:
          type: object
`,
			count: 0,
		},
		{
			name: "version_without_schema_skipped",
			stream: `kind: CustomResourceDefinition
spec:
  group: networking.example.io
  names:
    kind: Widget
  versions:
    - name: v1
    - name: v2
      schema:
        openAPIV3Schema:
          type: object
`,
			count: 1,
		},
		{
			name: "malformed_document_skipped_others_kept",
			stream: `spec: [this is not a crd shaped document
---
kind: CustomResourceDefinition
spec:
  group: networking.example.io
  names:
    kind: Widget
  versions:
    - name: v1
      schema:
        openAPIV3Schema:
          type: object
`,
			count: 1,
		},
		{
			name:   "valid_bundle_plus_junk",
			stream: "# a comment only document\n---\n" + widgetBundle,
			count:  2,
		},
		{
			name: "crd_kind_in_foreign_group_skipped",
			stream: `apiVersion: acme.example.io/v1
kind: CustomResourceDefinition
spec:
  group: networking.example.io
  names:
    kind: Widget
  versions:
    - name: v1
      schema:
        openAPIV3Schema:
          type: object
`,
			count: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schemas, err := Extract(strings.NewReader(tc.stream))
			require.NoError(t, err)
			assert.Len(t, schemas, tc.count)
		})
	}
}

func TestExtract_SchemaBeyondTypedModel(t *testing.T) {
	// a list-valued "type" has no JSONSchemaProps representation; the
	// document must still be extracted with the body intact
	stream := `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
spec:
  group: networking.example.io
  names:
    kind: Widget
  versions:
    - name: v1
      schema:
        openAPIV3Schema:
          type:
            - string
            - "null"
          x-vendor-hint: ignored
`

	schemas, err := Extract(strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, map[string]any{
		"type":          []any{"string", "null"},
		"x-vendor-hint": "ignored",
	}, schemas[0].Raw)
}

func TestExtract_DuplicatesNotCollapsed(t *testing.T) {
	schemas, err := Extract(strings.NewReader(widgetBundle + "---\n" + widgetBundle))
	require.NoError(t, err)
	assert.Len(t, schemas, 4)
}
