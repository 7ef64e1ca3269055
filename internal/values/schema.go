package values

import (
	"github.com/invopop/jsonschema"

	"github.com/goldenchart/crd-schema-sync/internal/schema"
)

// JSONSchema reflects the values model into a JSON schema document.
// YAML language servers use it for autocomplete and validation of
// values.yaml. Extra keys stay allowed, matching Load's tolerance.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Values{})
	s.Version = schema.DraftID
	s.Title = "Golden Helm Chart Values"
	s.Description = "Schema for golden-chart Helm values.yaml"
	return s
}
