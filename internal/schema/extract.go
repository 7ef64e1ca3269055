package schema

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	runtimeschema "k8s.io/apimachinery/pkg/runtime/schema"
	k8syaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"
)

const crdKind = "CustomResourceDefinition"

// crdEnvelope is the minimal document shape needed to accept a CRD and
// pull out its identity and raw schema bodies. Parsing into the full
// typed apiextensions structs would tie document acceptance to their
// schema model and skip CRDs whose embedded schemas use constructs
// JSONSchemaProps cannot represent (e.g. a list-valued "type").
type crdEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Kind       string `json:"kind"`
	Spec       struct {
		Group string `json:"group"`
		Names struct {
			Kind string `json:"kind"`
		} `json:"names"`
		Versions []struct {
			Name   string `json:"name"`
			Schema struct {
				OpenAPIV3Schema map[string]any `json:"openAPIV3Schema"`
			} `json:"schema"`
		} `json:"versions"`
	} `json:"spec"`
}

// Extract reads a multi-document YAML stream and returns one CRDSchema
// per declared version of every CustomResourceDefinition in it, in
// document order then version order. Documents that are not CRDs, or
// that lack a group, kind, version name or schema body, are skipped.
// Duplicate (group, kind, version) tuples are not collapsed.
func Extract(r io.Reader) ([]CRDSchema, error) {
	reader := k8syaml.NewYAMLReader(bufio.NewReader(r))

	var out []CRDSchema
	for {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CRD document stream: %w", err)
		}
		out = append(out, extractDocument(doc)...)
	}
	return out, nil
}

func extractDocument(doc []byte) []CRDSchema {
	var crd crdEnvelope
	if err := yaml.Unmarshal(doc, &crd); err != nil {
		return nil
	}
	if crd.Kind != crdKind || !isAPIExtensions(crd.APIVersion) {
		return nil
	}

	group := crd.Spec.Group
	kind := crd.Spec.Names.Kind
	if group == "" || kind == "" {
		return nil
	}

	var out []CRDSchema
	for _, v := range crd.Spec.Versions {
		if v.Name == "" || len(v.Schema.OpenAPIV3Schema) == 0 {
			continue
		}
		out = append(out, CRDSchema{
			Group:   group,
			Kind:    kind,
			Version: v.Name,
			Raw:     v.Schema.OpenAPIV3Schema,
		})
	}
	return out
}

// isAPIExtensions reports whether apiVersion declares the
// apiextensions.k8s.io group. An absent apiVersion is tolerated; a
// foreign group means the document only borrows the kind name and is
// not a CRD.
func isAPIExtensions(apiVersion string) bool {
	if apiVersion == "" {
		return true
	}
	gv, err := runtimeschema.ParseGroupVersion(apiVersion)
	if err != nil {
		return false
	}
	return gv.Group == apiextensionsv1.GroupName
}
