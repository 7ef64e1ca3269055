package schema

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DraftID is the JSON Schema dialect identifier written into every
// converted artifact.
const DraftID = "http://json-schema.org/draft-07/schema#"

// CRDSchema is one embedded validation schema together with the
// group/kind/version identity it was found under. Raw is the untyped
// openAPIV3Schema tree exactly as it appears in the CRD; it may contain
// vendor keywords that the typed apiextensions structs would drop.
type CRDSchema struct {
	Group   string
	Kind    string
	Version string
	Raw     map[string]any
}

// Artifact is one standalone draft-07 JSON schema document, ready to be
// consumed by kubeconform. Type, Properties and Required are only set
// when the rewritten root schema carries them.
type Artifact struct {
	Schema           string                    `json:"$schema"`
	Description      string                    `json:"description"`
	Type             any                       `json:"type,omitempty"`
	Properties       map[string]any            `json:"properties,omitempty"`
	Required         any                       `json:"required,omitempty"`
	GroupVersionKind []metav1.GroupVersionKind `json:"x-kubernetes-group-version-kind"`
}
