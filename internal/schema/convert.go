package schema

import (
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// extensionPrefix marks OpenAPI vendor keywords that draft-07
// consumers do not understand. All of them are dropped except the one
// key kubeconform itself interprets.
const (
	extensionPrefix       = "x-"
	preserveUnknownFields = "x-kubernetes-preserve-unknown-fields"
)

// Keyword classes for the rewrite. Keeping these as tables makes the
// conversion rule set auditable independently of the recursion.
var (
	// list-of-schemas composition keywords
	compositionKeywords = map[string]bool{
		"oneOf": true,
		"anyOf": true,
		"allOf": true,
	}

	// single nested schema keywords; a non-object value (e.g. a bare
	// boolean additionalProperties) is copied through unchanged
	nestedSchemaKeywords = map[string]bool{
		"items":                true,
		"additionalProperties": true,
	}
)

// Rewrite converts one embedded OpenAPI v3 validation schema node into
// its draft-07 equivalent. It is a pure function of its input: vendor
// keywords are dropped (except x-kubernetes-preserve-unknown-fields),
// schema-carrying keywords are rewritten recursively and everything
// else is copied through. Non-object nodes are returned as-is.
// Applying Rewrite to its own output is a no-op.
func Rewrite(node any) any {
	obj, ok := node.(map[string]any)
	if !ok {
		return node
	}

	out := make(map[string]any, len(obj))
	for key, value := range obj {
		switch {
		case key == preserveUnknownFields:
			out[key] = value
		case strings.HasPrefix(key, extensionPrefix):
			// non-portable vendor annotation
		case compositionKeywords[key]:
			if list, ok := value.([]any); ok {
				rewritten := make([]any, len(list))
				for i, item := range list {
					rewritten[i] = Rewrite(item)
				}
				out[key] = rewritten
			} else {
				out[key] = value
			}
		case key == "properties":
			if props, ok := value.(map[string]any); ok {
				rewritten := make(map[string]any, len(props))
				for name, sub := range props {
					rewritten[name] = Rewrite(sub)
				}
				out[key] = rewritten
			} else {
				out[key] = value
			}
		case nestedSchemaKeywords[key]:
			if sub, ok := value.(map[string]any); ok {
				out[key] = Rewrite(sub)
			} else {
				out[key] = value
			}
		default:
			out[key] = value
		}
	}
	return out
}

// Convert rewrites one extracted schema and assembles the standalone
// artifact around it. Type, properties and required are taken from the
// rewritten root only when present; absent keys stay absent.
func Convert(cs CRDSchema) Artifact {
	a := Artifact{
		Schema:      DraftID,
		Description: fmt.Sprintf("%s (%s/%s)", cs.Kind, cs.Group, cs.Version),
		GroupVersionKind: []metav1.GroupVersionKind{{
			Group:   cs.Group,
			Kind:    cs.Kind,
			Version: cs.Version,
		}},
	}

	converted, ok := Rewrite(cs.Raw).(map[string]any)
	if !ok {
		return a
	}
	if t, ok := converted["type"]; ok {
		a.Type = t
	}
	if props, ok := converted["properties"].(map[string]any); ok {
		a.Properties = props
	}
	if req, ok := converted["required"]; ok {
		a.Required = req
	}
	return a
}
