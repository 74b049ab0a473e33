package apidocs

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Registry holds a finalized Document together with its serialized forms.
// Both serializations are computed once, here, so request handlers never
// re-encode; after construction every method is a pure read and safe for
// concurrent use without locking.
type Registry struct {
	doc      *Document
	jsonText []byte
	yamlText []byte
}

// NewRegistry wraps a finalized document, eagerly computing its JSON and
// YAML serializations. Passing a document that has not been through
// Finalize returns ErrNotFinalized.
func NewRegistry(doc *Document) (*Registry, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if !doc.finalized {
		return nil, ErrNotFinalized
	}

	spec := doc.Spec()

	jsonText, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, err
	}

	yamlText, err := yaml.Marshal(spec)
	if err != nil {
		return nil, err
	}

	return &Registry{doc: doc, jsonText: jsonText, yamlText: yamlText}, nil
}

// Document returns the finalized document.
func (r *Registry) Document() *Document { return r.doc }

// JSON returns the cached JSON serialization. Callers must not modify the
// returned slice.
func (r *Registry) JSON() []byte { return r.jsonText }

// YAML returns the cached YAML serialization. Callers must not modify the
// returned slice.
func (r *Registry) YAML() []byte { return r.yamlText }
