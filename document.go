package apidocs

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// SecurityScheme is a named authentication mechanism declared in document
// metadata. Route descriptors reference schemes by name.
type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	In           string `json:"in,omitempty" yaml:"in,omitempty"`
}

// Document is the aggregate API specification: metadata plus an
// insertion-ordered mapping from RouteKey to RouteDescriptor. It is mutable
// while being built and becomes immutable once finalized; mutating a
// finalized document is a programming error and panics.
type Document struct {
	title           string
	description     string
	version         string
	securitySchemes map[string]SecurityScheme

	routes    []*RouteDescriptor
	index     map[RouteKey]int
	finalized bool
}

// DocumentOption configures a Document at construction time.
type DocumentOption func(*Document)

// WithTitle sets the API title.
func WithTitle(title string) DocumentOption {
	return func(d *Document) {
		d.title = title
	}
}

// WithDocDescription sets the API description.
func WithDocDescription(desc string) DocumentOption {
	return func(d *Document) {
		d.description = desc
	}
}

// WithVersion sets the API version.
func WithVersion(version string) DocumentOption {
	return func(d *Document) {
		d.version = version
	}
}

// WithSecurityScheme registers a named security scheme in document metadata.
func WithSecurityScheme(name string, scheme SecurityScheme) DocumentOption {
	return func(d *Document) {
		d.securitySchemes[name] = scheme
	}
}

// NewDocument creates an empty, mutable Document.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		securitySchemes: make(map[string]SecurityScheme),
		index:           make(map[RouteKey]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddRoute inserts a descriptor into the document. Inserting a RouteKey that
// is already present returns a *DuplicateRouteError and leaves the document
// unchanged. Calling AddRoute on a finalized document panics.
func (d *Document) AddRoute(rd *RouteDescriptor) error {
	if d.finalized {
		panic("apidocs: AddRoute called on a finalized document")
	}
	if rd == nil {
		return ErrNilRoute
	}

	key := rd.Key()
	if _, exists := d.index[key]; exists {
		return &DuplicateRouteError{Key: key}
	}

	d.index[key] = len(d.routes)
	d.routes = append(d.routes, rd)
	return nil
}

// Title returns the API title.
func (d *Document) Title() string { return d.title }

// Description returns the API description.
func (d *Document) Description() string { return d.description }

// Version returns the API version.
func (d *Document) Version() string { return d.version }

// Len returns the number of registered routes.
func (d *Document) Len() int { return len(d.routes) }

// Finalized reports whether the document has been sealed by Finalize.
func (d *Document) Finalized() bool { return d.finalized }

// Routes returns the descriptors in insertion order.
func (d *Document) Routes() []*RouteDescriptor {
	out := make([]*RouteDescriptor, len(d.routes))
	copy(out, d.routes)
	return out
}

// Route looks up the descriptor registered under the given key.
func (d *Document) Route(key RouteKey) (*RouteDescriptor, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.routes[i], true
}

// SecuritySchemes returns a copy of the named scheme definitions.
func (d *Document) SecuritySchemes() map[string]SecurityScheme {
	out := make(map[string]SecurityScheme, len(d.securitySchemes))
	for name, s := range d.securitySchemes {
		out[name] = s
	}
	return out
}

// clone returns a mutable copy sharing the (immutable) descriptors.
func (d *Document) clone() *Document {
	cp := &Document{
		title:           d.title,
		description:     d.description,
		version:         d.version,
		securitySchemes: d.SecuritySchemes(),
		routes:          make([]*RouteDescriptor, len(d.routes)),
		index:           make(map[RouteKey]int, len(d.index)),
	}
	copy(cp.routes, d.routes)
	for k, i := range d.index {
		cp.index[k] = i
	}
	return cp
}

// seal marks the document immutable.
func (d *Document) seal() {
	d.finalized = true
}

// Spec renders the document as an OpenAPI 3.1 specification. Path entries
// appear in first-registration order, so repeated serializations are
// deterministic.
func (d *Document) Spec() OpenAPISpec {
	spec := OpenAPISpec{
		OpenAPI: "3.1.0",
		Info: OpenAPIInfo{
			Title:       d.title,
			Description: d.description,
			Version:     d.version,
		},
	}

	for _, rd := range d.routes {
		spec.Paths.add(rd.path, strings.ToLower(rd.method), rd.operation())
	}

	if len(d.securitySchemes) > 0 {
		spec.Components = &Components{SecuritySchemes: d.SecuritySchemes()}
	}

	return spec
}

// OpenAPISpec is the top-level OpenAPI 3.1 document shape.
type OpenAPISpec struct {
	OpenAPI    string      `json:"openapi" yaml:"openapi"`
	Info       OpenAPIInfo `json:"info" yaml:"info"`
	Paths      Paths       `json:"paths" yaml:"paths"`
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`
}

// OpenAPIInfo holds API metadata.
type OpenAPIInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Components holds reusable objects; only security schemes are produced here.
type Components struct {
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

// PathItem maps lowercase HTTP methods to operations.
type PathItem map[string]Operation

// SecurityRequirement names a scheme and its required scopes.
type SecurityRequirement map[string][]string

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string                 `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string               `json:"tags,omitempty" yaml:"tags,omitempty"`
	OperationID string                 `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Deprecated  bool                   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Parameters  []Parameter            `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody           `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]ResponseObj `json:"responses" yaml:"responses"`

	// Security is a pointer so an explicit empty requirement (public route)
	// serializes as [] while an unset requirement omits the field.
	Security *[]SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Paths is the OpenAPI paths object. Unlike a plain map it remembers
// first-insertion order and serializes deterministically in both JSON and
// YAML.
type Paths struct {
	keys  []string
	items map[string]PathItem
}

func (p *Paths) add(path, method string, op Operation) {
	if p.items == nil {
		p.items = make(map[string]PathItem)
	}
	if _, ok := p.items[path]; !ok {
		p.keys = append(p.keys, path)
		p.items[path] = make(PathItem)
	}
	p.items[path][method] = op
}

// Len returns the number of path entries.
func (p Paths) Len() int { return len(p.keys) }

// Keys returns the paths in first-insertion order.
func (p Paths) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the path item registered for the given path.
func (p Paths) Get(path string) (PathItem, bool) {
	item, ok := p.items[path]
	return item, ok
}

// MarshalJSON writes the paths object preserving insertion order.
func (p Paths) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the paths object as a mapping node preserving
// insertion order.
func (p Paths) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range p.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)
		valNode := &yaml.Node{}
		if err := valNode.Encode(p.items[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
