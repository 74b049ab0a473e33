package apidocs

import (
	"strconv"
	"strings"
)

// RouteKey identifies a logical route: HTTP method plus normalized path.
// Within one finalized Document each key occurs at most once.
type RouteKey struct {
	Method string
	Path   string
}

// String renders the key as "GET /album" for diagnostics.
func (k RouteKey) String() string {
	return k.Method + " " + k.Path
}

// RouteDescriptor is the unit of information describing one HTTP endpoint:
// method, path, documentation, parameter and response shapes, and an
// optional security requirement. Descriptors are built once, handed to a
// Collection or Document, and never mutated afterwards.
type RouteDescriptor struct {
	method      string
	path        string
	summary     string
	description string
	tags        []string
	operationID string
	deprecated  bool
	parameters  []Parameter
	requestBody *RequestBody
	responses   map[int]ResponseObj
	security    string
	noSecurity  bool
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string     `json:"name" yaml:"name"`
	In          string     `json:"in" yaml:"in"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool       `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      JSONSchema `json:"schema" yaml:"schema"`
}

// PathParam builds a required path parameter.
func PathParam(name, doc string) Parameter {
	return Parameter{Name: name, In: "path", Description: doc, Required: true, Schema: JSONSchema{Type: "string"}}
}

// QueryParam builds an optional query parameter.
func QueryParam(name, doc string) Parameter {
	return Parameter{Name: name, In: "query", Description: doc, Schema: JSONSchema{Type: "string"}}
}

// RequestBody describes an operation's request body.
type RequestBody struct {
	Required bool             `json:"required" yaml:"required"`
	Content  map[string]Media `json:"content" yaml:"content"`
}

// Media is a media type object with an optional schema.
type Media struct {
	Schema *JSONSchema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// ResponseObj describes a single response.
type ResponseObj struct {
	Description string           `json:"description" yaml:"description"`
	Content     map[string]Media `json:"content,omitempty" yaml:"content,omitempty"`
}

// RouteOption configures a RouteDescriptor at construction time.
type RouteOption func(*RouteDescriptor)

// WithSummary sets the operation summary.
func WithSummary(s string) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.summary = s
	}
}

// WithDescription sets the operation description.
func WithDescription(d string) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.description = d
	}
}

// WithTags adds grouping tags to the operation.
func WithTags(tags ...string) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.tags = append(rd.tags, tags...)
	}
}

// WithOperationID sets a custom operationId.
func WithOperationID(id string) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.operationID = id
	}
}

// WithDeprecated marks the operation as deprecated.
func WithDeprecated() RouteOption {
	return func(rd *RouteDescriptor) {
		rd.deprecated = true
	}
}

// WithParameter adds an operation parameter.
func WithParameter(p Parameter) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.parameters = append(rd.parameters, p)
	}
}

// WithRequestBody declares a JSON request body whose schema is derived from
// the given value's type.
func WithRequestBody(body any) RouteOption {
	return func(rd *RouteDescriptor) {
		schema := SchemaOf(body)
		rd.requestBody = jsonBody(schema)
	}
}

// WithResponse declares a response for the given status code. A non-nil body
// value contributes an application/json schema derived from its type.
func WithResponse(status int, description string, body any) RouteOption {
	return func(rd *RouteDescriptor) {
		resp := ResponseObj{Description: description}
		if body != nil {
			schema := SchemaOf(body)
			resp.Content = map[string]Media{"application/json": {Schema: &schema}}
		}
		rd.responses[status] = resp
	}
}

// WithSecurity sets the route's security requirement to the named scheme.
// The name should match a SecurityScheme registered on the Document; an
// unknown name is reported as a dangling-reference warning at finalize time.
func WithSecurity(scheme string) RouteOption {
	return func(rd *RouteDescriptor) {
		rd.security = scheme
		rd.noSecurity = false
	}
}

// WithNoSecurity marks the route as explicitly unauthenticated, rendering an
// empty security array rather than omitting the field.
func WithNoSecurity() RouteOption {
	return func(rd *RouteDescriptor) {
		rd.security = ""
		rd.noSecurity = true
	}
}

// NewRoute builds a descriptor for the given method and path. The method is
// uppercased and the path normalized (":id" and "{id...}" segments both
// become "{id}"), so descriptors from different routing styles share one
// identity.
func NewRoute(method, path string, opts ...RouteOption) *RouteDescriptor {
	rd := &RouteDescriptor{
		method:    strings.ToUpper(method),
		path:      normalizePath(path),
		responses: make(map[int]ResponseObj),
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Key returns the descriptor's route identity.
func (rd *RouteDescriptor) Key() RouteKey {
	return RouteKey{Method: rd.method, Path: rd.path}
}

// Method returns the HTTP method.
func (rd *RouteDescriptor) Method() string { return rd.method }

// Path returns the normalized path.
func (rd *RouteDescriptor) Path() string { return rd.path }

// Summary returns the operation summary.
func (rd *RouteDescriptor) Summary() string { return rd.summary }

// Tags returns the operation tags.
func (rd *RouteDescriptor) Tags() []string { return rd.tags }

// Security returns the referenced security scheme name, or "" when the
// route carries no requirement.
func (rd *RouteDescriptor) Security() string { return rd.security }

// operation renders the descriptor as an OpenAPI operation object.
func (rd *RouteDescriptor) operation() Operation {
	op := Operation{
		Summary:     rd.summary,
		Description: rd.description,
		Tags:        rd.tags,
		OperationID: rd.operationID,
		Deprecated:  rd.deprecated,
		Parameters:  rd.parameters,
		RequestBody: rd.requestBody,
		Responses:   make(map[string]ResponseObj, len(rd.responses)),
	}

	for code, resp := range rd.responses {
		op.Responses[strconv.Itoa(code)] = resp
	}
	if len(op.Responses) == 0 {
		op.Responses[strconv.Itoa(defaultStatus)] = ResponseObj{Description: "Successful response"}
	}

	switch {
	case rd.noSecurity:
		sec := []SecurityRequirement{}
		op.Security = &sec
	case rd.security != "":
		sec := []SecurityRequirement{{rd.security: {}}}
		op.Security = &sec
	}

	return op
}

const defaultStatus = 200

// normalizePath converts colon-style parameters (":id") and wildcard
// segments ("{id...}") to plain OpenAPI template segments ("{id}").
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			segments[i] = "{" + seg[1:] + "}"
			continue
		}
		segments[i] = strings.ReplaceAll(seg, "...", "")
	}
	p := strings.Join(segments, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
