package apidocs

import (
	"net/http"
	"reflect"
)

// None marks the absence of a request or response type in the generic
// registration functions.
type None struct{}

// Registrar is the interface accepted by the registration functions. Both
// *Router and *Group implement it.
type Registrar interface {
	mount(pattern string, rd *RouteDescriptor, handler http.Handler)
	prefix() string
	defaultTags() []string
	defaultSecurity() string
	wrapHandler(h http.Handler) http.Handler
}

// HandleFunc registers a handler and builds its descriptor entirely from the
// supplied options, with no type derivation. The escape hatch for endpoints
// whose shapes the reflection pass cannot see.
func HandleFunc(reg Registrar, method, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	rd := NewRoute(method, reg.prefix()+pattern, opts...)
	finishRoute(reg, rd)
	reg.mount(reg.prefix()+pattern, rd, reg.wrapHandler(h))
}

// register builds a descriptor from the Req and Resp types plus options and
// mounts the handler.
func register[Req, Resp any](reg Registrar, method, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	full := reg.prefix() + pattern
	rd := NewRoute(method, full, opts...)

	reqType := reflect.TypeFor[Req]()
	if reqType != reflect.TypeFor[None]() {
		if len(rd.parameters) == 0 {
			rd.parameters = paramsFromType(reqType)
		}
		if rd.requestBody == nil {
			rd.requestBody = bodyFromType(reqType, rd.method)
		}
	}

	respType := reflect.TypeFor[Resp]()
	if respType != reflect.TypeFor[None]() && len(rd.responses) == 0 {
		schema := schemaOfType(respType)
		rd.responses[defaultStatus] = ResponseObj{
			Description: "Successful response",
			Content:     map[string]Media{"application/json": {Schema: &schema}},
		}
	}

	finishRoute(reg, rd)
	reg.mount(full, rd, reg.wrapHandler(h))
}

// finishRoute folds in the registrar's group-level defaults.
func finishRoute(reg Registrar, rd *RouteDescriptor) {
	rd.tags = append(append([]string(nil), reg.defaultTags()...), rd.tags...)
	if rd.security == "" && !rd.noSecurity {
		rd.security = reg.defaultSecurity()
	}
}

// Get registers a GET handler and collects its descriptor.
func Get[Req, Resp any](reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	register[Req, Resp](reg, http.MethodGet, pattern, h, opts...)
}

// Post registers a POST handler and collects its descriptor.
func Post[Req, Resp any](reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	register[Req, Resp](reg, http.MethodPost, pattern, h, opts...)
}

// Put registers a PUT handler and collects its descriptor.
func Put[Req, Resp any](reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	register[Req, Resp](reg, http.MethodPut, pattern, h, opts...)
}

// Patch registers a PATCH handler and collects its descriptor.
func Patch[Req, Resp any](reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	register[Req, Resp](reg, http.MethodPatch, pattern, h, opts...)
}

// Delete registers a DELETE handler and collects its descriptor.
func Delete[Req, Resp any](reg Registrar, pattern string, h http.HandlerFunc, opts ...RouteOption) {
	register[Req, Resp](reg, http.MethodDelete, pattern, h, opts...)
}
