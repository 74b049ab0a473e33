package apidocs

import "net/http"

// Group is a set of routes under a shared prefix with shared tags,
// middleware, and a default security requirement.
type Group struct {
	router   *Router
	pfx      string
	tags     []string
	security string
	mw       []Middleware
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithGroupTags adds default tags to every route registered on the group.
func WithGroupTags(tags ...string) GroupOption {
	return func(g *Group) {
		g.tags = append(g.tags, tags...)
	}
}

// WithGroupMiddleware adds middleware applied to the group's handlers.
func WithGroupMiddleware(mw ...Middleware) GroupOption {
	return func(g *Group) {
		g.mw = append(g.mw, mw...)
	}
}

// WithGroupSecurity sets a default security requirement for the group's
// routes. Routes carrying their own WithSecurity or WithNoSecurity keep it.
func WithGroupSecurity(scheme string) GroupOption {
	return func(g *Group) {
		g.security = scheme
	}
}

// Group creates a route group with the given prefix.
func (r *Router) Group(prefix string, opts ...GroupOption) *Group {
	g := &Group{router: r, pfx: prefix}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Group) mount(pattern string, rd *RouteDescriptor, handler http.Handler) {
	g.router.mount(pattern, rd, handler)
}

func (g *Group) prefix() string          { return g.pfx }
func (g *Group) defaultTags() []string   { return g.tags }
func (g *Group) defaultSecurity() string { return g.security }

func (g *Group) wrapHandler(h http.Handler) http.Handler {
	for i := len(g.mw) - 1; i >= 0; i-- {
		h = g.mw[i](h)
	}
	return h
}
