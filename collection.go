package apidocs

// Collection is a named, ordered set of route descriptors awaiting merge.
// The Router accumulates one as a side effect of registration (the
// "automatic" collection); applications may build further collections by
// hand for routes registered outside the Router.
type Collection struct {
	name   string
	routes []*RouteDescriptor
}

// NewCollection creates an empty collection. The name only appears in
// duplicate-route diagnostics.
func NewCollection(name string) *Collection {
	return &Collection{name: name}
}

// Add appends descriptors in order and returns the collection for chaining.
func (c *Collection) Add(rds ...*RouteDescriptor) *Collection {
	c.routes = append(c.routes, rds...)
	return c
}

// Name returns the diagnostic name.
func (c *Collection) Name() string { return c.name }

// Len returns the number of descriptors.
func (c *Collection) Len() int { return len(c.routes) }

// Routes returns the descriptors in insertion order.
func (c *Collection) Routes() []*RouteDescriptor {
	out := make([]*RouteDescriptor, len(c.routes))
	copy(out, c.routes)
	return out
}
