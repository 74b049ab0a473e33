package apidocs

import (
	"errors"
	"fmt"
)

// Warning flags a route whose security requirement references a scheme
// missing from document metadata. Non-fatal: the route still renders, only
// its security badge is incomplete.
type Warning struct {
	Key    RouteKey
	Scheme string
}

// String describes the dangling reference.
func (w Warning) String() string {
	return fmt.Sprintf("route %s references undefined security scheme %q", w.Key, w.Scheme)
}

// Finalize merges the supplied collections into a copy of base and seals the
// result. Collections are processed in order, each descriptor inserted under
// its RouteKey; any key already claimed, by base or by an earlier
// descriptor, fails the whole operation with a *DuplicateRouteError and no
// partial document is produced. An empty collection list is valid and yields
// a document structurally equal to base.
//
// Routes referencing security schemes absent from document metadata are
// reported as warnings, one per offending route.
func Finalize(base *Document, collections ...*Collection) (*Document, []Warning, error) {
	if base == nil {
		return nil, nil, ErrNilDocument
	}

	doc := base.clone()
	for _, c := range collections {
		if c == nil {
			continue
		}
		for _, rd := range c.routes {
			if err := doc.AddRoute(rd); err != nil {
				var dup *DuplicateRouteError
				if errors.As(err, &dup) {
					dup.Source = c.name
				}
				return nil, nil, err
			}
		}
	}

	warnings := danglingSecurityRefs(doc)
	doc.seal()
	return doc, warnings, nil
}

// danglingSecurityRefs collects one warning per route whose security
// requirement names an undefined scheme.
func danglingSecurityRefs(doc *Document) []Warning {
	var warnings []Warning
	for _, rd := range doc.routes {
		if rd.security == "" {
			continue
		}
		if _, ok := doc.securitySchemes[rd.security]; !ok {
			warnings = append(warnings, Warning{Key: rd.Key(), Scheme: rd.security})
		}
	}
	return warnings
}
