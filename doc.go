// Package apidocs documents and serves an OpenAPI 3.1 specification for a
// running HTTP service. Route metadata is gathered from two sources, route
// descriptors produced as a side effect of registration on a Router and
// collections built by hand, then merged into a single immutable Document
// with a one-registration-per-route guarantee.
//
// A startup Setup owns the whole lifecycle: it runs a user-supplied builder
// to obtain the base document, merges in the collected routes, caches the
// JSON and YAML serializations in a Registry, and mounts the configured
// visualizer UIs (Redoc, Scalar, Swagger UI):
//
//	r := apidocs.NewRouter()
//	apidocs.Get[apidocs.None, Album](r, "/album", getAlbum,
//	    apidocs.WithSummary("Get album"),
//	    apidocs.WithSecurity("jwt_token"),
//	)
//
//	setup := apidocs.NewSetup(func(ctx context.Context) *apidocs.Document {
//	    return apidocs.NewDocument(
//	        apidocs.WithTitle("Album API"),
//	        apidocs.WithJWTSecurity(apidocs.JWTBearer),
//	    )
//	}, apidocs.WithCollections(r.Descriptors()))
//
//	reg, err := setup.Initialize(ctx, r)
//
// Two sources claiming the same (method, path) key is a startup error, never
// silently resolved. Once finalized, the Document and its serialized forms
// are immutable and safe for unlocked concurrent reads.
package apidocs
