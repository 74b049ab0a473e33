package apidocs_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apidocs"
)

func TestNewDocument_metadata(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument(
		apidocs.WithTitle("Album API"),
		apidocs.WithDocDescription("A record collection."),
		apidocs.WithVersion("2.1.0"),
		apidocs.WithSecurityScheme("bearerAuth", apidocs.SecurityScheme{
			Type:   "http",
			Scheme: "bearer",
		}),
	)

	assert.Equal(t, "Album API", doc.Title())
	assert.Equal(t, "A record collection.", doc.Description())
	assert.Equal(t, "2.1.0", doc.Version())
	assert.Contains(t, doc.SecuritySchemes(), "bearerAuth")
	assert.Zero(t, doc.Len())
	assert.False(t, doc.Finalized())
}

func TestDocument_AddRoute_duplicate(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument(apidocs.WithTitle("Dup"))

	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/album")))

	err := doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/album"))
	require.Error(t, err)

	var dup *apidocs.DuplicateRouteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, apidocs.RouteKey{Method: "GET", Path: "/album"}, dup.Key)
	assert.Contains(t, err.Error(), "GET /album")

	// The failed insert must not change the document.
	assert.Equal(t, 1, doc.Len())
}

func TestDocument_AddRoute_same_path_different_method(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument()
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/album")))
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodPost, "/album")))

	assert.Equal(t, 2, doc.Len())

	spec := doc.Spec()
	item, ok := spec.Paths.Get("/album")
	require.True(t, ok)
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "post")
}

func TestDocument_route_lookup(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument()
	rd := apidocs.NewRoute(http.MethodGet, "/album/{id}", apidocs.WithSummary("Get album"))
	require.NoError(t, doc.AddRoute(rd))

	got, ok := doc.Route(apidocs.RouteKey{Method: "GET", Path: "/album/{id}"})
	require.True(t, ok)
	assert.Equal(t, "Get album", got.Summary())

	_, ok = doc.Route(apidocs.RouteKey{Method: "DELETE", Path: "/album/{id}"})
	assert.False(t, ok)
}

func TestDocument_mutation_after_finalize_panics(t *testing.T) {
	t.Parallel()

	base := apidocs.NewDocument(apidocs.WithTitle("Sealed"))
	doc, _, err := apidocs.Finalize(base)
	require.NoError(t, err)
	require.True(t, doc.Finalized())

	assert.Panics(t, func() {
		//nolint:errcheck // the call must panic before returning
		doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/late"))
	})
}

func TestDocument_Spec_preserves_insertion_order(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument(apidocs.WithTitle("Ordered"))
	for _, path := range []string{"/zebra", "/album", "/middle"} {
		require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, path)))
	}

	spec := doc.Spec()
	assert.Equal(t, []string{"/zebra", "/album", "/middle"}, spec.Paths.Keys())
}

func TestDocument_Spec_security_rendering(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument(
		apidocs.WithSecurityScheme("jwt_token", apidocs.SecurityScheme{Type: "http", Scheme: "bearer"}),
	)
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/secured",
		apidocs.WithSecurity("jwt_token"),
	)))
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/public",
		apidocs.WithNoSecurity(),
	)))
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/unset")))

	spec := doc.Spec()

	secured, _ := spec.Paths.Get("/secured")
	require.NotNil(t, secured["get"].Security)
	require.Len(t, *secured["get"].Security, 1)
	assert.Contains(t, (*secured["get"].Security)[0], "jwt_token")

	public, _ := spec.Paths.Get("/public")
	require.NotNil(t, public["get"].Security, "explicit no-security renders an empty array")
	assert.Empty(t, *public["get"].Security)

	unset, _ := spec.Paths.Get("/unset")
	assert.Nil(t, unset["get"].Security, "unset security omits the field")

	require.NotNil(t, spec.Components)
	assert.Contains(t, spec.Components.SecuritySchemes, "jwt_token")
}

func TestRouteKey_String(t *testing.T) {
	t.Parallel()

	key := apidocs.RouteKey{Method: "GET", Path: "/album"}
	assert.Equal(t, "GET /album", key.String())
}

func TestNewRoute_normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		want   apidocs.RouteKey
	}{
		{"colon param", "get", "/album/:id", apidocs.RouteKey{Method: "GET", Path: "/album/{id}"}},
		{"brace param", "GET", "/album/{id}", apidocs.RouteKey{Method: "GET", Path: "/album/{id}"}},
		{"wildcard", "GET", "/static/{path...}", apidocs.RouteKey{Method: "GET", Path: "/static/{path}"}},
		{"missing slash", "post", "album", apidocs.RouteKey{Method: "POST", Path: "/album"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, apidocs.NewRoute(tt.method, tt.path).Key())
		})
	}
}

func TestNewRoute_options(t *testing.T) {
	t.Parallel()

	rd := apidocs.NewRoute(http.MethodPost, "/album",
		apidocs.WithSummary("Create album"),
		apidocs.WithDescription("Adds an album to the collection."),
		apidocs.WithTags("album", "write"),
		apidocs.WithOperationID("createAlbum"),
		apidocs.WithSecurity("jwt_token"),
	)

	assert.Equal(t, "Create album", rd.Summary())
	assert.Equal(t, []string{"album", "write"}, rd.Tags())
	assert.Equal(t, "jwt_token", rd.Security())
	assert.Equal(t, "POST", rd.Method())
	assert.Equal(t, "/album", rd.Path())
}

func TestNewRoute_response_and_body_options(t *testing.T) {
	t.Parallel()

	type album struct {
		Title  string `json:"title" required:"true"`
		Rating int    `json:"rating"`
	}

	doc := apidocs.NewDocument()
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodPost, "/album",
		apidocs.WithRequestBody(album{}),
		apidocs.WithResponse(http.StatusCreated, "Album created", album{}),
		apidocs.WithResponse(http.StatusNotFound, "Album not found", nil),
	)))

	spec := doc.Spec()
	item, _ := spec.Paths.Get("/album")
	op := item["post"]

	require.NotNil(t, op.RequestBody)
	require.Contains(t, op.RequestBody.Content, "application/json")
	body := op.RequestBody.Content["application/json"].Schema
	require.NotNil(t, body)
	assert.Equal(t, "object", body.Type)
	assert.Contains(t, body.Properties, "title")
	assert.Equal(t, []string{"title"}, body.Required)

	require.Contains(t, op.Responses, "201")
	assert.Equal(t, "Album created", op.Responses["201"].Description)
	require.Contains(t, op.Responses, "404")
	assert.Empty(t, op.Responses["404"].Content)
}

func TestNewRoute_default_response(t *testing.T) {
	t.Parallel()

	doc := apidocs.NewDocument()
	require.NoError(t, doc.AddRoute(apidocs.NewRoute(http.MethodGet, "/bare")))

	spec := doc.Spec()
	item, _ := spec.Paths.Get("/bare")
	require.Contains(t, item["get"].Responses, "200")
	assert.True(t, strings.HasPrefix(item["get"].Responses["200"].Description, "Successful"))
}
