// Command sample demonstrates the apidocs documentation layer with a small
// album API.
//
// Run:
//
//	go run ./cmd/sample
//
// Then explore:
//
//	GET http://localhost:8080/redoc                  — Redoc UI
//	GET http://localhost:8080/scalar                 — Scalar UI
//	GET http://localhost:8080/swagger                — Swagger UI
//	GET http://localhost:8080/api-docs/openapi.json  — spec as JSON
//	GET http://localhost:8080/api-docs/openapi.yaml  — spec as YAML
//	GET http://localhost:8080/album                  — list albums
//	GET http://localhost:8080/album/1                — one album
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/bjaus/apidocs"
)

const configYAML = `
redoc:
  url: /redoc
scalar:
  url: /scalar
swagger:
  url: /swagger
  spec_json_url: /api-docs/openapi.json
  spec_yaml_url: /api-docs/openapi.yaml
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := apidocs.ParseConfig([]byte(configYAML))
	if err != nil {
		logger.Error("invalid visualizer config", "err", err)
		os.Exit(1)
	}

	r := newRouter(logger)

	setup := apidocs.NewSetup(buildDocument,
		apidocs.WithConfig(cfg),
		apidocs.WithCollections(r.Descriptors(), adminCollection(r)),
		apidocs.WithLogger(logger),
		apidocs.WithMountMiddleware(apidocs.RateLimit(20, 40)),
	)

	if _, err := setup.Initialize(ctx, r); err != nil {
		logger.Error("docs initialization failed", "err", err)
		os.Exit(1)
	}

	logger.Info("starting server", "addr", ":8080", "docs", "http://localhost:8080/swagger")

	if err := r.ListenAndServe(ctx, ":8080"); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
	}

	logger.Info("server stopped")
}

// buildDocument is the base-document builder: metadata and security scheme
// definitions, varying by environment if needed.
func buildDocument(_ context.Context) *apidocs.Document {
	return apidocs.NewDocument(
		apidocs.WithTitle("Album API"),
		apidocs.WithDocDescription("A small record collection service."),
		apidocs.WithVersion("1.0.0"),
		apidocs.WithJWTSecurity(apidocs.JWTBearer),
		apidocs.WithAPIKeySecurity("X-API-Key"),
	)
}

func newRouter(logger *slog.Logger) *apidocs.Router {
	r := apidocs.NewRouter()
	r.Use(apidocs.Recovery(logger))
	r.Use(apidocs.Logger(logger))

	apidocs.Get[apidocs.None, []Album](r, "/album", handleListAlbums,
		apidocs.WithSummary("List albums"),
		apidocs.WithDescription("Returns every album in the collection."),
		apidocs.WithTags("album"),
		apidocs.WithSecurity(apidocs.SchemeJWT),
	)

	apidocs.Get[AlbumByIDReq, Album](r, "/album/{id}", handleGetAlbum,
		apidocs.WithSummary("Get album"),
		apidocs.WithDescription("Returns a title and rating."),
		apidocs.WithTags("album"),
		apidocs.WithNoSecurity(),
	)

	apidocs.Post[CreateAlbumReq, Album](r, "/album", handleCreateAlbum,
		apidocs.WithSummary("Create album"),
		apidocs.WithTags("album"),
		apidocs.WithSecurity(apidocs.SchemeJWT),
	)

	return r
}

// adminCollection shows the manual path: a handler registered directly on
// the mux, with its descriptor built by hand.
func adminCollection(r *apidocs.Router) *apidocs.Collection {
	r.Handle("GET /admin/stats", http.HandlerFunc(handleStats))

	return apidocs.NewCollection("admin").Add(
		apidocs.NewRoute(http.MethodGet, "/admin/stats",
			apidocs.WithSummary("Collection statistics"),
			apidocs.WithTags("admin"),
			apidocs.WithSecurity(apidocs.SchemeAPIKey),
			apidocs.WithResponse(http.StatusOK, "Current statistics", Stats{}),
		),
	)
}

// Album is the core domain entity.
type Album struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Rating int    `json:"rating"`
}

type AlbumByIDReq struct {
	ID string `path:"id" doc:"Album ID"`
}

type CreateAlbumReq struct {
	Body struct {
		Title  string `json:"title" required:"true" doc:"Album title"`
		Rating int    `json:"rating" doc:"Rating from 1 to 10"`
	}
}

// Stats summarizes the collection for the admin endpoint.
type Stats struct {
	Albums    int     `json:"albums"`
	AvgRating float64 `json:"avg_rating"`
}

var albums = []Album{
	{ID: "1", Title: "VH II", Rating: 10},
	{ID: "2", Title: "1984", Rating: 9},
}

func handleListAlbums(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, albums)
}

func handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, a := range albums {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	http.Error(w, "album not found", http.StatusNotFound)
}

func handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req CreateAlbumReq
	if err := json.NewDecoder(r.Body).Decode(&req.Body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	album := Album{ID: "3", Title: req.Body.Title, Rating: req.Body.Rating}
	albums = append(albums, album)
	writeJSON(w, http.StatusCreated, album)
}

func handleStats(w http.ResponseWriter, _ *http.Request) {
	var sum int
	for _, a := range albums {
		sum += a.Rating
	}
	writeJSON(w, http.StatusOK, Stats{
		Albums:    len(albums),
		AvgRating: float64(sum) / float64(len(albums)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort after WriteHeader
	json.NewEncoder(w).Encode(v)
}
