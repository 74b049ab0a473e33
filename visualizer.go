package apidocs

import (
	"html/template"
	"net/http"
)

// Mux is the routing collaborator boundary: anything that can register a
// handler for a Go 1.22 "METHOD /path" pattern. *http.ServeMux and *Router
// both satisfy it.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

const (
	kindRedoc   = "redoc"
	kindScalar  = "scalar"
	kindSwagger = "swagger"
)

// pages holds the parsed UI page template for each kind.
var pages = map[string]*template.Template{
	kindRedoc:   template.Must(template.New(kindRedoc).Parse(redocHTML)),
	kindScalar:  template.Must(template.New(kindScalar).Parse(scalarHTML)),
	kindSwagger: template.Must(template.New(kindSwagger).Parse(swaggerHTML)),
}

// pageData parameterizes a visualizer page.
type pageData struct {
	Title   string
	SpecURL string
}

// MountVisualizers registers the configured visualizer endpoints on mux.
// For each enabled kind it serves the UI page at the configured URL and, if
// spec URLs are configured, the registry's cached JSON and YAML texts.
// A kind with no spec URL of its own points at DefaultSpecJSONURL, which is
// then served as well. Spec endpoints shared between kinds are registered
// once. Kinds mount independently; the config is validated up front so a
// misconfigured kind fails startup before anything is registered.
func MountVisualizers(mux Mux, cfg Config, reg *Registry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if reg == nil {
		return ErrNilRegistry
	}

	mounts := []struct {
		kind string
		cfg  *VisualizerConfig
	}{
		{kindRedoc, cfg.Redoc},
		{kindScalar, cfg.Scalar},
		{kindSwagger, cfg.Swagger},
	}

	registered := make(map[string]bool)
	serveOnce := func(path string, h http.Handler) {
		if path == "" || registered[path] {
			return
		}
		registered[path] = true
		mux.Handle("GET "+path, h)
	}

	for _, m := range mounts {
		if m.cfg == nil {
			continue
		}

		// The page fetches the spec from the kind's JSON URL, falling back
		// to its YAML URL, then to the shared default JSON path.
		specURL := m.cfg.SpecJSONURL
		if specURL == "" {
			specURL = m.cfg.SpecYAMLURL
		}
		jsonURL := m.cfg.SpecJSONURL
		if specURL == "" {
			specURL = DefaultSpecJSONURL
			jsonURL = DefaultSpecJSONURL
		}

		if registered[m.cfg.URL] {
			return &ConfigError{Kind: m.kind, Field: "url", Path: m.cfg.URL}
		}
		registered[m.cfg.URL] = true
		mux.Handle("GET "+m.cfg.URL, pageHandler(pages[m.kind], pageData{
			Title:   reg.Document().Title(),
			SpecURL: specURL,
		}))
		serveOnce(jsonURL, specJSONHandler(reg))
		serveOnce(m.cfg.SpecYAMLURL, specYAMLHandler(reg))
	}

	return nil
}

func pageHandler(page *template.Template, data pageData) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec
		page.Execute(w, data)
	})
}

func specJSONHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		w.Write(reg.JSON())
	})
}

func specYAMLHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		w.Write(reg.YAML())
	})
}

const redocHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="{{.SpecURL}}"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

const scalarHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body>
  <script id="api-reference" data-url="{{.SpecURL}}"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

const swaggerHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui" data-spec-url="{{.SpecURL}}"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({
        url: document.getElementById("swagger-ui").dataset.specUrl,
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>`
