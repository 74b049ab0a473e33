package apidocs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apidocs"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       apidocs.Config
		wantKind  string
		wantField string
	}{
		{
			name: "valid full config",
			cfg: apidocs.Config{
				Redoc:   &apidocs.VisualizerConfig{URL: "/redoc"},
				Scalar:  &apidocs.VisualizerConfig{URL: "/scalar", SpecYAMLURL: "/scalar/openapi.yaml"},
				Swagger: &apidocs.VisualizerConfig{URL: "/swagger", SpecJSONURL: "/api-docs/openapi.json"},
			},
		},
		{
			name: "empty config is valid",
			cfg:  apidocs.Config{},
		},
		{
			name:      "swagger without spec_json_url",
			cfg:       apidocs.Config{Swagger: &apidocs.VisualizerConfig{URL: "/swagger"}},
			wantKind:  "swagger",
			wantField: "spec_json_url",
		},
		{
			name:      "enabled kind without url",
			cfg:       apidocs.Config{Redoc: &apidocs.VisualizerConfig{}},
			wantKind:  "redoc",
			wantField: "url",
		},
		{
			name: "scalar without url",
			cfg: apidocs.Config{
				Scalar: &apidocs.VisualizerConfig{SpecJSONURL: "/openapi.json"},
			},
			wantKind:  "scalar",
			wantField: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var cerr *apidocs.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestConfig_Validate_path_conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       apidocs.Config
		wantKind  string
		wantField string
		wantPath  string
	}{
		{
			name: "two kinds share a mount url",
			cfg: apidocs.Config{
				Redoc:  &apidocs.VisualizerConfig{URL: "/docs"},
				Scalar: &apidocs.VisualizerConfig{URL: "/docs"},
			},
			wantKind:  "scalar",
			wantField: "url",
			wantPath:  "/docs",
		},
		{
			name: "spec url collides with a mount url",
			cfg: apidocs.Config{
				Redoc:  &apidocs.VisualizerConfig{URL: "/redoc"},
				Scalar: &apidocs.VisualizerConfig{URL: "/scalar", SpecJSONURL: "/redoc"},
			},
			wantKind:  "scalar",
			wantField: "spec_json_url",
			wantPath:  "/redoc",
		},
		{
			name: "json and yaml spec urls collide",
			cfg: apidocs.Config{
				Redoc: &apidocs.VisualizerConfig{
					URL:         "/redoc",
					SpecJSONURL: "/api-docs/openapi",
					SpecYAMLURL: "/api-docs/openapi",
				},
			},
			wantKind:  "redoc",
			wantField: "spec_yaml_url",
			wantPath:  "/api-docs/openapi",
		},
		{
			name: "shared spec urls across kinds are valid",
			cfg: apidocs.Config{
				Redoc:   &apidocs.VisualizerConfig{URL: "/redoc", SpecJSONURL: "/api-docs/openapi.json"},
				Scalar:  &apidocs.VisualizerConfig{URL: "/scalar", SpecJSONURL: "/api-docs/openapi.json"},
				Swagger: &apidocs.VisualizerConfig{URL: "/swagger", SpecJSONURL: "/api-docs/openapi.json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantPath == "" {
				require.NoError(t, err)
				return
			}

			var cerr *apidocs.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, tt.wantField, cerr.Field)
			assert.Equal(t, tt.wantPath, cerr.Path)
			assert.Contains(t, err.Error(), "conflicts")
		})
	}
}

func TestMountVisualizers_conflicting_urls_fail_before_registration(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	err := apidocs.MountVisualizers(mux, apidocs.Config{
		Redoc:  &apidocs.VisualizerConfig{URL: "/docs"},
		Scalar: &apidocs.VisualizerConfig{URL: "/docs"},
	}, finalizedRegistry(t))

	var cerr *apidocs.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "/docs", cerr.Path)

	// Nothing was registered on the mux.
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	resp, _ := get(t, srv, "/docs")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := apidocs.DefaultConfig()
	require.NoError(t, cfg.Validate())

	require.NotNil(t, cfg.Redoc)
	assert.Equal(t, apidocs.DefaultRedocURL, cfg.Redoc.URL)
	require.NotNil(t, cfg.Scalar)
	assert.Equal(t, apidocs.DefaultScalarURL, cfg.Scalar.URL)
	require.NotNil(t, cfg.Swagger)
	assert.Equal(t, apidocs.DefaultSwaggerURL, cfg.Swagger.URL)
	assert.Equal(t, apidocs.DefaultSpecJSONURL, cfg.Swagger.SpecJSONURL)
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := apidocs.ParseConfig([]byte(`
redoc:
  url: /redoc
swagger:
  url: /swagger
  spec_json_url: /api-docs/openapi.json
  spec_yaml_url: /api-docs/openapi.yaml
`))
	require.NoError(t, err)

	require.NotNil(t, cfg.Redoc)
	assert.Equal(t, "/redoc", cfg.Redoc.URL)
	assert.Nil(t, cfg.Scalar)
	require.NotNil(t, cfg.Swagger)
	assert.Equal(t, "/api-docs/openapi.json", cfg.Swagger.SpecJSONURL)
	assert.Equal(t, "/api-docs/openapi.yaml", cfg.Swagger.SpecYAMLURL)
}

func TestParseConfig_invalid(t *testing.T) {
	t.Parallel()

	_, err := apidocs.ParseConfig([]byte(`swagger: [not, a, mapping]`))
	require.Error(t, err)

	_, err = apidocs.ParseConfig([]byte("swagger:\n  url: /swagger\n"))
	var cerr *apidocs.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "spec_json_url", cerr.Field)
}
