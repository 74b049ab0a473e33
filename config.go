package apidocs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default mount paths for the visualizer kinds, and the combined default
// location of the serialized spec.
const (
	DefaultRedocURL    = "/redoc"
	DefaultScalarURL   = "/scalar"
	DefaultSwaggerURL  = "/swagger"
	DefaultSpecJSONURL = "/api-docs/openapi.json"
)

// VisualizerConfig configures one visualizer kind.
type VisualizerConfig struct {
	// URL is the mount path of the interactive UI. Required when the kind
	// is enabled.
	URL string `json:"url" yaml:"url"`

	// SpecJSONURL, when set, also serves the spec as JSON at that path.
	// Required for Swagger UI, optional for Redoc and Scalar.
	SpecJSONURL string `json:"spec_json_url,omitempty" yaml:"spec_json_url,omitempty"`

	// SpecYAMLURL, when set, also serves the spec as YAML at that path.
	SpecYAMLURL string `json:"spec_yaml_url,omitempty" yaml:"spec_yaml_url,omitempty"`
}

// Config selects which visualizers to mount. A nil entry means that kind is
// not mounted; kinds mount independently of each other.
type Config struct {
	Redoc   *VisualizerConfig `json:"redoc,omitempty" yaml:"redoc,omitempty"`
	Scalar  *VisualizerConfig `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Swagger *VisualizerConfig `json:"swagger,omitempty" yaml:"swagger,omitempty"`
}

// DefaultConfig mounts all three visualizers at their default paths with a
// shared JSON spec endpoint.
func DefaultConfig() Config {
	return Config{
		Redoc:   &VisualizerConfig{URL: DefaultRedocURL},
		Scalar:  &VisualizerConfig{URL: DefaultScalarURL},
		Swagger: &VisualizerConfig{URL: DefaultSwaggerURL, SpecJSONURL: DefaultSpecJSONURL},
	}
}

// ParseConfig decodes a YAML visualizer configuration and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("apidocs: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every enabled kind carries its mandatory fields (a
// mount URL for all kinds, plus a JSON spec URL for Swagger UI) and that no
// path is claimed by two different endpoints. Spec URLs may be shared across
// kinds, since every kind serves the same bytes, but a UI page path must be
// unique and a path cannot serve both JSON and YAML. Violations are
// *ConfigError values naming the kind and the offending field.
func (c Config) Validate() error {
	kinds := []struct {
		name string
		cfg  *VisualizerConfig
	}{
		{kindRedoc, c.Redoc},
		{kindScalar, c.Scalar},
		{kindSwagger, c.Swagger},
	}

	for _, k := range kinds {
		if k.cfg == nil {
			continue
		}
		if k.cfg.URL == "" {
			return &ConfigError{Kind: k.name, Field: "url"}
		}
	}

	if c.Swagger != nil && c.Swagger.SpecJSONURL == "" {
		return &ConfigError{Kind: kindSwagger, Field: "spec_json_url"}
	}

	roles := make(map[string]string)
	for _, k := range kinds {
		if k.cfg == nil {
			continue
		}
		if _, taken := roles[k.cfg.URL]; taken {
			return &ConfigError{Kind: k.name, Field: "url", Path: k.cfg.URL}
		}
		roles[k.cfg.URL] = "page"
	}
	for _, k := range kinds {
		if k.cfg == nil {
			continue
		}
		specs := []struct {
			field string
			path  string
			role  string
		}{
			{"spec_json_url", k.cfg.SpecJSONURL, "json"},
			{"spec_yaml_url", k.cfg.SpecYAMLURL, "yaml"},
		}
		for _, s := range specs {
			if s.path == "" {
				continue
			}
			if role, taken := roles[s.path]; taken && role != s.role {
				return &ConfigError{Kind: k.name, Field: s.field, Path: s.path}
			}
			roles[s.path] = s.role
		}
	}

	return nil
}
