package apidocs

import (
	"reflect"
	"strings"
	"time"
)

// JSONSchema is a JSON Schema object (the subset used by OpenAPI 3.1).
type JSONSchema struct {
	Type        string                `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string                `json:"format,omitempty" yaml:"format,omitempty"`
	Properties  map[string]JSONSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *JSONSchema           `json:"items,omitempty" yaml:"items,omitempty"`
	Required    []string              `json:"required,omitempty" yaml:"required,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Enum        []string              `json:"enum,omitempty" yaml:"enum,omitempty"`

	// AdditionalProperties holds the value schema for map-like objects.
	AdditionalProperties *JSONSchema `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// SchemaOf derives the JSON schema for the given value's type. A nil value
// yields the empty (any) schema.
func SchemaOf(v any) JSONSchema {
	if v == nil {
		return JSONSchema{}
	}
	return schemaOfType(reflect.TypeOf(v))
}

// schemaOfType converts a reflect.Type to a JSONSchema.
func schemaOfType(t reflect.Type) JSONSchema {
	if t.Kind() == reflect.Pointer {
		return schemaOfType(t.Elem())
	}

	switch t {
	case reflect.TypeFor[time.Time]():
		return JSONSchema{Type: "string", Format: "date-time"}
	case reflect.TypeFor[time.Duration]():
		return JSONSchema{Type: "string", Format: "duration"}
	}

	//exhaustive:ignore
	switch t.Kind() {
	case reflect.String:
		return JSONSchema{Type: "string"}
	case reflect.Bool:
		return JSONSchema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return JSONSchema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return JSONSchema{Type: "number"}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return JSONSchema{Type: "string", Format: "byte"}
		}
		items := schemaOfType(t.Elem())
		return JSONSchema{Type: "array", Items: &items}
	case reflect.Array:
		items := schemaOfType(t.Elem())
		return JSONSchema{Type: "array", Items: &items}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return JSONSchema{Type: "object"}
		}
		val := schemaOfType(t.Elem())
		return JSONSchema{Type: "object", AdditionalProperties: &val}
	case reflect.Struct:
		return structSchema(t)
	default:
		return JSONSchema{}
	}
}

// structSchema converts a struct type to an object schema. Fields carrying
// parameter binding tags describe parameters, not body content, and are
// skipped here.
func structSchema(t reflect.Type) JSONSchema {
	schema := JSONSchema{
		Type:       "object",
		Properties: make(map[string]JSONSchema),
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || isParamField(f) {
			continue
		}

		name := jsonFieldName(f)
		if name == "-" {
			continue
		}

		prop := schemaOfType(f.Type)
		if doc := f.Tag.Get("doc"); doc != "" {
			prop.Description = doc
		}
		schema.Properties[name] = prop

		if f.Tag.Get("required") == "true" {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// paramTags are the struct tags that mark a field as an operation parameter.
var paramTags = []string{"path", "query", "header", "cookie"}

func isParamField(f reflect.StructField) bool {
	for _, tag := range paramTags {
		if f.Tag.Get(tag) != "" {
			return true
		}
	}
	return false
}

func hasParamTags(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		if t.Field(i).IsExported() && isParamField(t.Field(i)) {
			return true
		}
	}
	return false
}

// jsonFieldName returns the JSON name for a struct field.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// paramsFromType builds parameters from path/query/header/cookie-tagged
// fields of a request type.
func paramsFromType(t reflect.Type) []Parameter {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var params []Parameter
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		for _, tag := range paramTags {
			name := f.Tag.Get(tag)
			if name == "" {
				continue
			}

			p := Parameter{
				Name:   name,
				In:     tag,
				Schema: schemaOfType(f.Type),
			}
			if doc := f.Tag.Get("doc"); doc != "" {
				p.Description = doc
			}
			if f.Tag.Get("required") == "true" || tag == "path" {
				p.Required = true
			}
			params = append(params, p)
		}
	}

	return params
}

// bodyFromType builds a request body from a request type: an exported Body
// field wins; otherwise the whole struct is the body for methods that carry
// one, provided no field is a bound parameter.
func bodyFromType(t reflect.Type, method string) *RequestBody {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	if bodyField, ok := t.FieldByName("Body"); ok {
		schema := schemaOfType(bodyField.Type)
		return jsonBody(schema)
	}

	if !hasParamTags(t) && (method == "POST" || method == "PUT" || method == "PATCH") {
		schema := structSchema(t)
		return jsonBody(schema)
	}

	return nil
}

func jsonBody(schema JSONSchema) *RequestBody {
	return &RequestBody{
		Required: true,
		Content:  map[string]Media{"application/json": {Schema: &schema}},
	}
}
