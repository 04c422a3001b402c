package config

import "github.com/invopop/jsonschema"

// MapSchema returns the JSON schema of a map document.
func MapSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&MapConfig{})
}

// TransformSchema returns the JSON schema of a transform document.
func TransformSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&TransformConfig{})
}
