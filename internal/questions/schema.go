package questions

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema every catalog document must satisfy
// before it is decoded into Go types.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "modes", "questions"},
	"properties": map[string]any{
		"version": map[string]any{"type": "integer", "const": 1},
		"modes": map[string]any{
			"type":     "object",
			"required": []any{"quick", "deep"},
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"title"},
				"properties": map[string]any{
					"title":   map[string]any{"type": "string", "minLength": 1},
					"blurb":   map[string]any{"type": "string"},
					"minutes": map[string]any{"type": "integer", "minimum": 0},
				},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text", "dimension", "target"},
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$"},
					"text":      map[string]any{"type": "string", "minLength": 1},
					"dimension": map[string]any{"enum": []any{"EI", "SN", "TF", "JP"}},
					"target":    map[string]any{"enum": []any{"first", "second"}},
					"quick":     map[string]any{"type": "boolean"},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

const schemaURL = "schema://question-catalog.json"

var compileOnce = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// Round-trip through JSON so the compiler sees plain JSON values.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateDocument checks a decoded YAML document against catalogSchema.
func validateDocument(doc any) error {
	compiled, err := compileOnce()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// yaml.v3 produces ints and map[string]any; normalise to JSON values.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	return compiled.Validate(parsed)
}
