package trace

import (
	"encoding/json"
	"sort"
)

// schemaProperty is one typed key in an inferred schema.
type schemaProperty struct {
	Type string `json:"type"`
}

type schemaParameters struct {
	Type                 string                    `json:"type"`
	Properties           map[string]schemaProperty `json:"properties"`
	Required             []string                  `json:"required"`
	AdditionalProperties bool                      `json:"additionalProperties"`
}

type inferredSchema struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Strict      bool             `json:"strict"`
	Parameters  schemaParameters `json:"parameters"`
}

// InferSchema produces a strict-object schema descriptor from a structured
// output payload. Only top-level value types are inferred; nested object
// shapes are not recursed into. Every key is marked required.
func InferSchema(data map[string]any) string {
	schema := inferredSchema{
		Name:        "structured_output",
		Description: "Assistant structured output",
		Strict:      true,
		Parameters: schemaParameters{
			Type:       "object",
			Properties: map[string]schemaProperty{},
			Required:   []string{},
		},
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		schema.Parameters.Properties[key] = schemaProperty{Type: jsonTypeName(data[key])}
		schema.Parameters.Required = append(schema.Parameters.Required, key)
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// jsonTypeName maps a decoded JSON value to its schema type name.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	default:
		return "object"
	}
}
