package webpage

import "encoding/json"

// SchemaOrg is a single Schema.org structured data item found in a
// JSON-LD script block. Value is always a JSON object.
type SchemaOrg struct {
	// SchemaType is the item's @type (e.g. "Article", "Product").
	// For multi-typed items the first type is used.
	SchemaType string `json:"schema_type"`

	// Value is the full JSON object of the item.
	Value map[string]any `json:"value"`
}

// ParseSchemaOrg parses a JSON-LD payload into a flat list of items.
// It handles single objects, arrays of objects, and top-level @graph
// structures; nested graphs are left opaque inside Value. Parse errors
// and shapes without a usable @type yield no items, never an error.
func ParseSchemaOrg(content string) []SchemaOrg {
	var node any
	if err := json.Unmarshal([]byte(content), &node); err != nil {
		return nil
	}

	var candidates []any
	switch v := node.(type) {
	case []any:
		candidates = v
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			candidates = graph
		} else {
			candidates = []any{v}
		}
	default:
		return nil
	}

	var items []SchemaOrg
	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			continue
		}

		var schemaType string
		switch t := obj["@type"].(type) {
		case string:
			schemaType = t
		case []any:
			// Multi-typed item: take the first type.
			if len(t) == 0 {
				continue
			}
			s, ok := t[0].(string)
			if !ok {
				continue
			}
			schemaType = s
		default:
			continue
		}
		if schemaType == "" {
			continue
		}

		items = append(items, SchemaOrg{SchemaType: schemaType, Value: obj})
	}
	return items
}

// GetString returns the property value as a string, or "" when absent
// or not a string.
func (s *SchemaOrg) GetString(key string) string {
	v, _ := s.Value[key].(string)
	return v
}

// GetInt64 returns the property value as an int64. JSON numbers
// decode as float64; fractional values report false.
func (s *SchemaOrg) GetInt64(key string) (int64, bool) {
	f, ok := s.Value[key].(float64)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// GetObject returns the property value as a nested object, or nil.
func (s *SchemaOrg) GetObject(key string) map[string]any {
	v, _ := s.Value[key].(map[string]any)
	return v
}

// GetArray returns the property value as an array, or nil.
func (s *SchemaOrg) GetArray(key string) []any {
	v, _ := s.Value[key].([]any)
	return v
}
