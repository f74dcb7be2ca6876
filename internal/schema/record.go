// Package schema validates schema.org Event and EventSeries records decoded from JSON-LD.
package schema

import "fmt"

// Record is one decoded structured-data object. Values are strings, numbers,
// nested maps or slices, exactly as the JSON decoder produced them.
type Record map[string]any

// typeKeys are consulted in order to find a record's declared kind.
var typeKeys = []string{"@type", "type"}

// unnamed labels an event whose name is absent.
const unnamed = "<unnamed>"

// Has reports whether field is present, regardless of its value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// TypeName returns the declared type as written, or "Unknown".
func (r Record) TypeName() string {
	for _, key := range typeKeys {
		raw, ok := r[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			return v
		case []any:
			for _, item := range v {
				if s, isString := item.(string); isString {
					return s
				}
			}
		}
	}
	return "Unknown"
}

// label returns the record's name for use in messages.
func (r Record) label() string {
	raw, ok := r["name"]
	if !ok || raw == nil {
		return unnamed
	}
	if s, isString := raw.(string); isString {
		return s
	}
	return fmt.Sprint(raw)
}

// asRecord converts a nested JSON value to a Record when it is an object.
func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}
