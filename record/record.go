// Package record implements the "structured export" contract shared by
// every engine in this module: converting a tree to and from a plain
// nested mapping (value/left/right plus balancing metadata), and encoding
// that mapping as JSON or YAML.
//
// The per-engine Export/Import logic lives in bst, avl and btree
// themselves, since each produces a differently shaped mapping (a binary
// node's left/right vs. a B-tree node's keys/children). This package only
// owns the parts that are identical across all three: required-field
// checking and the two serialization formats.
package record

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mikenye/balancedtrees/treeerr"
	"gopkg.in/yaml.v3"
)

// Map is the plain nested record: a mapping whose fields are documented by
// each engine's Export/Import pair.
type Map = map[string]any

// RequireFields returns an *treeerr.InvalidInputError if m is missing any
// of fields.
func RequireFields(op string, m Map, fields ...string) error {
	for _, f := range fields {
		if _, ok := m[f]; !ok {
			return &treeerr.InvalidInputError{Op: op, Reason: fmt.Sprintf("missing required field %q", f)}
		}
	}
	return nil
}

// AsMap asserts that v is itself a nested Map, returning an
// *treeerr.InvalidInputError if it is not.
func AsMap(op, field string, v any) (Map, error) {
	m, ok := v.(Map)
	if !ok {
		return nil, &treeerr.InvalidInputError{Op: op, Reason: fmt.Sprintf("field %q is not a nested record", field)}
	}
	return m, nil
}

// AsSlice asserts that v is a slice, returning its elements as []any. It
// accepts both a []any (the shape produced by a JSON/YAML round-trip) and
// any other concrete slice type (the shape produced in-memory by a
// direct, un-serialized Export), returning an *treeerr.InvalidInputError
// for anything else.
func AsSlice(op, field string, v any) ([]any, error) {
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, &treeerr.InvalidInputError{Op: op, Reason: fmt.Sprintf("field %q is not a sequence", field)}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// ToJSON encodes m as indented JSON.
func ToJSON(m Map) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// FromJSON decodes a Map from JSON.
func FromJSON(data []byte) (Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &treeerr.InvalidInputError{Op: "record.FromJSON", Reason: err.Error()}
	}
	return m, nil
}

// ToYAML encodes m as YAML.
func ToYAML(m Map) ([]byte, error) {
	return yaml.Marshal(m)
}

// FromYAML decodes a Map from YAML.
func FromYAML(data []byte) (Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &treeerr.InvalidInputError{Op: "record.FromYAML", Reason: err.Error()}
	}
	return m, nil
}

// Direct returns the identity decoder: it converts a raw value into K by a
// plain type assertion, so it suits a record that was never serialized to
// bytes (the value is still the original K). After a JSON round-trip,
// numbers arrive as float64 and need a custom decoder.
func Direct[K any]() func(any) (K, bool) {
	return func(v any) (K, bool) {
		k, ok := v.(K)
		return k, ok
	}
}
