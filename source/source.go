package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// JSON decodes a JSON document into a dynamic value: map[string]any,
// []any, string, float64, bool, or nil.
func JSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("source: decoding JSON: %w", err)
	}
	return v, nil
}

// JSONNumber decodes like JSON but preserves numbers as json.Number,
// keeping their original text instead of rounding through float64.
func JSONNumber(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decoding JSON: %w", err)
	}
	return v, nil
}

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decoding JSON: %w", err)
	}
	return v, nil
}

// YAML decodes a YAML document into a dynamic value. Mappings decode
// to map[string]any where keys are strings and fall back to
// map[any]any otherwise; either shape works with the finder accessors.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("source: decoding YAML: %w", err)
	}
	return v, nil
}

// YAMLReader decodes a single YAML document from r.
func YAMLReader(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decoding YAML: %w", err)
	}
	return v, nil
}
