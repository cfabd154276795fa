// Package source decodes configuration text into the generic raw value tree
// that construction consumes: string/number/bool/null scalars, []any
// sequences, and string-keyed map[string]any mappings. Numbers are preserved
// as json.Number so no precision is lost before binding.
//
// Parsing lives here, outside the core engine, which only ever sees the
// already-parsed tree.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/NHSDigital/typed-params/internal/rawvalue"
)

// JSONBytes decodes a JSON document into the raw value model.
func JSONBytes(b []byte) (any, error) {
	return decodeJSON(json.NewDecoder(bytes.NewReader(b)))
}

// JSONReader decodes a JSON document from r into the raw value model.
func JSONReader(r io.Reader) (any, error) {
	return decodeJSON(json.NewDecoder(r))
}

// JSONFile reads and decodes a JSON params file.
func JSONFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := decodeJSON(json.NewDecoder(f))
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (any, error) {
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return rawvalue.Normalize(v)
}

// YAMLBytes decodes a YAML document and folds it into the JSON value model:
// string-keyed mappings only, numbers as json.Number.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return rawvalue.Normalize(v)
}

// YAMLFile reads and decodes a YAML params file.
func YAMLFile(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := YAMLBytes(b)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	return v, nil
}
