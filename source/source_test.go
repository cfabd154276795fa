package source_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NHSDigital/typed-params/source"
)

func TestJSONBytes_PreservesNumbersAndShape(t *testing.T) {
	v, err := source.JSONBytes([]byte(`{"a": 1, "b": [1.5, true, null], "c": {"d": "x"}}`))
	require.NoError(t, err)

	m := v.(map[string]any)
	require.Equal(t, json.Number("1"), m["a"])
	seq := m["b"].([]any)
	require.Equal(t, json.Number("1.5"), seq[0])
	require.Equal(t, true, seq[1])
	require.Nil(t, seq[2])
	require.Equal(t, "x", m["c"].(map[string]any)["d"])
}

func TestJSONReader(t *testing.T) {
	v, err := source.JSONReader(strings.NewReader(`["ROW_1", "ROW_2"]`))
	require.NoError(t, err)
	require.Equal(t, []any{"ROW_1", "ROW_2"}, v)
}

func TestJSONBytes_InvalidDocument(t *testing.T) {
	_, err := source.JSONBytes([]byte(`{"a": `))
	require.Error(t, err)
}

func TestJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ROW_NAMES": {"TOTAL_ROW": "t"}}`), 0o644))

	v, err := source.JSONFile(path)
	require.NoError(t, err)
	m := v.(map[string]any)
	require.Equal(t, "t", m["ROW_NAMES"].(map[string]any)["TOTAL_ROW"])

	_, err = source.JSONFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestYAMLBytes_NormalizedIntoJSONModel(t *testing.T) {
	doc := []byte(`
ROW_NAMES:
  TOTAL_ROW: total_row_name
PUBLICATION_ROW_ORDER:
  - ROW_1
  - ROW_2
MAX_ROWS: 42
THRESHOLD: 0.5
`)
	v, err := source.YAMLBytes(doc)
	require.NoError(t, err)

	m := v.(map[string]any)
	require.Equal(t, "total_row_name", m["ROW_NAMES"].(map[string]any)["TOTAL_ROW"])
	require.Equal(t, []any{"ROW_1", "ROW_2"}, m["PUBLICATION_ROW_ORDER"])
	// YAML integers fold into json.Number like the JSON driver produces
	require.Equal(t, json.Number("42"), m["MAX_ROWS"])
	require.Equal(t, 0.5, m["THRESHOLD"])
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("A: 1\n"), 0o644))

	v, err := source.YAMLFile(path)
	require.NoError(t, err)
	require.Equal(t, json.Number("1"), v.(map[string]any)["A"])
}
