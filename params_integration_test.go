package typedparams_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tp "github.com/NHSDigital/typed-params"
	"github.com/NHSDigital/typed-params/source"
)

// End-to-end path: params file on disk -> source decode -> construct -> bind,
// the per-epoch reconfiguration flow this module exists for.
func TestIntegration_EpochParamsFromJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	epoch2023 := `{
		"ROW_NAMES": {"TOTAL_ROW": "All respondents", "QUESTION_ROW": "Question"},
		"PUBLICATION_ROW_ORDER": ["ROW_1", "ROW_2", "ROW_3"],
		"MAX_ROWS": 20,
		"THRESHOLD": 0.1
	}`
	epoch2024 := `{
		"ROW_NAMES": {"TOTAL_ROW": "All respondents (2024)", "QUESTION_ROW": "Question"},
		"PUBLICATION_ROW_ORDER": ["ROW_1"],
		"MAX_ROWS": 25,
		"THRESHOLD": 0.2,
		"FOOTNOTE": "methodology changed"
	}`
	p23 := filepath.Join(dir, "2023.json")
	p24 := filepath.Join(dir, "2024.json")
	require.NoError(t, os.WriteFile(p23, []byte(epoch2023), 0o644))
	require.NoError(t, os.WriteFile(p24, []byte(epoch2024), 0o644))

	c, err := tp.NewContainerFor[pubParams]()
	require.NoError(t, err)
	require.NoError(t, c.ReplaceFromFile(ctx, p23))
	require.Equal(t, "All respondents", c.Current().RowNames.TotalRow)
	require.Nil(t, c.Current().Footnote)

	require.NoError(t, c.ReplaceFromFile(ctx, p24))
	require.Equal(t, "All respondents (2024)", c.Current().RowNames.TotalRow)
	require.Equal(t, 25, c.Current().MaxRows)
	require.NotNil(t, c.Current().Footnote)
}

func TestIntegration_EpochParamsFromYAML(t *testing.T) {
	ctx := context.Background()
	doc := []byte(`
ROW_NAMES:
  TOTAL_ROW: All respondents
  QUESTION_ROW: Question
PUBLICATION_ROW_ORDER: [ROW_1, ROW_2]
MAX_ROWS: 20
THRESHOLD: 0.1
`)
	raw, err := source.YAMLBytes(doc)
	require.NoError(t, err)

	st := tp.MustFromStruct[pubParams]()
	p, err := tp.ConstructAs[pubParams](ctx, st, raw)
	require.NoError(t, err)
	require.Equal(t, []string{"ROW_1", "ROW_2"}, p.RowOrder)
	require.Equal(t, 20, p.MaxRows)
}
