package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panels.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParsePanelDataBareValues(t *testing.T) {
	path := writeCSV(t, "12.5\n8\n-3.25\n")

	series, err := ParsePanelData(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 8, -3.25}, series.Values)
	assert.Equal(t, 3, series.NumValues)
	assert.Empty(t, series.IDs)
	assert.Empty(t, series.ParseErrors)
}

func TestParsePanelDataIDValuePairs(t *testing.T) {
	path := writeCSV(t, "panel_id,value\nP-01-01,4.2\nP-02-01,6.1\n")

	series, err := ParsePanelData(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.2, 6.1}, series.Values, "header row is skipped")
	assert.Equal(t, []string{"P-01-01", "P-02-01"}, series.IDs)
	assert.Empty(t, series.ParseErrors)
}

func TestParsePanelDataSkipsBadRowsWithWarnings(t *testing.T) {
	path := writeCSV(t, "1.5\nnot-a-number\n\n2.5\n")

	series, err := ParsePanelData(path)
	require.NoError(t, err, "bad rows never fail the parse")
	assert.Equal(t, []float64{1.5, 2.5}, series.Values)
	require.Len(t, series.ParseErrors, 1)
	assert.Contains(t, series.ParseErrors[0], "not-a-number")
}

func TestParsePanelDataEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	series, err := ParsePanelData(path)
	require.NoError(t, err)
	assert.Zero(t, series.NumValues)
	require.NotEmpty(t, series.ParseErrors)
	assert.Contains(t, series.ParseErrors[0], "no panel values")
}

func TestParsePanelDataMissingFile(t *testing.T) {
	_, err := ParsePanelData(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
