package xlartifact

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
)

func TestExtractTabs(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "project.xlsx",
		fixtureSheet{name: "Schema_Test", rows: [][]any{{"Field A", "Field B", "Field C"}, {"x"}}},
		fixtureSheet{name: "Parameters", rows: [][]any{{"Parameter", "Unit"}, {"temp", "C"}, {"flow", 12.5}}},
		fixtureSheet{name: "Notes"},
	)

	ex := newTestExtractor(t, dir)
	tabs, err := ex.ExtractTabs("project.xlsx")
	require.NoError(t, err)
	require.Len(t, tabs, 3)

	assert.Equal(t, "Schema_Test", tabs[0].Name)
	assert.Equal(t, models.ContentGuardianSchema, tabs[0].ContentType)
	assert.Equal(t, models.Dimensions{Rows: 2, Columns: 3}, tabs[0].Dimensions)
	assert.Equal(t, [][]string{{"Field A", "Field B", "Field C"}, {"x", "", ""}}, tabs[0].SampleData)

	assert.Equal(t, "Parameters", tabs[1].Name)
	assert.Equal(t, models.ContentParameterData, tabs[1].ContentType)
	assert.Equal(t, models.Dimensions{Rows: 3, Columns: 2}, tabs[1].Dimensions)
	assert.Equal(t, "12.5", tabs[1].SampleData[2][1])

	assert.Equal(t, "Notes", tabs[2].Name)
	assert.Equal(t, models.ContentGeneralData, tabs[2].ContentType)
	assert.Equal(t, models.Dimensions{}, tabs[2].Dimensions)
	assert.Empty(t, tabs[2].SampleData)
}

func TestExtractTabsUsesReportedDimensions(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "wide.xlsx", fixtureSheet{
		name:      "Data",
		rows:      [][]any{{"a", "b"}, {"c", "d"}},
		dimension: "A1:L20",
	})

	ex := newTestExtractor(t, dir)
	tabs, err := ex.ExtractTabs("wide.xlsx")
	require.NoError(t, err)
	require.Len(t, tabs, 1)

	assert.Equal(t, models.Dimensions{Rows: 20, Columns: 12}, tabs[0].Dimensions)

	// the sample is capped at 5x10 and padded past the data
	sample := tabs[0].SampleData
	require.Len(t, sample, 5)
	for _, row := range sample {
		assert.Len(t, row, 10)
	}
	assert.Equal(t, "d", sample[1][1])
	assert.Equal(t, "", sample[4][9])
}

func TestExtractTabsSampleCap(t *testing.T) {
	rows := make([][]any, 8)
	for i := range rows {
		row := make([]any, 12)
		for j := range row {
			row[j] = i*100 + j
		}
		rows[i] = row
	}

	dir := t.TempDir()
	writeWorkbook(t, dir, "big.xlsx", fixtureSheet{name: "Data", rows: rows})

	ex := newTestExtractor(t, dir)
	tabs, err := ex.ExtractTabs("big.xlsx")
	require.NoError(t, err)

	assert.Equal(t, models.Dimensions{Rows: 8, Columns: 12}, tabs[0].Dimensions)
	require.Len(t, tabs[0].SampleData, 5)
	assert.Len(t, tabs[0].SampleData[0], 10)
	assert.Equal(t, "409", tabs[0].SampleData[4][9])
}

func TestExtractTabsMissingWorkbook(t *testing.T) {
	ex := newTestExtractor(t, t.TempDir())

	_, err := ex.ExtractTabs("absent.xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExtractTabsCorruptWorkbook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("not a workbook"), 0o644))

	ex := newTestExtractor(t, dir)
	_, err := ex.ExtractTabs("broken.xlsx")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "broken.xlsx", extractionErr.Workbook)
	assert.Equal(t, OpTabs, extractionErr.Op)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, strings.Contains(err.Error(), "broken.xlsx"))
}

func TestExtractTabsCorruptSheet(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "partial.xlsx",
		fixtureSheet{name: "Good", rows: [][]any{{"a"}}},
		fixtureSheet{name: "Bad", rows: [][]any{{"b"}}},
	)
	corruptSheet(t, path, "xl/worksheets/sheet2.xml")

	ex := newTestExtractor(t, dir)
	tabs, err := ex.ExtractTabs("partial.xlsx")
	require.Error(t, err)
	assert.Nil(t, tabs)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "partial.xlsx", extractionErr.Workbook)
	assert.Contains(t, err.Error(), "Bad")
}

func TestExtractTabsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "project.xlsx",
		fixtureSheet{name: "Inputs", rows: [][]any{{"k", "v"}, {"a", 1}}},
	)
	ex := newTestExtractor(t, dir)

	first, err := ex.ExtractTabs("project.xlsx")
	require.NoError(t, err)
	second, err := ex.ExtractTabs("project.xlsx")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
