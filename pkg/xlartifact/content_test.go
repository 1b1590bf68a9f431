package xlartifact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
)

func TestExtractTabContent(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "case.xlsx", fixtureSheet{
		name: "Test Data",
		rows: [][]any{
			{"Year", "Baseline", "Project"},
			{2024, 10.5, true},
			{2025},
		},
	})

	ex := newTestExtractor(t, dir)
	content, err := ex.ExtractTabContent("case.xlsx", "Test Data", ContentOptions{})
	require.NoError(t, err)

	assert.Equal(t, "case.xlsx", content.Workbook)
	assert.Equal(t, "Test Data", content.TabName)
	assert.Equal(t, models.ContentValidationData, content.ContentType)
	assert.Equal(t, models.Dimensions{Rows: 3, Columns: 3}, content.Dimensions)
	assert.Equal(t, []string{"Year", "Baseline", "Project"}, content.Headers)
	assert.Equal(t, [][]string{
		{"Year", "Baseline", "Project"},
		{"2024", "10.5", "TRUE"},
		{"2025", "", ""},
	}, content.Content)
}

func TestExtractTabContentCaps(t *testing.T) {
	rows := make([][]any, 30)
	for i := range rows {
		row := make([]any, 20)
		for j := range row {
			row[j] = "v"
		}
		rows[i] = row
	}

	dir := t.TempDir()
	writeWorkbook(t, dir, "big.xlsx", fixtureSheet{name: "Data", rows: rows})
	ex := newTestExtractor(t, dir)

	tests := []struct {
		name     string
		opts     ContentOptions
		wantRows int
		wantCols int
	}{
		{"defaults exceed data", ContentOptions{}, 30, 20},
		{"row cap", ContentOptions{MaxRows: 7}, 7, 20},
		{"column cap", ContentOptions{MaxCols: 4}, 30, 4},
		{"both caps", ContentOptions{MaxRows: 2, MaxCols: 3}, 2, 3},
		{"non-positive caps select defaults", ContentOptions{MaxRows: -1, MaxCols: 0}, 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := ex.ExtractTabContent("big.xlsx", "Data", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, models.Dimensions{Rows: tt.wantRows, Columns: tt.wantCols}, content.Dimensions)
			require.Len(t, content.Content, tt.wantRows)
			for _, row := range content.Content {
				assert.Len(t, row, tt.wantCols)
			}
			assert.Len(t, content.Headers, tt.wantCols)
		})
	}
}

func TestExtractTabContentRectangular(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "ragged.xlsx", fixtureSheet{
		name: "Data",
		rows: [][]any{{"a"}, {"b", "c", "d", "e"}, {}, {"f", "g"}},
	})

	ex := newTestExtractor(t, dir)
	content, err := ex.ExtractTabContent("ragged.xlsx", "Data", ContentOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.Dimensions{Rows: 4, Columns: 4}, content.Dimensions)
	for _, row := range content.Content {
		assert.Len(t, row, 4)
	}
	assert.Equal(t, []string{"", "", "", ""}, content.Content[2])
}

func TestExtractTabContentEmptySheet(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "empty.xlsx", fixtureSheet{name: "Blank"})

	ex := newTestExtractor(t, dir)
	content, err := ex.ExtractTabContent("empty.xlsx", "Blank", ContentOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.Dimensions{Rows: 0, Columns: 0}, content.Dimensions)
	assert.NotNil(t, content.Headers)
	assert.Empty(t, content.Headers)
	assert.Empty(t, content.Content)
}

func TestExtractTabContentNotFound(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "case.xlsx", fixtureSheet{name: "Data", rows: [][]any{{"a"}}})
	ex := newTestExtractor(t, dir)

	_, err := ex.ExtractTabContent("missing.xlsx", "Data", ContentOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = ex.ExtractTabContent("case.xlsx", "Missing", ContentOptions{})
	require.Error(t, err)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, KindTab, notFound.Kind)
	assert.Equal(t, "case.xlsx", notFound.Workbook)

	// tab lookup is exact
	_, err = ex.ExtractTabContent("case.xlsx", "data", ContentOptions{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExtractTabContentCorruptSheet(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "partial.xlsx",
		fixtureSheet{name: "Good", rows: [][]any{{"a"}}},
		fixtureSheet{name: "Bad", rows: [][]any{{"b"}}},
	)
	corruptSheet(t, path, "xl/worksheets/sheet2.xml")
	ex := newTestExtractor(t, dir)

	content, err := ex.ExtractTabContent("partial.xlsx", "Bad", ContentOptions{})
	require.Error(t, err)
	assert.Nil(t, content)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, OpContent, extractionErr.Op)
	assert.Equal(t, "partial.xlsx", extractionErr.Workbook)
	assert.Equal(t, "Bad", extractionErr.Tab)
	assert.False(t, errors.Is(err, ErrNotFound))

	content, err = ex.ExtractTabContent("partial.xlsx", "Good", ContentOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}}, content.Content)
}
