package xlartifact

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixtureSheet describes one sheet of a generated test workbook.
type fixtureSheet struct {
	name      string
	rows      [][]any
	dimension string // written with SetSheetDimension when set
}

// writeWorkbook saves an xlsx file with the given sheets, in order, into dir.
func writeWorkbook(t *testing.T, dir, name string, sheets ...fixtureSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
		if s.dimension != "" {
			require.NoError(t, f.SetSheetDimension(s.name, s.dimension))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// corruptSheet replaces the XML part of a saved workbook's sheet with unparsable data.
func corruptSheet(t *testing.T, path, part string) {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, file := range zr.File {
		w, err := zw.Create(file.Name)
		require.NoError(t, err)
		if file.Name == part {
			_, err = w.Write([]byte("not xml <<<"))
			require.NoError(t, err)
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		_, err = io.Copy(w, rc)
		rc.Close()
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, zr.Close())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func newTestExtractor(t *testing.T, dir string) *Extractor {
	t.Helper()
	ex, err := New(Options{ArtifactsPath: dir})
	require.NoError(t, err)
	return ex
}
