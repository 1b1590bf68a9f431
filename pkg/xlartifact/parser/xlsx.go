package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	f     *excelize.File
	parts *sheetParts
	file  io.Closer
}

func openXLSX(r io.ReadSeekCloser) (*xlsxWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}

	wb := &xlsxWorkbook{f: f, file: r}
	// Sheet parts are checked against the raw package when the file allows
	// random access; encrypted workbooks are not zip packages and skip it.
	if ra, ok := r.(io.ReaderAt); ok {
		if size, err := r.Seek(0, io.SeekEnd); err == nil {
			wb.parts, _ = readSheetParts(ra, size)
		}
	}
	return wb, nil
}

func (w *xlsxWorkbook) SheetNames() ([]string, error) {
	return w.f.GetSheetList(), nil
}

func (w *xlsxWorkbook) Sheet(name string) (Sheet, error) {
	// excelize matches sheet names case-insensitively; lookups here are exact.
	for _, sheetName := range w.f.GetSheetList() {
		if sheetName != name {
			continue
		}
		if err := w.parts.check(name); err != nil {
			return nil, err
		}
		return &xlsxSheet{f: w.f, name: name}, nil
	}
	return nil, sheetNotFound(name)
}

func (w *xlsxWorkbook) Close() error {
	return errors.Join(w.f.Close(), w.file.Close())
}

type xlsxSheet struct {
	f    *excelize.File
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

// Dimensions reads the sheet's <dimension> range. When the range is missing or
// collapsed to a single cell, the extent of the row data is used instead.
func (s *xlsxSheet) Dimensions() (int, int, error) {
	ref, err := s.f.GetSheetDimension(s.name)
	if err != nil {
		return 0, 0, err
	}
	if rows, cols, ok := parseDimensionRef(ref); ok {
		return rows, cols, nil
	}

	data, err := s.Rows(0)
	if err != nil {
		return 0, 0, err
	}
	rows, cols := extent(data)
	return rows, cols, nil
}

func (s *xlsxSheet) CellValue(row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return s.f.GetCellValue(s.name, cell)
}

func (s *xlsxSheet) Rows(limit int) ([][]string, error) {
	rows, err := s.f.Rows(s.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		if limit > 0 && len(result) >= limit {
			break
		}
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		result = append(result, trimRow(cols))
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return trimTrailingRows(result), nil
}

// parseDimensionRef parses a range like A1:D10 (or $A$1:$D$10) into its
// bottom-right row and column.
func parseDimensionRef(ref string) (rows, cols int, ok bool) {
	parts := strings.Split(strings.ReplaceAll(ref, "$", ""), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	col, row, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
