package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
)

const xlsCharset = "utf-8"

type xlsWorkbook struct {
	wb   *xls.WorkBook
	file io.Closer
}

func openXLS(r io.ReadSeekCloser) (wb *xlsWorkbook, err error) {
	err = guard(func() error {
		book, err := xls.OpenReader(r, xlsCharset)
		if err != nil {
			return err
		}
		wb = &xlsWorkbook{wb: book, file: r}
		return nil
	})
	return wb, err
}

func (w *xlsWorkbook) SheetNames() ([]string, error) {
	names := make([]string, 0, w.wb.NumSheets())
	for i := 0; i < w.wb.NumSheets(); i++ {
		ws, err := w.sheetAt(i)
		if err != nil {
			return nil, fmt.Errorf("sheet %d: %w", i, err)
		}
		names = append(names, ws.Name)
	}
	return names, nil
}

func (w *xlsWorkbook) Sheet(name string) (Sheet, error) {
	for i := 0; i < w.wb.NumSheets(); i++ {
		ws, err := w.sheetAt(i)
		if err != nil {
			return nil, err
		}
		if ws.Name == name {
			return &xlsSheet{ws: ws}, nil
		}
	}
	return nil, sheetNotFound(name)
}

// sheetAt decodes the i-th sheet on first access.
func (w *xlsWorkbook) sheetAt(i int) (ws *xls.WorkSheet, err error) {
	err = guard(func() error {
		ws = w.wb.GetSheet(i)
		if ws == nil {
			return fmt.Errorf("sheet %d missing from workbook", i)
		}
		return nil
	})
	return ws, err
}

func (w *xlsWorkbook) Close() error {
	return w.file.Close()
}

type xlsSheet struct {
	ws *xls.WorkSheet
}

func (s *xlsSheet) Name() string { return s.ws.Name }

// Dimensions uses the sheet's last row index and the widest ROW record.
func (s *xlsSheet) Dimensions() (rows, cols int, err error) {
	err = guard(func() error {
		for i := 0; i <= int(s.ws.MaxRow); i++ {
			row := s.row(i)
			if row == nil {
				continue
			}
			rows = i + 1
			// BIFF stores the last column as one past the final cell.
			if n := row.LastCol(); n > cols {
				cols = n
			}
		}
		return nil
	})
	return rows, cols, err
}

func (s *xlsSheet) CellValue(row, col int) (value string, err error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	err = guard(func() error {
		if r := s.row(row - 1); r != nil {
			value = r.Col(col - 1)
		}
		return nil
	})
	return value, err
}

func (s *xlsSheet) Rows(limit int) (result [][]string, err error) {
	err = guard(func() error {
		for i := 0; i <= int(s.ws.MaxRow); i++ {
			if limit > 0 && len(result) >= limit {
				break
			}
			row := s.row(i)
			if row == nil {
				result = append(result, []string{})
				continue
			}
			cells := make([]string, row.LastCol())
			for j := range cells {
				cells[j] = row.Col(j)
			}
			result = append(result, trimRow(cells))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trimTrailingRows(result), nil
}

// row returns the i-th (0-based) row, or nil when the sheet has no record for
// it. The decoder dereferences missing rows, so that panic is absorbed here.
func (s *xlsSheet) row(i int) (row *xls.Row) {
	if i < 0 || i > int(s.ws.MaxRow) {
		return nil
	}
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return s.ws.Row(i)
}

// guard converts a decoder panic on malformed BIFF records into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls data: %v", r)
		}
	}()
	return fn()
}
