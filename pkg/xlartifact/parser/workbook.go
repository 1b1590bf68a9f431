package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrSheetNotFound indicates that a requested sheet name does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is an opened workbook. Close releases the decoder and the underlying file.
type Workbook interface {
	// SheetNames returns sheet names in the workbook's declared order. It fails
	// when any sheet cannot be decoded.
	SheetNames() ([]string, error)
	// Sheet returns the sheet with the exact given name, or ErrSheetNotFound.
	Sheet(name string) (Sheet, error)
	// Close releases all resources held by the workbook.
	Close() error
}

// Sheet gives value-only access to one sheet. Row and column indices are 1-based.
type Sheet interface {
	// Name is the sheet name.
	Name() string
	// Dimensions returns the maximum populated row and column as reported by the decoder.
	Dimensions() (rows, cols int, err error)
	// CellValue returns the string form of a cell; absent cells are "".
	CellValue(row, col int) (string, error)
	// Rows returns up to limit rows (all rows when limit <= 0). Rows are ragged:
	// trailing empty cells and trailing empty rows are dropped.
	Rows(limit int) ([][]string, error)
}

// Format identifies the decoder used for a workbook file.
type Format string

const (
	// FormatXLSX covers Office Open XML workbooks (.xlsx, .xlsm).
	FormatXLSX Format = "xlsx"
	// FormatXLS covers legacy BIFF workbooks (.xls).
	FormatXLS Format = "xls"
)

// DetectFormat picks the decoder from the file extension.
func DetectFormat(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".xls") {
		return FormatXLS
	}
	return FormatXLSX
}

// Open decodes a workbook from f in value-only mode. Ownership of f passes to the
// returned Workbook; on error f is closed before returning.
func Open(f io.ReadSeekCloser, name string) (Workbook, error) {
	var (
		wb  Workbook
		err error
	)
	switch DetectFormat(name) {
	case FormatXLS:
		wb, err = openXLS(f)
	default:
		wb, err = openXLSX(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return wb, nil
}

func sheetNotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrSheetNotFound, name)
}
