package parser

import "strconv"

// HeaderMode selects how ReadTable labels columns.
type HeaderMode int

const (
	// NoHeader keeps every row as data and labels columns by position ("0", "1", ...).
	NoHeader HeaderMode = iota
	// FirstRowHeader uses the first row as column labels.
	FirstRowHeader
)

// Table is a rectangular view of a sheet.
type Table struct {
	// Columns holds one label per column.
	Columns []string
	// Rows holds the data rows, each len(Columns) wide.
	Rows [][]string
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Columns)
}

// ReadTable reads a sheet as a table. rowCap bounds the number of data rows
// (no bound when rowCap <= 0); a header row does not count against it.
func ReadTable(s Sheet, mode HeaderMode, rowCap int) (*Table, error) {
	limit := rowCap
	if limit > 0 && mode == FirstRowHeader {
		limit++
	}

	rows, err := s.Rows(limit)
	if err != nil {
		return nil, err
	}

	grid := Rectangular(rows, Width(rows))
	table := &Table{Columns: []string{}, Rows: [][]string{}}

	switch mode {
	case FirstRowHeader:
		if len(grid) > 0 {
			table.Columns = grid[0]
			table.Rows = grid[1:]
		}
	default:
		if len(grid) > 0 {
			table.Columns = positionalLabels(len(grid[0]))
		}
		table.Rows = grid
	}

	return table, nil
}

func positionalLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}
