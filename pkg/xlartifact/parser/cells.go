// Package parser provides value-only access to workbook files and their sheets.
package parser

// Rectangular pads or truncates every row to width. Missing cells become "".
// The result never aliases the input rows.
func Rectangular(rows [][]string, width int) [][]string {
	if width < 0 {
		width = 0
	}
	result := make([][]string, len(rows))
	for i, row := range rows {
		out := make([]string, width)
		copy(out, row)
		result[i] = out
	}
	return result
}

// Width returns the length of the longest row.
func Width(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// extent returns the populated row and column count of a ragged grid.
func extent(rows [][]string) (int, int) {
	_, maxRow, _, maxCol := findDataBounds(rows)
	return maxRow + 1, maxCol + 1
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the grid holds no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// trimRow drops trailing empty cells. It never returns nil.
func trimRow(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	if end == 0 {
		return []string{}
	}
	return row[:end]
}

// trimTrailingRows drops empty rows after the last row holding data.
func trimTrailingRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
