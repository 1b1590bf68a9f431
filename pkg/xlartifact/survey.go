package xlartifact

import (
	"fmt"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/parser"
)

// ExtractTabs surveys every sheet of a workbook in declared order. Any read
// failure aborts the whole survey.
func (e *Extractor) ExtractTabs(workbook string) ([]models.TabInfo, error) {
	wb, err := e.openWorkbook(workbook)
	if err != nil {
		return nil, wrapError(OpTabs, workbook, "", err)
	}
	defer wb.Close()

	names, err := wb.SheetNames()
	if err != nil {
		return nil, NewExtractionError(OpTabs, workbook, "", err)
	}
	tabs := make([]models.TabInfo, 0, len(names))
	for _, name := range names {
		tab, err := surveySheet(wb, name)
		if err != nil {
			return nil, NewExtractionError(OpTabs, workbook, "", fmt.Errorf("sheet %q: %w", name, err))
		}
		tabs = append(tabs, tab)
	}

	e.logger.Debug("surveyed workbook", "workbook", workbook, "sheets", len(tabs))
	return tabs, nil
}

func surveySheet(wb parser.Workbook, name string) (models.TabInfo, error) {
	sheet, err := wb.Sheet(name)
	if err != nil {
		return models.TabInfo{}, err
	}

	rows, cols, err := sheet.Dimensions()
	if err != nil {
		return models.TabInfo{}, err
	}

	sample, err := sampleSheet(sheet, min(sampleRows, rows), min(sampleCols, cols))
	if err != nil {
		return models.TabInfo{}, err
	}

	return models.TabInfo{
		Name:        name,
		ContentType: Classify(name),
		Dimensions:  models.Dimensions{Rows: rows, Columns: cols},
		SampleData:  sample,
	}, nil
}

// sampleSheet reads the top-left rows x cols block cell by cell.
func sampleSheet(sheet parser.Sheet, rows, cols int) ([][]string, error) {
	sample := make([][]string, 0, rows)
	for r := 1; r <= rows; r++ {
		row := make([]string, 0, cols)
		for c := 1; c <= cols; c++ {
			value, err := sheet.CellValue(r, c)
			if err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		sample = append(sample, row)
	}
	return sample, nil
}
