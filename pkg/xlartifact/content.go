package xlartifact

import (
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/parser"
)

// ExtractTabContent returns a sheet as a rectangular string grid capped by opts.
// No row is treated as a header; Headers is a copy of the first row.
func (e *Extractor) ExtractTabContent(workbook, tab string, opts ContentOptions) (*models.TabContent, error) {
	wb, err := e.openWorkbook(workbook)
	if err != nil {
		return nil, wrapError(OpContent, workbook, tab, err)
	}
	defer wb.Close()

	sheet, err := openSheet(wb, workbook, tab)
	if err != nil {
		return nil, wrapError(OpContent, workbook, tab, err)
	}

	table, err := parser.ReadTable(sheet, parser.NoHeader, opts.RowCap())
	if err != nil {
		return nil, NewExtractionError(OpContent, workbook, tab, err)
	}

	content := parser.Rectangular(table.Rows, min(table.Width(), opts.ColCap()))

	headers := []string{}
	columns := 0
	if len(content) > 0 {
		headers = append(headers, content[0]...)
		columns = len(content[0])
	}

	e.logger.Debug("read tab content", "workbook", workbook, "tab", tab, "rows", len(content), "columns", columns)
	return &models.TabContent{
		Workbook:    workbook,
		TabName:     tab,
		Dimensions:  models.Dimensions{Rows: len(content), Columns: columns},
		Headers:     headers,
		Content:     content,
		ContentType: Classify(tab),
	}, nil
}
