package xlartifact

import (
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/parser"
)

// SheetOutcome is the result of schema inference on one sheet.
type SheetOutcome string

const (
	// SheetExtracted means a descriptor was built.
	SheetExtracted SheetOutcome = "extracted"
	// SheetEmpty means the sheet had no rows or no non-empty header cells.
	SheetEmpty SheetOutcome = "empty"
	// SheetFailed means reading the sheet failed.
	SheetFailed SheetOutcome = "failed"
)

// SchemaSheetResult is the per-sheet outcome of schema inference.
type SchemaSheetResult struct {
	Sheet      string
	Outcome    SheetOutcome
	Descriptor *models.SchemaDescriptor // set when Outcome is SheetExtracted
	Err        error                    // set when Outcome is SheetFailed
}

// Metadata returns the extraction metadata attached to schema documents.
func Metadata() models.ExtractionMetadata {
	return models.ExtractionMetadata{Tool: ToolName, Version: ToolVersion}
}

// InspectSchemaSheets runs schema inference on every schema-named sheet and
// reports each outcome. Only failing to open the workbook or list its sheets
// is an error.
func (e *Extractor) InspectSchemaSheets(workbook string) ([]SchemaSheetResult, error) {
	wb, err := e.openWorkbook(workbook)
	if err != nil {
		return nil, wrapError(OpSchema, workbook, "", err)
	}
	defer wb.Close()

	names, err := wb.SheetNames()
	if err != nil {
		return nil, NewExtractionError(OpSchema, workbook, "", err)
	}

	results := []SchemaSheetResult{}
	for _, name := range names {
		if !IsSchemaSheet(name) {
			continue
		}
		results = append(results, inspectSchemaSheet(wb, name))
	}
	return results, nil
}

// ExtractSchemaStructure builds schema descriptors for a workbook. Sheets that
// are empty or fail to read are listed in SkippedSheets instead.
func (e *Extractor) ExtractSchemaStructure(workbook string) (*models.SchemaStructure, error) {
	results, err := e.InspectSchemaSheets(workbook)
	if err != nil {
		return nil, err
	}

	structure := &models.SchemaStructure{
		Workbook:           workbook,
		Schemas:            []models.SchemaDescriptor{},
		ExtractionMetadata: Metadata(),
	}

	for _, result := range results {
		switch result.Outcome {
		case SheetExtracted:
			structure.Schemas = append(structure.Schemas, *result.Descriptor)
		case SheetEmpty:
			e.logger.Debug("schema sheet has no fields", "workbook", workbook, "sheet", result.Sheet)
			structure.SkippedSheets = append(structure.SkippedSheets, models.SkippedSheet{
				Name:   result.Sheet,
				Reason: string(SheetEmpty),
			})
		case SheetFailed:
			e.logger.Warn("skipping unreadable schema sheet", "workbook", workbook, "sheet", result.Sheet, "error", result.Err)
			structure.SkippedSheets = append(structure.SkippedSheets, models.SkippedSheet{
				Name:   result.Sheet,
				Reason: string(SheetFailed),
				Error:  result.Err.Error(),
			})
		}
	}

	return structure, nil
}

func inspectSchemaSheet(wb parser.Workbook, name string) SchemaSheetResult {
	result := SchemaSheetResult{Sheet: name}

	descriptor, err := schemaFromSheet(wb, name)
	switch {
	case err != nil:
		result.Outcome = SheetFailed
		result.Err = err
	case descriptor == nil:
		result.Outcome = SheetEmpty
	default:
		result.Outcome = SheetExtracted
		result.Descriptor = descriptor
	}
	return result
}

// schemaFromSheet reads field names from row 1. It returns nil when the sheet
// has no rows or no non-empty header cells.
func schemaFromSheet(wb parser.Workbook, name string) (*models.SchemaDescriptor, error) {
	sheet, err := wb.Sheet(name)
	if err != nil {
		return nil, err
	}

	rows, cols, err := sheet.Dimensions()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}

	fields := []models.SchemaField{}
	for col := 1; col <= cols; col++ {
		value, err := sheet.CellValue(1, col)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		fields = append(fields, models.SchemaField{Name: value, Column: col})
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return &models.SchemaDescriptor{
		Name:       name,
		Type:       Classify(name),
		Fields:     fields,
		Dimensions: models.Dimensions{Rows: rows, Columns: cols},
	}, nil
}
