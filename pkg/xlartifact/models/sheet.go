package models

// ContentType is a heuristic label describing the presumed purpose of a sheet.
type ContentType string

const (
	// ContentGuardianSchema marks sheets that describe a schema (schema, PDD, MR, monitoring).
	ContentGuardianSchema ContentType = "guardian-schema"
	// ContentValidationData marks test and calculation sheets.
	ContentValidationData ContentType = "validation-data"
	// ContentParameterData marks parameter, input and output sheets.
	ContentParameterData ContentType = "parameter-data"
	// ContentToolIntegration marks tool and CDM tool sheets.
	ContentToolIntegration ContentType = "tool-integration"
	// ContentGeneralData is the fallback label.
	ContentGeneralData ContentType = "general-data"
)

// Dimensions is a row and column count.
type Dimensions struct {
	// Rows is the number of rows.
	Rows int `json:"rows" yaml:"rows"`
	// Columns is the number of columns.
	Columns int `json:"columns" yaml:"columns"`
}

// TabInfo summarizes a single sheet of a workbook.
type TabInfo struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// ContentType is the heuristic classification of the sheet.
	ContentType ContentType `json:"content_type" yaml:"content_type"`
	// Dimensions are the bounds reported by the workbook reader.
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	// SampleData holds up to the first 5 rows by 10 columns as strings.
	SampleData [][]string `json:"sample_data" yaml:"sample_data"`
}

// TabContent is the capped, rectangular content of a single sheet.
type TabContent struct {
	// Workbook is the workbook file name.
	Workbook string `json:"workbook" yaml:"workbook"`
	// TabName is the sheet name.
	TabName string `json:"tab_name" yaml:"tab_name"`
	// Dimensions are the bounds of Content after capping.
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	// Headers is the first row of Content, or empty.
	Headers []string `json:"headers" yaml:"headers"`
	// Content is the row-major grid; every row has the same length.
	Content [][]string `json:"content" yaml:"content"`
	// ContentType is the classification of the sheet name.
	ContentType ContentType `json:"content_type" yaml:"content_type"`
}
