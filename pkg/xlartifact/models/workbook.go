// Package models defines the documents produced by workbook extraction.
//
// Every cell value is carried as a string; numeric and date typing does not
// survive extraction.
package models

// ExtractionMetadata identifies the tool that produced a document.
type ExtractionMetadata struct {
	// Tool is the extractor name.
	Tool string `json:"tool" yaml:"tool"`
	// Version is the extractor version.
	Version string `json:"version" yaml:"version"`
}

// SchemaField is a named field read from a schema sheet's first row.
type SchemaField struct {
	// Name is the header cell value.
	Name string `json:"name" yaml:"name"`
	// Column is the 1-based column index.
	Column int `json:"column" yaml:"column"`
}

// SchemaDescriptor is the inferred structure of a schema sheet.
type SchemaDescriptor struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Type is always ContentGuardianSchema.
	Type ContentType `json:"type" yaml:"type"`
	// Fields lists the non-empty first-row cells, left to right.
	Fields []SchemaField `json:"fields" yaml:"fields"`
	// Dimensions are the bounds reported by the workbook reader.
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
}

// SkippedSheet records a schema sheet that produced no descriptor.
type SkippedSheet struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Reason is "empty" or "failed".
	Reason string `json:"reason" yaml:"reason"`
	// Error is the failure message for failed sheets.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SchemaStructure is the schema inference result for a workbook.
type SchemaStructure struct {
	// Workbook is the workbook file name.
	Workbook string `json:"workbook" yaml:"workbook"`
	// Schemas lists descriptors in sheet declaration order.
	Schemas []SchemaDescriptor `json:"schemas" yaml:"schemas"`
	// ExtractionMetadata identifies the extractor.
	ExtractionMetadata ExtractionMetadata `json:"extraction_metadata" yaml:"extraction_metadata"`
	// SkippedSheets lists schema sheets that were empty or failed to read.
	SkippedSheets []SkippedSheet `json:"skipped_sheets,omitempty" yaml:"skipped_sheets,omitempty"`
}
