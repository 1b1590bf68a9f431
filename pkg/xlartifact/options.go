// Package xlartifact extracts structured summaries from spreadsheet artifacts:
// sheet surveys, capped sheet content, schema fields and parameter tables.
package xlartifact

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
)

const (
	// DefaultMaxRows is the default row cap for tab content.
	DefaultMaxRows = 100
	// DefaultMaxCols is the default column cap for tab content.
	DefaultMaxCols = 50

	sampleRows = 5
	sampleCols = 10
)

// Tool identity reported in extraction metadata.
const (
	ToolName    = "excel_artifact_extractor"
	ToolVersion = "1.0"
)

// Options configures an Extractor.
type Options struct {
	// ArtifactsPath is the folder holding workbooks. Ignored when FS is set.
	ArtifactsPath string
	// FS is the filesystem workbooks are listed and read from.
	// If nil, the OS filesystem rooted at ArtifactsPath is used.
	FS billy.Filesystem
	// Logger receives diagnostics. If nil, logs are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options reading from the current directory.
func DefaultOptions() Options {
	return Options{
		ArtifactsPath: ".",
	}
}

// ContentOptions caps the grid returned by ExtractTabContent.
type ContentOptions struct {
	// MaxRows caps the number of rows. Values <= 0 select DefaultMaxRows.
	MaxRows int
	// MaxCols caps the number of columns. Values <= 0 select DefaultMaxCols.
	MaxCols int
}

// RowCap returns the effective row cap.
func (o ContentOptions) RowCap() int {
	if o.MaxRows > 0 {
		return o.MaxRows
	}
	return DefaultMaxRows
}

// ColCap returns the effective column cap.
func (o ContentOptions) ColCap() int {
	if o.MaxCols > 0 {
		return o.MaxCols
	}
	return DefaultMaxCols
}
