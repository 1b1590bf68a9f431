package xlartifact

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// Kinds of missing resources reported by NotFoundError.
const (
	KindArtifactsFolder = "artifacts folder"
	KindWorkbook        = "workbook"
	KindTab             = "tab"
)

// NotFoundError indicates a missing artifacts folder, workbook or tab.
type NotFoundError struct {
	Kind string
	Name string
	// Workbook is set for missing tabs.
	Workbook string
}

func (e *NotFoundError) Error() string {
	if e.Workbook != "" {
		return fmt.Sprintf("%s not found: %s in %s", e.Kind, e.Name, e.Workbook)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Extraction operations named in ExtractionError messages.
const (
	OpTabs       = "tabs"
	OpContent    = "content"
	OpSchema     = "schema structure"
	OpParameters = "parameters"
)

// ExtractionError represents a read or decode failure during an operation.
type ExtractionError struct {
	Op       string
	Workbook string
	Tab      string // empty for workbook-wide operations
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Tab != "" {
		return fmt.Sprintf("error extracting %s from %s in %s: %v", e.Op, e.Tab, e.Workbook, e.Err)
	}
	return fmt.Sprintf("error extracting %s from %s: %v", e.Op, e.Workbook, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(op, workbook, tab string, err error) *ExtractionError {
	return &ExtractionError{
		Op:       op,
		Workbook: workbook,
		Tab:      tab,
		Err:      err,
	}
}

// wrapError passes NotFoundError through unchanged and wraps anything else.
func wrapError(op, workbook, tab string, err error) error {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	return NewExtractionError(op, workbook, tab, err)
}
