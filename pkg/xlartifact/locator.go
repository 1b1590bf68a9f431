package xlartifact

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// workbookExtensions is the set of accepted spreadsheet extensions (lower case).
var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".xlsm": true,
}

// IsWorkbookFile reports whether name carries an accepted extension, ignoring case.
func IsWorkbookFile(name string) bool {
	return workbookExtensions[strings.ToLower(filepath.Ext(name))]
}

// ListWorkbooks returns the sorted names of workbook files directly inside the
// artifacts folder. Subdirectories are neither listed nor searched.
func (e *Extractor) ListWorkbooks() ([]string, error) {
	entries, err := e.fs.ReadDir(".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Kind: KindArtifactsFolder, Name: e.root}
		}
		return nil, err
	}

	workbooks := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !IsWorkbookFile(entry.Name()) {
			continue
		}
		workbooks = append(workbooks, entry.Name())
	}
	sort.Strings(workbooks)

	e.logger.Debug("listed workbooks", "folder", e.root, "count", len(workbooks))
	return workbooks, nil
}
