package xlartifact

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/parser"
)

// Extractor reads workbooks from an artifacts folder. Every operation opens,
// reads and closes its workbook; nothing is cached between calls.
type Extractor struct {
	root   string
	fs     billy.Filesystem
	logger *slog.Logger
}

// New creates an Extractor. It fails with a NotFoundError when ArtifactsPath
// does not exist and no FS is supplied.
func New(opts Options) (*Extractor, error) {
	root := opts.ArtifactsPath
	if root == "" {
		root = "."
	}

	filesystem := opts.FS
	if filesystem == nil {
		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &NotFoundError{Kind: KindArtifactsFolder, Name: root}
			}
			return nil, fmt.Errorf("stat artifacts folder: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("artifacts folder %s is not a directory", root)
		}
		filesystem = osfs.New(root, osfs.WithBoundOS())
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Extractor{
		root:   root,
		fs:     filesystem,
		logger: logger,
	}, nil
}

// ArtifactsPath returns the folder the extractor was configured with.
func (e *Extractor) ArtifactsPath() string {
	return e.root
}

// openWorkbook opens a workbook in value-only mode. The caller must Close it.
func (e *Extractor) openWorkbook(name string) (parser.Workbook, error) {
	info, err := e.fs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Kind: KindWorkbook, Name: name}
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, &NotFoundError{Kind: KindWorkbook, Name: name}
	}

	f, err := e.fs.Open(name)
	if err != nil {
		return nil, err
	}

	wb, err := parser.Open(f, name)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("opened workbook", "workbook", name, "format", parser.DetectFormat(name))
	return wb, nil
}

// openSheet looks up a tab, reporting a missing one as a NotFoundError.
func openSheet(wb parser.Workbook, workbook, tab string) (parser.Sheet, error) {
	sheet, err := wb.Sheet(tab)
	if err != nil {
		if errors.Is(err, parser.ErrSheetNotFound) {
			return nil, &NotFoundError{Kind: KindTab, Name: tab, Workbook: workbook}
		}
		return nil, err
	}
	return sheet, nil
}
