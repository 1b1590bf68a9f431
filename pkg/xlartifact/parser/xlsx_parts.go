package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

const defaultWorkbookPart = "xl/workbook.xml"

// sheetRootElements are the document elements a sheet part may carry.
var sheetRootElements = map[string]bool{
	"worksheet":   true,
	"chartsheet":  true,
	"dialogsheet": true,
	"macrosheet":  true,
}

type xmlRelationships struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlWorkbookSheets struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// sheetParts maps sheet names to their XML parts inside the package.
type sheetParts struct {
	zr    *zip.Reader
	paths map[string]string
}

// readSheetParts resolves every sheet's part path from the package
// relationships, the same way the workbook decoder locates them.
func readSheetParts(ra io.ReaderAt, size int64) (*sheetParts, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}

	workbookPart := defaultWorkbookPart
	var rootRels xmlRelationships
	if err := decodePart(zr, "_rels/.rels", &rootRels); err == nil {
		for _, rel := range rootRels.Relationships {
			if strings.HasSuffix(rel.Type, "/officeDocument") {
				workbookPart = resolvePartPath("", rel.Target)
				break
			}
		}
	}

	var wb xmlWorkbookSheets
	if err := decodePart(zr, workbookPart, &wb); err != nil {
		return nil, err
	}

	var rels xmlRelationships
	dir := path.Dir(workbookPart)
	if err := decodePart(zr, path.Join(dir, "_rels", path.Base(workbookPart)+".rels"), &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		targets[rel.ID] = resolvePartPath(dir, rel.Target)
	}

	paths := make(map[string]string, len(wb.Sheets))
	for _, s := range wb.Sheets {
		if target, ok := targets[s.RID]; ok {
			paths[s.Name] = target
		}
	}
	return &sheetParts{zr: zr, paths: paths}, nil
}

// check verifies that the named sheet's part is an XML sheet document.
// It is a no-op when the package layout could not be read.
func (p *sheetParts) check(sheet string) error {
	if p == nil {
		return nil
	}
	part, ok := p.paths[sheet]
	if !ok {
		return nil
	}

	f, err := p.zr.Open(part)
	if err != nil {
		return fmt.Errorf("worksheet part %s: %w", part, err)
	}
	defer f.Close()

	d := newPartDecoder(f)
	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("worksheet part %s: no document element", part)
			}
			return fmt.Errorf("worksheet part %s: %w", part, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !sheetRootElements[t.Name.Local] {
				return fmt.Errorf("worksheet part %s: unexpected document element <%s>", part, t.Name.Local)
			}
			return nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("worksheet part %s: text before document element", part)
			}
		}
	}
}

func decodePart(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return newPartDecoder(f).Decode(v)
}

func newPartDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

func resolvePartPath(dir, target string) string {
	target = strings.ReplaceAll(target, "\\", "/")
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return strings.TrimPrefix(path.Join(dir, target), "/")
}
