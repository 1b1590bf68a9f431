package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
)

var (
	headingColor = color.New(color.Bold)
	nameColor    = color.New(color.FgCyan)
	detailColor  = color.New(color.FgHiBlack)
)

// WriteWorkbookList writes the workbook list as a bulleted list.
func WriteWorkbookList(w io.Writer, workbooks []string) error {
	if _, err := headingColor.Fprintln(w, "Available Excel Workbooks:"); err != nil {
		return err
	}
	for _, name := range workbooks {
		if _, err := fmt.Fprintf(w, "  - %s\n", nameColor.Sprint(name)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTabs writes one line per sheet: name, content type and dimensions.
func WriteTabs(w io.Writer, workbook string, tabs []models.TabInfo) error {
	if _, err := headingColor.Fprintf(w, "Tabs in %s:\n", workbook); err != nil {
		return err
	}
	for _, tab := range tabs {
		_, err := fmt.Fprintf(w, "  - %s (%s) - %s\n",
			nameColor.Sprint(tab.Name),
			tab.ContentType,
			detailColor.Sprintf("%dx%d", tab.Dimensions.Rows, tab.Dimensions.Columns))
		if err != nil {
			return err
		}
	}
	return nil
}
