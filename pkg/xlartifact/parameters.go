package xlartifact

import (
	"strings"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/parser"
)

// parameterRule lists the label substrings recognized for one attribute.
type parameterRule struct {
	attribute models.ParameterAttribute
	patterns  []string
}

// parameterTaxonomy is ordered: a column is bound to the first attribute in
// this list that it matches and that is still unbound.
var parameterTaxonomy = []parameterRule{
	{models.AttrName, []string{"parameter", "param", "name", "variable", "field"}},
	{models.AttrType, []string{"type", "data_type", "datatype", "format"}},
	{models.AttrDescription, []string{"description", "desc", "comment", "note"}},
	{models.AttrUnit, []string{"unit", "units", "measurement"}},
	{models.AttrDefault, []string{"default", "default_value", "initial"}},
	{models.AttrValidation, []string{"validation", "constraint", "rule"}},
}

// columnBinding ties an attribute to a column position and label.
type columnBinding struct {
	attribute models.ParameterAttribute
	label     string
	index     int
}

// bindParameterColumns scans labels left to right. Blank labels never bind and
// an attribute binds at most once.
func bindParameterColumns(labels []string) []columnBinding {
	var bindings []columnBinding
	bound := make(map[models.ParameterAttribute]bool, len(parameterTaxonomy))

	for index, label := range labels {
		lower := strings.ToLower(label)
		if strings.TrimSpace(lower) == "" {
			continue
		}
		for _, rule := range parameterTaxonomy {
			if bound[rule.attribute] || !containsAny(lower, rule.patterns) {
				continue
			}
			bindings = append(bindings, columnBinding{attribute: rule.attribute, label: label, index: index})
			bound[rule.attribute] = true
			break
		}
	}
	return bindings
}

// MapParameterColumns returns the attribute to column label bindings for
// labels, in column order.
func MapParameterColumns(labels []string) models.ParameterColumnMap {
	return columnMap(bindParameterColumns(labels))
}

func columnMap(bindings []columnBinding) models.ParameterColumnMap {
	columns := make(models.ParameterColumnMap, 0, len(bindings))
	for _, b := range bindings {
		columns = append(columns, models.ParameterColumn{Attribute: b.attribute, Label: b.label})
	}
	return columns
}

// ExtractParameters reads a sheet whose first row holds column labels and
// returns one record per data row that supplies any bound attribute.
func (e *Extractor) ExtractParameters(workbook, tab string) (*models.ParameterExtraction, error) {
	wb, err := e.openWorkbook(workbook)
	if err != nil {
		return nil, wrapError(OpParameters, workbook, tab, err)
	}
	defer wb.Close()

	sheet, err := openSheet(wb, workbook, tab)
	if err != nil {
		return nil, wrapError(OpParameters, workbook, tab, err)
	}

	table, err := parser.ReadTable(sheet, parser.FirstRowHeader, 0)
	if err != nil {
		return nil, NewExtractionError(OpParameters, workbook, tab, err)
	}

	bindings := bindParameterColumns(table.Columns)
	result := &models.ParameterExtraction{
		Workbook:         workbook,
		TabName:          tab,
		ParameterColumns: columnMap(bindings),
		Parameters:       []models.ParameterRecord{},
	}

	if len(bindings) > 0 {
		for _, row := range table.Rows {
			record := models.ParameterRecord{}
			for _, b := range bindings {
				if value := row[b.index]; value != "" {
					record[b.attribute] = value
				}
			}
			if len(record) > 0 {
				result.Parameters = append(result.Parameters, record)
			}
		}
	}
	result.TotalParameters = len(result.Parameters)

	if len(bindings) == 0 {
		e.logger.Debug("no parameter columns recognized", "workbook", workbook, "tab", tab, "columns", table.Columns)
	}
	return result, nil
}
