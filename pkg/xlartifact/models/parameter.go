package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// ParameterAttribute is a role a parameter-sheet column can play.
type ParameterAttribute string

const (
	// AttrName is the parameter's identifier column.
	AttrName ParameterAttribute = "name"
	// AttrType is the data type or format column.
	AttrType ParameterAttribute = "type"
	// AttrDescription is the free-text description or comment column.
	AttrDescription ParameterAttribute = "description"
	// AttrUnit is the unit of measurement column.
	AttrUnit ParameterAttribute = "unit"
	// AttrDefault is the default or initial value column.
	AttrDefault ParameterAttribute = "default"
	// AttrValidation is the validation rule or constraint column.
	AttrValidation ParameterAttribute = "validation"
)

// ParameterColumn binds one attribute to a column label.
type ParameterColumn struct {
	Attribute ParameterAttribute
	Label     string
}

// ParameterColumnMap lists attribute bindings in sheet column order. It is
// encoded as an object whose keys keep that order.
type ParameterColumnMap []ParameterColumn

// Label returns the column label bound to attr.
func (m ParameterColumnMap) Label(attr ParameterAttribute) (string, bool) {
	for _, c := range m {
		if c.Attribute == attr {
			return c.Label, true
		}
	}
	return "", false
}

// MarshalJSON encodes the bindings as an ordered object.
func (m ParameterColumnMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(string(c.Attribute)); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(c.Label); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping its key order.
func (m *ParameterColumnMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return err
	} else if tok != json.Delim('{') {
		return fmt.Errorf("parameter columns: expected object, got %v", tok)
	}

	columns := ParameterColumnMap{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var label string
		if err := dec.Decode(&label); err != nil {
			return fmt.Errorf("parameter columns: %s: %w", key, err)
		}
		columns = append(columns, ParameterColumn{Attribute: ParameterAttribute(key), Label: label})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = columns
	return nil
}

// MarshalYAML encodes the bindings as an ordered mapping.
func (m ParameterColumnMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c.Attribute)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Label},
		)
	}
	return node, nil
}

// ParameterRecord holds the values one data row supplies for the bound attributes.
type ParameterRecord map[ParameterAttribute]string

// ParameterExtraction is the parameter inference result for one sheet.
type ParameterExtraction struct {
	// Workbook is the workbook file name.
	Workbook string `json:"workbook" yaml:"workbook"`
	// TabName is the sheet name.
	TabName string `json:"tab_name" yaml:"tab_name"`
	// ParameterColumns is the attribute to column label binding.
	ParameterColumns ParameterColumnMap `json:"parameter_columns" yaml:"parameter_columns"`
	// Parameters holds one record per data row that supplied any attribute.
	Parameters []ParameterRecord `json:"parameters" yaml:"parameters"`
	// TotalParameters is len(Parameters).
	TotalParameters int `json:"total_parameters" yaml:"total_parameters"`
}
