package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact"
	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/output"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-workbooks",
		Short: "List the workbooks in the artifacts folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.extractor()
			if err != nil {
				return err
			}
			workbooks, err := ex.ListWorkbooks()
			if err != nil {
				return err
			}
			return a.render(workbooks, func(w io.Writer) error {
				return output.WriteWorkbookList(w, workbooks)
			})
		},
	}
}

func newTabsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-tabs <workbook>",
		Short: "Survey every sheet of a workbook",
		Long: `extract-tabs reports, for every sheet in declared order, its name, content
classification, dimensions and a sample of up to 5 rows by 10 columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.extractor()
			if err != nil {
				return err
			}
			tabs, err := ex.ExtractTabs(args[0])
			if err != nil {
				return err
			}
			return a.render(tabs, func(w io.Writer) error {
				return output.WriteTabs(w, args[0], tabs)
			})
		},
	}
}

func newContentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-tab-content <workbook> <tab>",
		Short: "Extract the content of one sheet as a string grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.extractor()
			if err != nil {
				return err
			}
			content, err := ex.ExtractTabContent(args[0], args[1], xlartifact.ContentOptions{
				MaxRows: a.v.GetInt(keyMaxRows),
				MaxCols: a.v.GetInt(keyMaxCols),
			})
			if err != nil {
				return err
			}
			return a.render(content, nil)
		},
	}

	cmd.Flags().Int("max-rows", xlartifact.DefaultMaxRows, "maximum number of rows to extract")
	cmd.Flags().Int("max-cols", xlartifact.DefaultMaxCols, "maximum number of columns to extract")
	mustBindPFlag(a.v, keyMaxRows, cmd.Flags().Lookup("max-rows"))
	mustBindPFlag(a.v, keyMaxCols, cmd.Flags().Lookup("max-cols"))
	return cmd
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-schema-structure <workbook>",
		Short: "Infer schema fields from schema-named sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.extractor()
			if err != nil {
				return err
			}
			structure, err := ex.ExtractSchemaStructure(args[0])
			if err != nil {
				return err
			}
			return a.render(structure, nil)
		},
	}
}

func newParametersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-parameters <workbook> <tab>",
		Short: "Extract parameter records from a sheet",
		Long: `extract-parameters maps the sheet's column labels onto the parameter
attributes name, type, description, unit, default and validation, and emits
one record per data row.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.extractor()
			if err != nil {
				return err
			}
			params, err := ex.ExtractParameters(args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(params, nil)
		},
	}
}
