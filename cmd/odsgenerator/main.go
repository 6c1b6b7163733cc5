// Command odsgenerator generates a spreadsheet document from a JSON or YAML
// description file.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aerissecure/odsgen"
	"github.com/aerissecure/odsgen/version"
)

const longHelp = `Generate a spreadsheet document from a JSON or YAML description.

The description nests three levels: a document is a list of tabs, a tab a
list of rows, a row a list of cells. Any level can instead be a mapping with
the structural key ("body", "table", "row", "value") plus options:

  document: styles (style definitions), defaults (default style names)
  tab:      name, style, width (scalar or per-column list), span
  row:      style (name or list of names)
  cell:     style, text, formula, colspanned, rowspanned, attr

A style option may list several names; each level picks the first one whose
family (table-row or table-cell) matches. Built-in styles such as "bold",
"bold_center", "grid_06pt" or "cell_decimal2" can be used by name.

The output format follows the file extension: .xlsx produces a workbook,
anything else an OpenDocument spreadsheet.

The minimal description [[["a", "b", "c"], [10, 20, 30]]] produces one tab
named "Tab 1" with two rows.`

func main() {
	log := logrus.New()
	root := &cobra.Command{
		Use:           "odsgenerator input_file output_file",
		Short:         "Generate a spreadsheet document from a JSON or YAML description",
		Long:          longHelp,
		Args:          cobra.ExactArgs(2),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return odsgen.BuildFile(args[0], args[1])
		},
	}
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
