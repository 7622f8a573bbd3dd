// Package units lists the units found in a workbook's deposit sheet
package units

import (
	"fmt"
	"io"

	"fjacquet/expensas-report/cmd/root"
	"fjacquet/expensas-report/internal/aggregator"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/validation"

	"github.com/spf13/cobra"
)

var unitsFile string

// Cmd represents the units command
var Cmd = &cobra.Command{
	Use:   "units",
	Short: "List the units found in the deposit sheet",
	Long: `List the units found in the deposit sheet with their number of deposits.

Units with deposits that are not part of the selection are marked, as are
selected units with no deposits at all. Both usually point at a typo in the
workbook or in the unit list.`,
	Run: unitsFunc,
}

func init() {
	Cmd.Flags().StringVar(&unitsFile, "units-file", "", "YAML file listing the selected units")
}

func unitsFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	if c == nil {
		root.Log.Fatalf("Configuration was not initialized")
		return
	}
	if err := Run(c, root.InputPath(), unitsFile, cmd.OutOrStdout()); err != nil {
		c.GetLogger().Fatalf("Listing units failed: %v", err)
	}
}

// Run writes the unit listing of the workbook at input to out.
func Run(c *container.Container, input, file string, out io.Writer) error {
	if input == "" {
		return fmt.Errorf("no input workbook: use --input or set input.path")
	}
	if err := validation.IsValidWorkbook(input); err != nil {
		return err
	}
	cfg := c.GetConfig()

	book, err := c.GetReader().Load(input, cfg.Layout(), c.GetMonthOrder())
	if err != nil {
		return err
	}
	selection, err := cfg.ResolveUnits(nil, file, c.GetLogger())
	if err != nil {
		return err
	}

	groups := aggregator.Group(book.Deposits)
	unselected := make(map[string]bool)
	for _, u := range groups.Missing(selection) {
		unselected[u] = true
	}

	for _, u := range groups.Units() {
		deposits, _ := groups.Lookup(u)
		mark := ""
		if unselected[u] {
			mark = "  (not selected)"
		}
		if _, err := fmt.Fprintf(out, "%-6s %4d%s\n", u, len(deposits), mark); err != nil {
			return err
		}
	}
	for _, u := range selection {
		if _, found := groups.Lookup(u); !found {
			if _, err := fmt.Fprintf(out, "%-6s %4d  (no deposits)\n", u, 0); err != nil {
				return err
			}
		}
	}
	return nil
}
