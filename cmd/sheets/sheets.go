// Package sheets lists the sheets of a workbook
package sheets

import (
	"fmt"
	"io"

	"fjacquet/expensas-report/cmd/root"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the sheets command
var Cmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets of a workbook",
	Long: `List the sheets of a workbook and flag the ones the report needs.

Use it to check the input.sheets settings against an unfamiliar workbook.`,
	Run: sheetsFunc,
}

func sheetsFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	if c == nil {
		root.Log.Fatalf("Configuration was not initialized")
		return
	}
	if err := Run(c, root.InputPath(), cmd.OutOrStdout()); err != nil {
		c.GetLogger().Fatalf("Listing sheets failed: %v", err)
	}
}

// Run writes the sheet names of the workbook at input to out. Sheets the
// report reads are tagged with their role.
func Run(c *container.Container, input string, out io.Writer) error {
	if input == "" {
		return fmt.Errorf("no input workbook: use --input or set input.path")
	}
	if err := validation.IsValidWorkbook(input); err != nil {
		return err
	}
	names, err := c.GetReader().SheetNames(input)
	if err != nil {
		return err
	}

	sheets := c.GetConfig().Input.Sheets
	roles := map[string]string{
		sheets.Deposits: "deposits",
		sheets.Expensas: "expensas",
		sheets.Water:    "water",
	}
	for _, name := range names {
		line := name
		if role, ok := roles[name]; ok {
			line = fmt.Sprintf("%s  [%s]", name, role)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
