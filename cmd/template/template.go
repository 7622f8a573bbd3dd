// Package template writes an empty input workbook
package template

import (
	"fmt"

	"fjacquet/expensas-report/cmd/root"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/workbook"

	"github.com/spf13/cobra"
)

var unitsFile string

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty input workbook",
	Long: `Write an empty input workbook with the deposit, expensas and water sheets.

The fee sheets get one row per selected unit and one column per month, in
the configured locale.`,
	Run: templateFunc,
}

func init() {
	Cmd.Flags().StringVar(&unitsFile, "units-file", "", "YAML file listing the units to pre-fill")
}

func templateFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	if c == nil {
		root.Log.Fatalf("Configuration was not initialized")
		return
	}
	if err := Run(c, root.SharedFlags.Output, unitsFile); err != nil {
		c.GetLogger().Fatalf("Writing template failed: %v", err)
	}
}

// Run writes the template workbook to output.
func Run(c *container.Container, output, file string) error {
	if output == "" {
		return fmt.Errorf("no output file: use --output")
	}
	cfg := c.GetConfig()

	units, err := cfg.ResolveUnits(nil, file, c.GetLogger())
	if err != nil {
		return err
	}
	if err := workbook.WriteTemplate(output, cfg.Layout(), c.GetMonthOrder(), units); err != nil {
		return err
	}

	c.GetLogger().Info("Template written",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCount, len(units)))
	return nil
}
