// Package report handles the report generation command
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/expensas-report/cmd/root"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/report"
	"fjacquet/expensas-report/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the report command flags.
type Options struct {
	Units     []string
	UnitsFile string
	Format    string
	ChartDir  string
}

var opts Options

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Build the per-unit report from an expensas workbook",
	Long: `Build the per-unit report from an expensas workbook.

Each selected unit gets a section with its bank deposits, its expensas and
water tables, a balance chart and a debt or credit notice. Sections follow
the order of the unit selection (--units, --units-file, report.units or the
building's default list). The report is written as pdf, json or csv.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringSliceVar(&opts.Units, "units", nil, "Comma-separated units to include, in report order")
	Cmd.Flags().StringVar(&opts.UnitsFile, "units-file", "", "YAML file listing the units to include")
	Cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (pdf, json, csv)")
	Cmd.Flags().StringVar(&opts.ChartDir, "chart-dir", "", "Also save every balance chart as a PNG in this directory")
}

func reportFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	if c == nil {
		root.Log.Fatalf("Configuration was not initialized")
		return
	}
	if err := Run(c, root.InputPath(), root.SharedFlags.Output, opts); err != nil {
		c.GetLogger().Fatalf("Report failed: %v", err)
	}
}

// Run builds the report with the container's pipeline.
func Run(c *container.Container, input, output string, o Options) error {
	if input == "" {
		return fmt.Errorf("no input workbook: use --input or set input.path")
	}
	if err := validation.IsValidWorkbook(input); err != nil {
		return err
	}
	cfg := c.GetConfig()

	format := strings.ToLower(o.Format)
	if format == "" {
		format = strings.ToLower(cfg.Report.Format)
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	if output == "" {
		output = OutputPath(cfg.Report.Output, format)
	}
	if err := validation.IsValidOutputDir(output); err != nil {
		return err
	}
	chartDir := o.ChartDir
	if chartDir == "" {
		chartDir = cfg.Report.ChartDir
	}

	units, err := cfg.ResolveUnits(o.Units, o.UnitsFile, c.GetLogger())
	if err != nil {
		return err
	}

	sections, err := c.GetService().Run(report.Request{
		Input:    input,
		Output:   output,
		Format:   format,
		Units:    units,
		ChartDir: chartDir,
	})
	if err != nil {
		return err
	}

	c.GetLogger().Info("Report generated successfully",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCount, len(sections)))
	return nil
}

// OutputPath swaps the extension of the configured output for format.
func OutputPath(configured, format string) string {
	if configured == "" {
		configured = "informe.pdf"
	}
	ext := filepath.Ext(configured)
	return strings.TrimSuffix(configured, ext) + "." + format
}
