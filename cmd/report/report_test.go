package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/expensas-report/cmd/report"
	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func buildingWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheets := map[string][][]interface{}{
		"INFORME BANCARIO": {
			{"Departamento", "Fecha", "Hora", "Monto", "Nota"},
			{"5A", "2024-06-03", "09:00", 100, "junio"},
			{"5B", "2024-06-04", "10:00", 200, ""},
		},
		"EXPENSAS": {
			{"Departamento", "julio", "junio"},
			{"5A", 50, 50},
			{"5B", 60, 60},
		},
		"COSTO AGUA DEPAS": {
			{"Departamento", "junio"},
			{"5A", 50},
			{"5B", 0},
		},
	}
	require.NoError(t, f.SetSheetName("Sheet1", "INFORME BANCARIO"))
	for name, rows := range sheets {
		if name != "INFORME BANCARIO" {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cellName, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(name, cellName, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "libro.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	assert.Contains(t, report.Cmd.Short, "per-unit report")
	assert.Contains(t, report.Cmd.Long, "debt or credit notice")
	assert.NotNil(t, report.Cmd.Run)

	for _, name := range []string{"units", "units-file", "format", "chart-dir"} {
		assert.NotNil(t, report.Cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "f", report.Cmd.Flags().Lookup("format").Shorthand)
}

func TestReportCommand_Run_PDF(t *testing.T) {
	c := newContainer(t)
	input := buildingWorkbook(t)
	output := filepath.Join(t.TempDir(), "informe.pdf")

	require.NoError(t, report.Run(c, input, output, report.Options{Units: []string{"5a", "5B", "T1"}}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestReportCommand_Run_CSV(t *testing.T) {
	c := newContainer(t)
	input := buildingWorkbook(t)
	output := filepath.Join(t.TempDir(), "resumen.csv")
	chartDir := filepath.Join(t.TempDir(), "graficos")

	require.NoError(t, report.Run(c, input, output, report.Options{
		Units:    []string{"5A", "5B", "T1"},
		Format:   "CSV",
		ChartDir: chartDir,
	}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		"unit,deposits,total_paid,total_owed,difference,status\n"+
			"5A,1,100.00,150.00,-50.00,debt\n"+
			"5B,1,200.00,120.00,80.00,credit\n"+
			"T1,0,0.00,0.00,0.00,credit\n",
		string(data))

	_, err = os.Stat(filepath.Join(chartDir, "balance_5A.png"))
	assert.NoError(t, err)
}

func TestReportCommand_Run_MissingSheet(t *testing.T) {
	c := newContainer(t)
	f := excelize.NewFile()
	input := filepath.Join(t.TempDir(), "vacio.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	err := report.Run(c, input, filepath.Join(t.TempDir(), "informe.pdf"), report.Options{Units: []string{"5A"}})

	var readErr *reporterror.ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestReportCommand_Run_NoInput(t *testing.T) {
	c := newContainer(t)
	assert.Error(t, report.Run(c, "", "informe.pdf", report.Options{}))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "informe.json", report.OutputPath("informe.pdf", "json"))
	assert.Equal(t, "out/reporte.csv", report.OutputPath("out/reporte", "csv"))
	assert.Equal(t, "informe.pdf", report.OutputPath("", "pdf"))
}
