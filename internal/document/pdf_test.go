package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"fjacquet/expensas-report/internal/chart"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/models"
	"fjacquet/expensas-report/internal/report"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pageCount = regexp.MustCompile(`(?s)/Type\s*/Pages\b[^>]*?/Count\s+(\d+)`)

func countPages(t *testing.T, data []byte) int {
	t.Helper()
	m := pageCount.FindSubmatch(data)
	require.NotNil(t, m, "no page tree in PDF")
	n, err := strconv.Atoi(string(m[1]))
	require.NoError(t, err)
	return n
}

func testSection(t *testing.T, unit string, deposits int) report.Section {
	t.Helper()
	r, err := chart.NewRenderer()
	require.NoError(t, err)

	balance := models.NewUnitBalance(unit, decimal.NewFromInt(100), decimal.NewFromInt(150))
	png, err := r.Render(chart.BalanceSpec(balance, chart.BalanceLabels{
		Title: "Balance de pagos del departamento " + unit, XLabel: "Monto", Paid: "Pagos realizados", Owed: "Expensas y Agua",
	}))
	require.NoError(t, err)

	s := report.Section{
		UnitID:        unit,
		Heading:       "Departamento " + unit,
		DepositsTitle: "Pagos realizados en favor del edificio",
		NoDeposits:    "No se encontraron pagos para este departamento.",
		Expensas: report.FeeTable{
			Title:  "Expensas desde junio hasta el mes actual",
			Header: [2]string{"Mes", "Monto Expensas"},
			Lines:  []report.FeeLine{{Month: "junio", Amount: decimal.NewFromInt(100)}},
		},
		Water: report.FeeTable{
			Title:  "Costo de consumo agua desde junio hasta el mes actual",
			Header: [2]string{"Mes", "Monto Agua"},
			Empty:  "No se encontró información de agua para este departamento.",
		},
		BalanceTitle: "Balance de pagos",
		Balance:      balance,
		Notice:       report.Notice{Kind: report.NoticeDebt, Amount: balance.Debt(), Text: "Este departamento/tienda debe al edificio 50.00Bs."},
		Chart:        png,
	}
	for i := 0; i < deposits; i++ {
		s.Deposits = append(s.Deposits, report.DepositLine{
			Text: fmt.Sprintf("Fecha: 2024-06-%02d, Hora: 09:00:00, Monto: 10.00, Nota: pago %d", i%28+1, i),
		})
	}
	return s
}

func writePDF(t *testing.T, sections []report.Section) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "informe.pdf")
	w := NewPDFWriter("Informe por departamento", logging.NewMockLogger())

	require.NoError(t, w.Write(sections, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 5)
	assert.Equal(t, "%PDF-", string(data[:5]))
	return data
}

func TestPDFWriter_OnePagePerSection(t *testing.T) {
	sections := []report.Section{testSection(t, "5A", 2), testSection(t, "5B", 0), testSection(t, "T1", 1)}

	data := writePDF(t, sections)

	assert.Equal(t, 3, countPages(t, data))
}

func TestPDFWriter_OverflowContinuesOnNextPage(t *testing.T) {
	data := writePDF(t, []report.Section{testSection(t, "9E", 80)})

	assert.Greater(t, countPages(t, data), 1)
}

func TestPDFWriter_NoSections(t *testing.T) {
	data := writePDF(t, nil)

	assert.Equal(t, 1, countPages(t, data))
}

func TestPDFWriter_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	w := NewPDFWriter("Informe", logging.NewMockLogger())
	err := w.Write([]report.Section{testSection(t, "1A", 0)}, filepath.Join(blocker, "informe.pdf"))

	var writeErr *reporterror.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filepath.Join(blocker, "informe.pdf"), writeErr.Path)
}

func TestPDFWriter_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "informe.pdf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	w := NewPDFWriter("Informe", logging.NewMockLogger())
	require.NoError(t, w.Write([]report.Section{testSection(t, "1A", 0)}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
