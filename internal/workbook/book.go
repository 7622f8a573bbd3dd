package workbook

import (
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/models"
	"fjacquet/expensas-report/internal/months"
)

// SheetNames names the three sheets the report needs.
type SheetNames struct {
	Deposits string
	Expensas string
	Water    string
}

// DefaultSheetNames matches the building's reconciliation workbook.
var DefaultSheetNames = SheetNames{
	Deposits: "INFORME BANCARIO",
	Expensas: "EXPENSAS",
	Water:    "COSTO AGUA DEPAS",
}

// Layout describes where the data lives in the workbook.
type Layout struct {
	Sheets             SheetNames
	DepositColumns     DepositColumns
	FeeIDColumn        string
	AllowUnknownMonths bool
}

// DefaultLayout returns the layout of the building's workbook.
func DefaultLayout() Layout {
	return Layout{
		Sheets:         DefaultSheetNames,
		DepositColumns: DefaultDepositColumns,
		FeeIDColumn:    DefaultDepositColumns.Unit,
	}
}

// Book holds the validated contents of the three sheets.
type Book struct {
	Deposits []models.DepositRecord
	Expensas models.WideFeeTable
	Water    models.WideFeeTable
}

// Load reads and validates the three sheets of the workbook at path.
// It returns a *reporterror.ReadError or *reporterror.ShapeError on failure.
func (r *Reader) Load(path string, layout Layout, order *months.Order) (*Book, error) {
	tables, err := r.ReadSheets(path, layout.Sheets.Deposits, layout.Sheets.Expensas, layout.Sheets.Water)
	if err != nil {
		return nil, err
	}

	deposits, err := Deposits(tables[layout.Sheets.Deposits], layout.DepositColumns)
	if err != nil {
		return nil, err
	}

	opts := FeeOptions{IDColumn: layout.FeeIDColumn, Order: order, AllowUnknownMonths: layout.AllowUnknownMonths}
	expensas, err := WideFees(tables[layout.Sheets.Expensas], opts)
	if err != nil {
		return nil, err
	}
	water, err := WideFees(tables[layout.Sheets.Water], opts)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Workbook loaded",
		logging.F(logging.FieldWorkbook, path),
		logging.F("deposits", len(deposits)),
		logging.F("expensas_units", len(expensas.Rows)),
		logging.F("water_units", len(water.Rows)))

	return &Book{Deposits: deposits, Expensas: expensas, Water: water}, nil
}
