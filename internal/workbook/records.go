package workbook

import (
	"strings"

	"fjacquet/expensas-report/internal/currencyutils"
	"fjacquet/expensas-report/internal/dateutils"
	"fjacquet/expensas-report/internal/models"
	"fjacquet/expensas-report/internal/months"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/shopspring/decimal"
)

// DepositColumns names the columns of the deposit sheet. Unit, Date and
// Amount are required; Time and Note may be absent from the sheet.
type DepositColumns struct {
	Unit   string
	Date   string
	Time   string
	Amount string
	Note   string
}

// DefaultDepositColumns matches the bank-reconciliation sheet layout.
var DefaultDepositColumns = DepositColumns{
	Unit:   "Departamento",
	Date:   "Fecha",
	Time:   "Hora",
	Amount: "Monto",
	Note:   "Nota",
}

// Deposits maps the deposit sheet to records in sheet order. Rows without
// a unit are not attributable to anyone and are skipped.
func Deposits(t *Table, cols DepositColumns) ([]models.DepositRecord, error) {
	unitIdx, err := requireColumn(t, cols.Unit)
	if err != nil {
		return nil, err
	}
	dateIdx, err := requireColumn(t, cols.Date)
	if err != nil {
		return nil, err
	}
	amountIdx, err := requireColumn(t, cols.Amount)
	if err != nil {
		return nil, err
	}
	timeIdx, _ := t.ColumnIndex(cols.Time)
	noteIdx, _ := t.ColumnIndex(cols.Note)

	var records []models.DepositRecord
	for i, row := range t.Rows {
		unit := models.NormalizeUnit(row[unitIdx])
		if unit == "" {
			continue
		}
		amount, err := currencyutils.ParseAmount(row[amountIdx])
		if err != nil {
			return nil, &reporterror.ShapeError{
				Sheet:  t.Sheet,
				Column: cols.Amount,
				Row:    t.SheetRow(i),
				Reason: err.Error(),
			}
		}
		records = append(records, models.DepositRecord{
			UnitID: unit,
			Date:   dateutils.FormatDateCell(row[dateIdx]),
			Time:   dateutils.FormatTimeCell(cell(row, timeIdx)),
			Amount: amount,
			Note:   strings.TrimSpace(cell(row, noteIdx)),
		})
	}
	return records, nil
}

// FeeOptions controls how a wide fee sheet is validated.
type FeeOptions struct {
	IDColumn string
	Order    *months.Order
	// AllowUnknownMonths keeps columns that are not month names instead of
	// rejecting the sheet. They are unpivoted like any month and sort last.
	AllowUnknownMonths bool
}

// WideFees validates a wide fee sheet and converts it to a WideFeeTable.
//
// Every column other than the identifier must be a month of opts.Order,
// and no two columns may name the same month. Month columns are stored
// under their canonical spelling. Blank cells count as zero; rows without
// a unit are skipped.
func WideFees(t *Table, opts FeeOptions) (models.WideFeeTable, error) {
	idIdx, err := requireColumn(t, opts.IDColumn)
	if err != nil {
		return models.WideFeeTable{}, err
	}

	table := models.WideFeeTable{Sheet: t.Sheet, IDColumn: t.Columns[idIdx]}
	var monthIdx []int
	seen := make(map[string]string)
	for i, name := range t.Columns {
		if i == idIdx {
			continue
		}
		if strings.TrimSpace(name) == "" {
			if columnBlank(t, i) {
				continue
			}
			return models.WideFeeTable{}, &reporterror.ShapeError{Sheet: t.Sheet, Column: name, Reason: "column with data has no header"}
		}

		label, ok := opts.Order.Canonical(name)
		if !ok {
			if !opts.AllowUnknownMonths {
				return models.WideFeeTable{}, &reporterror.ShapeError{Sheet: t.Sheet, Column: name, Reason: "not a month name"}
			}
			label = months.Normalize(name)
		}
		if prev, dup := seen[label]; dup {
			return models.WideFeeTable{}, &reporterror.ShapeError{
				Sheet:  t.Sheet,
				Column: name,
				Reason: "duplicate month column (also '" + prev + "')",
			}
		}
		seen[label] = name
		table.MonthColumns = append(table.MonthColumns, label)
		monthIdx = append(monthIdx, i)
	}

	for i, row := range t.Rows {
		unit := models.NormalizeUnit(row[idIdx])
		if unit == "" {
			continue
		}
		amounts := make([]decimal.Decimal, len(monthIdx))
		for j, col := range monthIdx {
			amount, err := currencyutils.ParseAmount(row[col])
			if err != nil {
				return models.WideFeeTable{}, &reporterror.ShapeError{
					Sheet:  t.Sheet,
					Column: t.Columns[col],
					Row:    t.SheetRow(i),
					Reason: err.Error(),
				}
			}
			amounts[j] = amount
		}
		table.Rows = append(table.Rows, models.WideFeeRow{UnitID: unit, Amounts: amounts})
	}
	return table, nil
}

func requireColumn(t *Table, name string) (int, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return -1, &reporterror.ShapeError{Sheet: t.Sheet, Column: name, Reason: "required column not found"}
	}
	return idx, nil
}

func columnBlank(t *Table, col int) bool {
	for _, row := range t.Rows {
		if strings.TrimSpace(row[col]) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
