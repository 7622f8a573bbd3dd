package models

import "github.com/shopspring/decimal"

// WideFeeRow is one unit's row of a wide fee table, with one amount per month column.
type WideFeeRow struct {
	UnitID  string
	Amounts []decimal.Decimal
}

// WideFeeTable is the spreadsheet shape of expensas and water costs:
// an identifier column followed by one column per month.
type WideFeeTable struct {
	Sheet        string
	IDColumn     string
	MonthColumns []string
	Rows         []WideFeeRow
}

// LongFeeRecord is one (unit, month, amount) tuple of an unpivoted fee table.
type LongFeeRecord struct {
	UnitID     string          `json:"unit_id"`
	MonthLabel string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// FilterUnit returns the records belonging to unit, in input order.
func FilterUnit(records []LongFeeRecord, unit string) []LongFeeRecord {
	var out []LongFeeRecord
	for _, r := range records {
		if r.UnitID == unit {
			out = append(out, r)
		}
	}
	return out
}

// SumFees adds the amounts of records at full precision.
func SumFees(records []LongFeeRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// SumDeposits adds the amounts of records at full precision.
func SumDeposits(records []DepositRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
