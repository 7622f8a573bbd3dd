package models

import "github.com/shopspring/decimal"

// UnitBalance compares what a unit paid against what it owes for the period.
// Totals are kept at full precision; Difference is rounded once for display
// and for the debt/credit decision.
type UnitBalance struct {
	UnitID     string          `json:"unit_id"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalOwed  decimal.Decimal `json:"total_owed"`
	Difference decimal.Decimal `json:"difference"`
}

// NewUnitBalance builds the balance of unit from its full-precision totals.
func NewUnitBalance(unit string, paid, owed decimal.Decimal) UnitBalance {
	return UnitBalance{
		UnitID:     unit,
		TotalPaid:  paid,
		TotalOwed:  owed,
		Difference: RoundDisplay(paid.Sub(owed)),
	}
}

// InDebt reports whether the unit owes money. A zero difference is paid up.
func (b UnitBalance) InDebt() bool {
	return b.Difference.IsNegative()
}

// Debt returns the owed amount as a positive value, zero when not in debt.
func (b UnitBalance) Debt() decimal.Decimal {
	if !b.InDebt() {
		return decimal.Zero
	}
	return b.Difference.Abs()
}

// Credit returns the amount in the unit's favour, zero when in debt.
func (b UnitBalance) Credit() decimal.Decimal {
	if b.InDebt() {
		return decimal.Zero
	}
	return b.Difference
}
