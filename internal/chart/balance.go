package chart

import (
	"fjacquet/expensas-report/internal/models"
)

// BalanceLabels holds the texts of the balance chart.
type BalanceLabels struct {
	Title  string
	XLabel string
	Paid   string
	Owed   string
}

// BalanceSpec returns the two-bar chart comparing what a unit paid (blue)
// with what it owes for expensas and water (red).
func BalanceSpec(b models.UnitBalance, labels BalanceLabels) Spec {
	return Spec{
		Title:  labels.Title,
		XLabel: labels.XLabel,
		Bars: []Bar{
			{Label: labels.Paid, Value: models.RoundDisplay(b.TotalPaid), Color: Blue},
			{Label: labels.Owed, Value: models.RoundDisplay(b.TotalOwed), Color: Red},
		},
	}
}
