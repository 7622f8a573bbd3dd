// Package report composes the per-unit sections of the building report and
// hands them to the output writers.
package report

import (
	"fjacquet/expensas-report/internal/models"

	"github.com/shopspring/decimal"
)

// NoticeKind distinguishes the closing sentence of a section.
type NoticeKind string

const (
	// NoticeDebt is used when the unit paid less than it owes.
	NoticeDebt NoticeKind = "debt"
	// NoticeCredit is used when the unit is paid up, including a zero balance.
	NoticeCredit NoticeKind = "credit"
)

// DepositLine is one deposit as displayed, with the amount rounded to two places.
type DepositLine struct {
	Date   string          `json:"date"`
	Time   string          `json:"time"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
	Text   string          `json:"text"`
}

// FeeLine is one row of the expensas or water table.
type FeeLine struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// FeeTable is a titled two-column table. When Lines is empty the writer
// shows Empty instead of the table.
type FeeTable struct {
	Title  string    `json:"title"`
	Header [2]string `json:"header"`
	Lines  []FeeLine `json:"lines"`
	Empty  string    `json:"empty"`
}

// Notice is the closing sentence of a section.
type Notice struct {
	Kind   NoticeKind      `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Text   string          `json:"text"`
}

// Section is everything the report shows for one unit, in display order.
type Section struct {
	UnitID        string             `json:"unit_id"`
	Heading       string             `json:"heading"`
	DepositsTitle string             `json:"deposits_title"`
	Deposits      []DepositLine      `json:"deposits"`
	NoDeposits    string             `json:"no_deposits"`
	Expensas      FeeTable           `json:"expensas"`
	Water         FeeTable           `json:"water"`
	BalanceTitle  string             `json:"balance_title"`
	Balance       models.UnitBalance `json:"balance"`
	Notice        Notice             `json:"notice"`
	Chart         []byte             `json:"-"`
	UnknownMonths []string           `json:"unknown_months,omitempty"`
}
