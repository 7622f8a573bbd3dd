// Package models defines the records that flow through the report pipeline.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DepositRecord is a single bank deposit credited to a unit.
type DepositRecord struct {
	UnitID string          `json:"unit_id"`
	Date   string          `json:"date"`
	Time   string          `json:"time"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// NormalizeUnit canonicalizes a unit identifier: surrounding whitespace is
// removed and letters are upper-cased, so " 5a" and "5A" are the same unit.
func NormalizeUnit(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
