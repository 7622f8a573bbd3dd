package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places shown for every amount.
const DisplayPlaces = 2

// RoundDisplay rounds an amount half-to-even to DisplayPlaces.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(DisplayPlaces)
}

// FormatPlain renders an amount with two decimals and no grouping, e.g. "1234.50".
func FormatPlain(d decimal.Decimal) string {
	return d.StringFixedBank(DisplayPlaces)
}

// FormatGrouped renders an amount with two decimals and thousands
// separators, e.g. "1,234.50".
func FormatGrouped(d decimal.Decimal) string {
	plain := d.StringFixedBank(DisplayPlaces)
	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign, plain = "-", plain[1:]
	}
	integer, fraction, _ := strings.Cut(plain, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fraction)
	return b.String()
}
