// Package currencyutils parses and formats the monetary cells of the input workbook.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/expensas-report/internal/models"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`(?i)(bs\.?|bob|usd|\$|€|\s)`)

// ParseAmount parses a cell into a decimal. Empty cells are zero.
// It handles "1,234.56", "1.234,56", "1234,56", "Bs 1'234.50" and a
// leading or trailing minus sign.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts the common spreadsheet spellings of an amount
// to a form accepted by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	s := symbolPattern.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	if strings.HasSuffix(s, "-") {
		s = "-" + strings.TrimSuffix(s, "-")
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.Trim(s, "()")
	}

	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// FormatAmount renders amount rounded to two places with thousands
// separators followed by the currency suffix, e.g. "1,234.50Bs.".
func FormatAmount(amount decimal.Decimal, suffix string) string {
	return models.FormatGrouped(amount) + suffix
}
