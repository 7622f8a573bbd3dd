// Package reshape converts wide fee tables into long (unit, month, amount) records.
package reshape

import (
	"fjacquet/expensas-report/internal/models"
)

// Unpivot produces one record per (row, month column) pair, row-major, with
// the column name as month label. Nothing is aggregated or deduplicated, so
// the result always has len(Rows) * len(MonthColumns) records.
func Unpivot(table models.WideFeeTable) []models.LongFeeRecord {
	out := make([]models.LongFeeRecord, 0, len(table.Rows)*len(table.MonthColumns))
	for _, row := range table.Rows {
		for i, month := range table.MonthColumns {
			out = append(out, models.LongFeeRecord{
				UnitID:     row.UnitID,
				MonthLabel: month,
				Amount:     row.Amounts[i],
			})
		}
	}
	return out
}
