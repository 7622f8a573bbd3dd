package workbook

import (
	"fmt"

	"fjacquet/expensas-report/internal/months"

	"github.com/xuri/excelize/v2"
)

// WriteTemplate creates an empty input workbook at path with the three
// sheets of layout, their header rows, and one row per unit in the fee
// sheets so the administrator only has to fill in amounts.
func WriteTemplate(path string, layout Layout, order *months.Order, units []string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5597"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	c := layout.DepositColumns
	depositHeader := []interface{}{c.Unit, c.Date, c.Time, c.Amount, c.Note}
	if err := f.SetSheetName("Sheet1", layout.Sheets.Deposits); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeHeader(f, layout.Sheets.Deposits, depositHeader, headerStyle); err != nil {
		return err
	}

	feeHeader := []interface{}{layout.FeeIDColumn}
	for _, m := range order.Labels() {
		feeHeader = append(feeHeader, m)
	}
	for _, sheet := range []string{layout.Sheets.Expensas, layout.Sheets.Water} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		if err := writeHeader(f, sheet, feeHeader, headerStyle); err != nil {
			return err
		}
		for i, unit := range units {
			cellName, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetCellStr(sheet, cellName, unit); err != nil {
				return fmt.Errorf("failed to write unit %s: %w", unit, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet, err)
	}
	return nil
}
