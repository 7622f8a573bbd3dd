// Package workbook reads the sheets of the input spreadsheet and turns them
// into deposit records and wide fee tables.
package workbook

import "strings"

// Table is a sheet as read from the workbook: the first row provides the
// column names, the remaining rows are kept in sheet order. Every row has
// exactly len(Columns) cells.
type Table struct {
	Sheet   string
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the index of the column called name. Names are
// compared ignoring case and surrounding whitespace.
func (t *Table) ColumnIndex(name string) (int, bool) {
	want := strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return i, true
		}
	}
	return -1, false
}

// SheetRow returns the 1-based spreadsheet row number of data row i.
func (t *Table) SheetRow(i int) int {
	return i + 2
}

// isBlank reports whether every cell of row is empty.
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// newTable builds a Table from raw rows, padding short rows to the header
// width and dropping trailing blank rows.
func newTable(sheet string, raw [][]string) *Table {
	t := &Table{Sheet: sheet}
	if len(raw) == 0 {
		return t
	}

	width := len(raw[0])
	for _, r := range raw[1:] {
		if len(r) > width {
			width = len(r)
		}
	}

	t.Columns = pad(raw[0], width)
	for _, r := range raw[1:] {
		t.Rows = append(t.Rows, pad(r, width))
	}
	for len(t.Rows) > 0 && isBlank(t.Rows[len(t.Rows)-1]) {
		t.Rows = t.Rows[:len(t.Rows)-1]
	}
	return t
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
