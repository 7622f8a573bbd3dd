package workbook

import (
	"fmt"

	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/xuri/excelize/v2"
)

// Reader loads sheets from an .xlsx workbook. It never modifies the file.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader. A nil logger falls back to a default logrus adapter.
func NewReader(logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{logger: logger}
}

// ReadSheet loads one sheet. See ReadSheets.
func (r *Reader) ReadSheet(path, sheet string) (*Table, error) {
	tables, err := r.ReadSheets(path, sheet)
	if err != nil {
		return nil, err
	}
	return tables[sheet], nil
}

// ReadSheets opens the workbook once and loads every named sheet. Cell
// values are read raw, without the display number format, so amounts and
// dates keep their stored precision. A file that cannot be opened or a
// missing sheet yields a *reporterror.ReadError.
func (r *Reader) ReadSheets(path string, sheets ...string) (map[string]*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &reporterror.ReadError{Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close workbook", logging.F(logging.FieldWorkbook, path))
		}
	}()

	tables := make(map[string]*Table, len(sheets))
	for _, sheet := range sheets {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			if err == nil {
				err = fmt.Errorf("sheet not found (available: %v)", f.GetSheetList())
			}
			return nil, &reporterror.ReadError{Path: path, Sheet: sheet, Err: err}
		}

		raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, &reporterror.ReadError{Path: path, Sheet: sheet, Err: err}
		}

		t := newTable(sheet, raw)
		r.logger.Debug("Loaded sheet",
			logging.F(logging.FieldWorkbook, path),
			logging.F(logging.FieldSheet, sheet),
			logging.F(logging.FieldCount, len(t.Rows)))
		tables[sheet] = t
	}
	return tables, nil
}

// SheetNames lists the sheets of the workbook in tab order.
func (r *Reader) SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &reporterror.ReadError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()
	return f.GetSheetList(), nil
}
