// Package reporterror defines the error types returned while loading the
// workbook and writing the report.
package reporterror

import "fmt"

// ReadError represents a workbook that could not be opened or a sheet that is absent
type ReadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("failed to read workbook '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to read sheet '%s' from workbook '%s': %v", e.Sheet, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ShapeError represents a sheet whose columns or cells do not have the
// expected layout: a missing identifier column, a duplicate or non-month
// column in a wide table, or a cell that cannot be parsed.
type ShapeError struct {
	Sheet  string
	Column string
	Row    int // 1-based spreadsheet row, 0 when the problem is the header
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("malformed sheet '%s': column '%s', row %d: %s", e.Sheet, e.Column, e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed sheet '%s': column '%s': %s", e.Sheet, e.Column, e.Reason)
}

// WriteError represents an output destination that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
