// Package validation checks user-supplied paths and formats before any work starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/expensas-report/internal/reporterror"
)

// OutputFormats are the report formats the tool can write.
var OutputFormats = []string{"pdf", "json", "csv"}

// WorkbookExtensions are the spreadsheet files the reader can open.
var WorkbookExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// IsValidWorkbook checks that path is an existing regular file with a
// workbook extension. A missing file is reported as *reporterror.ReadError.
func IsValidWorkbook(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &reporterror.ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range WorkbookExtensions {
		if ext == e {
			return nil
		}
	}
	return fmt.Errorf("unsupported workbook type: %s. Supported extensions are %s", path, strings.Join(WorkbookExtensions, ", "))
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if strings.EqualFold(f, format) {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(OutputFormats, ", "))
}

// IsValidOutputDir checks that the directory receiving path exists, or can
// be created by the writer.
func IsValidOutputDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return &reporterror.WriteError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return nil
}
