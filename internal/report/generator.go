package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"fjacquet/expensas-report/internal/fileutils"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/models"
	"fjacquet/expensas-report/internal/reporterror"

	"github.com/gocarina/gocsv"
)

// Output formats.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Writer persists composed sections to path.
type Writer interface {
	Write(sections []Section, path string) error
}

// Generator dispatches sections to the writer registered for a format.
type Generator struct {
	writers map[string]Writer
	logger  logging.Logger
}

// NewGenerator creates a Generator with the JSON and CSV writers registered.
// The PDF writer lives in the document package and is registered by the caller.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		writers: map[string]Writer{
			FormatJSON: JSONWriter{},
			FormatCSV:  CSVWriter{},
		},
		logger: logger,
	}
}

// Register adds or replaces the writer for format.
func (g *Generator) Register(format string, w Writer) {
	g.writers[strings.ToLower(format)] = w
}

// Formats lists the registered formats.
func (g *Generator) Formats() []string {
	out := make([]string, 0, len(g.writers))
	for f := range g.writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Generate writes sections to path in format. Writer failures are returned
// as *reporterror.WriteError.
func (g *Generator) Generate(sections []Section, format, path string) error {
	w, ok := g.writers[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("unsupported report format: %s (supported: %s)", format, strings.Join(g.Formats(), ", "))
	}

	if err := w.Write(sections, path); err != nil {
		g.logger.WithError(err).Error("Failed to write report",
			logging.F(logging.FieldFormat, format),
			logging.F(logging.FieldOutputFile, path))
		return asWriteError(path, err)
	}

	g.logger.Info("Report written",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(sections)))
	return nil
}

func asWriteError(path string, err error) error {
	var we *reporterror.WriteError
	if errors.As(err, &we) {
		return err
	}
	return &reporterror.WriteError{Path: path, Err: err}
}

// JSONWriter writes the sections as an indented JSON array. Charts are omitted.
type JSONWriter struct{}

// Write implements Writer.
func (JSONWriter) Write(sections []Section, path string) error {
	return fileutils.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sections); err != nil {
			return fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return nil
	})
}

// BalanceRow is one line of the CSV balance summary.
type BalanceRow struct {
	Unit       string `csv:"unit"`
	Deposits   int    `csv:"deposits"`
	TotalPaid  string `csv:"total_paid"`
	TotalOwed  string `csv:"total_owed"`
	Difference string `csv:"difference"`
	Status     string `csv:"status"`
}

// CSVWriter writes one balance line per section.
type CSVWriter struct{}

// Write implements Writer.
func (CSVWriter) Write(sections []Section, path string) error {
	rows := BalanceRows(sections)
	return fileutils.WriteFileAtomic(path, func(w io.Writer) error {
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("failed to marshal CSV summary: %w", err)
		}
		return nil
	})
}

// BalanceRows summarizes sections for the CSV output.
func BalanceRows(sections []Section) []BalanceRow {
	rows := make([]BalanceRow, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, BalanceRow{
			Unit:       s.UnitID,
			Deposits:   len(s.Deposits),
			TotalPaid:  models.FormatPlain(s.Balance.TotalPaid),
			TotalOwed:  models.FormatPlain(s.Balance.TotalOwed),
			Difference: models.FormatPlain(s.Balance.Difference),
			Status:     string(s.Notice.Kind),
		})
	}
	return rows
}
