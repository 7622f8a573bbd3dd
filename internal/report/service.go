package report

import (
	"fmt"
	"path/filepath"

	"fjacquet/expensas-report/internal/aggregator"
	"fjacquet/expensas-report/internal/fileutils"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/months"
	"fjacquet/expensas-report/internal/reshape"
	"fjacquet/expensas-report/internal/workbook"

	"github.com/google/uuid"
)

// WorkbookLoader loads the validated sheets of a workbook.
type WorkbookLoader interface {
	Load(path string, layout workbook.Layout, order *months.Order) (*workbook.Book, error)
}

// Request describes one report run.
type Request struct {
	Input  string
	Output string
	Format string
	Units  []string
	// ChartDir, when set, also receives every balance chart as balance_<unit>.png.
	ChartDir string
}

// Service runs the whole pipeline: load, reshape, compose and write.
type Service struct {
	loader    WorkbookLoader
	layout    workbook.Layout
	order     *months.Order
	composer  *Composer
	generator *Generator
	logger    logging.Logger
}

// NewService creates a Service.
func NewService(loader WorkbookLoader, layout workbook.Layout, order *months.Order, composer *Composer, generator *Generator, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		loader:    loader,
		layout:    layout,
		order:     order,
		composer:  composer,
		generator: generator,
		logger:    logger,
	}
}

// Run produces the report described by req and returns the composed sections.
func (s *Service) Run(req Request) ([]Section, error) {
	runID := uuid.NewString()
	log := s.logger.WithFields(
		logging.F(logging.FieldRunID, runID),
		logging.F(logging.FieldWorkbook, req.Input))

	log.Info("Starting report",
		logging.F(logging.FieldFormat, req.Format),
		logging.F(logging.FieldCount, len(req.Units)))

	book, err := s.loader.Load(req.Input, s.layout, s.order)
	if err != nil {
		return nil, err
	}

	groups := aggregator.Group(book.Deposits)
	for _, unit := range groups.Missing(req.Units) {
		log.Warn("Unit has deposits but is not selected", logging.F(logging.FieldUnit, unit))
	}

	src := Sources{
		Deposits: groups,
		Expensas: reshape.Unpivot(book.Expensas),
		Water:    reshape.Unpivot(book.Water),
	}

	sections, err := s.composer.Compose(src, req.Units)
	if err != nil {
		return nil, err
	}

	if req.ChartDir != "" {
		if err := SaveCharts(sections, req.ChartDir); err != nil {
			return nil, err
		}
		log.Info("Balance charts saved", logging.F("chart_dir", req.ChartDir))
	}

	if err := s.generator.Generate(sections, req.Format, req.Output); err != nil {
		return nil, err
	}

	log.Info("Report completed",
		logging.F(logging.FieldOutputFile, req.Output),
		logging.F(logging.FieldCount, len(sections)))
	return sections, nil
}

// SaveCharts writes the chart of every section to dir as balance_<unit>.png.
func SaveCharts(sections []Section, dir string) error {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	for _, s := range sections {
		if len(s.Chart) == 0 {
			continue
		}
		path := filepath.Join(dir, ChartFileName(s.UnitID))
		if err := fileutils.WriteFile(path, s.Chart); err != nil {
			return asWriteError(path, err)
		}
	}
	return nil
}

// ChartFileName is the file name of a unit's saved chart.
func ChartFileName(unit string) string {
	return fmt.Sprintf("balance_%s.png", unit)
}
