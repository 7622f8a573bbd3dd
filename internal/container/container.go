// Package container provides dependency injection for the expensas-report application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/expensas-report/internal/chart"
	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/document"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/months"
	"fjacquet/expensas-report/internal/report"
	"fjacquet/expensas-report/internal/workbook"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	reader    *workbook.Reader
	order     *months.Order
	texts     report.Texts
	composer  *report.Composer
	generator *report.Generator
	service   *report.Service
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	order, err := months.NewOrder(cfg.Report.Locale)
	if err != nil {
		return nil, err
	}
	texts, err := report.TextsFor(cfg.Report.Locale)
	if err != nil {
		return nil, err
	}
	renderer, err := chart.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create chart renderer: %w", err)
	}

	reader := workbook.NewReader(logger)
	composer := report.NewComposer(order, renderer, report.ComposerOptions{
		Texts:          texts,
		CurrencySuffix: cfg.Report.Currency,
		PeriodLabel:    cfg.Report.PeriodLabel,
	}, logger)

	generator := report.NewGenerator(logger)
	generator.Register(report.FormatPDF, document.NewPDFWriter(texts.DocumentTitle, logger))

	service := report.NewService(reader, cfg.Layout(), order, composer, generator, logger)

	logger.Debug("Container initialized successfully",
		logging.F("locale", order.Locale()),
		logging.F("formats", generator.Formats()))

	return &Container{
		logger:    logger,
		config:    cfg,
		reader:    reader,
		order:     order,
		texts:     texts,
		composer:  composer,
		generator: generator,
		service:   service,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReader returns the workbook reader.
func (c *Container) GetReader() *workbook.Reader {
	return c.reader
}

// GetMonthOrder returns the month order of the configured locale.
func (c *Container) GetMonthOrder() *months.Order {
	return c.order
}

// GetTexts returns the report wording of the configured locale.
func (c *Container) GetTexts() report.Texts {
	return c.texts
}

// GetComposer returns the section composer.
func (c *Container) GetComposer() *report.Composer {
	return c.composer
}

// GetGenerator returns the output generator with every format registered.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetService returns the report pipeline.
func (c *Container) GetService() *report.Service {
	return c.service
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
