// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/expensas-report/internal/months"
	"fjacquet/expensas-report/internal/validation"
	"fjacquet/expensas-report/internal/workbook"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		Path   string `mapstructure:"path" yaml:"path"`
		Sheets struct {
			Deposits string `mapstructure:"deposits" yaml:"deposits"`
			Expensas string `mapstructure:"expensas" yaml:"expensas"`
			Water    string `mapstructure:"water" yaml:"water"`
		} `mapstructure:"sheets" yaml:"sheets"`
		Columns struct {
			Unit   string `mapstructure:"unit" yaml:"unit"`
			Date   string `mapstructure:"date" yaml:"date"`
			Time   string `mapstructure:"time" yaml:"time"`
			Amount string `mapstructure:"amount" yaml:"amount"`
			Note   string `mapstructure:"note" yaml:"note"`
		} `mapstructure:"columns" yaml:"columns"`
		AllowUnknownMonths bool `mapstructure:"allow_unknown_months" yaml:"allow_unknown_months"`
	} `mapstructure:"input" yaml:"input"`

	Report struct {
		Output      string   `mapstructure:"output" yaml:"output"`
		Format      string   `mapstructure:"format" yaml:"format"`
		Locale      string   `mapstructure:"locale" yaml:"locale"`
		Currency    string   `mapstructure:"currency" yaml:"currency"`
		Units       []string `mapstructure:"units" yaml:"units"`
		UnitsFile   string   `mapstructure:"units_file" yaml:"units_file"`
		ChartDir    string   `mapstructure:"chart_dir" yaml:"chart_dir"`
		PeriodLabel string   `mapstructure:"period_label" yaml:"period_label"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expensas-report")
	v.AddConfigPath(".expensas-report")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Input defaults
	v.SetDefault("input.path", "")
	v.SetDefault("input.sheets.deposits", workbook.DefaultSheetNames.Deposits)
	v.SetDefault("input.sheets.expensas", workbook.DefaultSheetNames.Expensas)
	v.SetDefault("input.sheets.water", workbook.DefaultSheetNames.Water)
	v.SetDefault("input.columns.unit", workbook.DefaultDepositColumns.Unit)
	v.SetDefault("input.columns.date", workbook.DefaultDepositColumns.Date)
	v.SetDefault("input.columns.time", workbook.DefaultDepositColumns.Time)
	v.SetDefault("input.columns.amount", workbook.DefaultDepositColumns.Amount)
	v.SetDefault("input.columns.note", workbook.DefaultDepositColumns.Note)
	v.SetDefault("input.allow_unknown_months", false)

	// Report defaults
	v.SetDefault("report.output", "informe.pdf")
	v.SetDefault("report.format", "pdf")
	v.SetDefault("report.locale", months.LocaleSpanish)
	v.SetDefault("report.currency", "Bs.")
	v.SetDefault("report.units", DefaultUnits)
	v.SetDefault("report.units_file", "")
	v.SetDefault("report.chart_dir", "")
	v.SetDefault("report.period_label", "desde junio hasta el mes actual")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	if _, err := months.NewOrder(config.Report.Locale); err != nil {
		return err
	}

	sheets := config.Input.Sheets
	if sheets.Deposits == "" || sheets.Expensas == "" || sheets.Water == "" {
		return fmt.Errorf("input.sheets.deposits, input.sheets.expensas and input.sheets.water must all be set")
	}

	cols := config.Input.Columns
	for key, value := range map[string]string{
		"input.columns.unit":   cols.Unit,
		"input.columns.date":   cols.Date,
		"input.columns.amount": cols.Amount,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	return nil
}

// Layout returns the workbook layout described by the input section.
func (c *Config) Layout() workbook.Layout {
	return workbook.Layout{
		Sheets: workbook.SheetNames{
			Deposits: c.Input.Sheets.Deposits,
			Expensas: c.Input.Sheets.Expensas,
			Water:    c.Input.Sheets.Water,
		},
		DepositColumns: workbook.DepositColumns{
			Unit:   c.Input.Columns.Unit,
			Date:   c.Input.Columns.Date,
			Time:   c.Input.Columns.Time,
			Amount: c.Input.Columns.Amount,
			Note:   c.Input.Columns.Note,
		},
		FeeIDColumn:        c.Input.Columns.Unit,
		AllowUnknownMonths: c.Input.AllowUnknownMonths,
	}
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
