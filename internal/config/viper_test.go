package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "INFORME BANCARIO", config.Input.Sheets.Deposits)
	assert.Equal(t, "EXPENSAS", config.Input.Sheets.Expensas)
	assert.Equal(t, "COSTO AGUA DEPAS", config.Input.Sheets.Water)
	assert.Equal(t, "Departamento", config.Input.Columns.Unit)
	assert.Equal(t, "Monto", config.Input.Columns.Amount)
	assert.False(t, config.Input.AllowUnknownMonths)
	assert.Equal(t, "pdf", config.Report.Format)
	assert.Equal(t, "es", config.Report.Locale)
	assert.Equal(t, "Bs.", config.Report.Currency)
	assert.Equal(t, "desde junio hasta el mes actual", config.Report.PeriodLabel)
	assert.Equal(t, DefaultUnits, config.Report.Units)
	assert.Empty(t, config.Report.ChartDir)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
  format: "json"
input:
  sheets:
    deposits: "BANCO"
  allow_unknown_months: true
report:
  format: "csv"
  locale: "en"
  units: ["5A", "5B"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "BANCO", config.Input.Sheets.Deposits)
	assert.Equal(t, "EXPENSAS", config.Input.Sheets.Expensas)
	assert.True(t, config.Input.AllowUnknownMonths)
	assert.Equal(t, "csv", config.Report.Format)
	assert.Equal(t, "en", config.Report.Locale)
	assert.Equal(t, []string{"5A", "5B"}, config.Report.Units)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
report:
  currency: "USD"
  format: "json"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("EXPENSAS_LOG_LEVEL", "error")
	t.Setenv("EXPENSAS_REPORT_FORMAT", "csv")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)     // env var wins
	assert.Equal(t, "csv", config.Report.Format)   // env var wins
	assert.Equal(t, "USD", config.Report.Currency) // config file value
}

func TestInitializeConfig_InvalidFromEnv(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("EXPENSAS_REPORT_FORMAT", "docx")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid report format",
			modifyConfig: func(c *Config) { c.Report.Format = "docx" },
			expectError:  "invalid report format",
		},
		{
			name:         "unsupported locale",
			modifyConfig: func(c *Config) { c.Report.Locale = "fr" },
			expectError:  "fr",
		},
		{
			name:         "missing sheet name",
			modifyConfig: func(c *Config) { c.Input.Sheets.Water = "" },
			expectError:  "input.sheets",
		},
		{
			name:         "blank amount column",
			modifyConfig: func(c *Config) { c.Input.Columns.Amount = " " },
			expectError:  "input.columns.amount must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_ValidValues(t *testing.T) {
	config := validConfig()
	config.Report.Format = "JSON"
	assert.NoError(t, validateConfig(config))
}

func TestConfig_Layout(t *testing.T) {
	config := validConfig()
	config.Input.Columns.Unit = "Depto"
	config.Input.AllowUnknownMonths = true

	layout := config.Layout()

	assert.Equal(t, "INFORME BANCARIO", layout.Sheets.Deposits)
	assert.Equal(t, "Depto", layout.DepositColumns.Unit)
	assert.Equal(t, "Depto", layout.FeeIDColumn)
	assert.True(t, layout.AllowUnknownMonths)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		format        string
		expectedLevel logrus.Level
		jsonFormatter bool
	}{
		{"debug text", "debug", "text", logrus.DebugLevel, false},
		{"warn json", "warn", "json", logrus.WarnLevel, true},
		{"invalid level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)

			assert.Equal(t, tt.expectedLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.jsonFormatter, isJSON)
		})
	}
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Input.Sheets.Deposits = "INFORME BANCARIO"
	c.Input.Sheets.Expensas = "EXPENSAS"
	c.Input.Sheets.Water = "COSTO AGUA DEPAS"
	c.Input.Columns.Unit = "Departamento"
	c.Input.Columns.Date = "Fecha"
	c.Input.Columns.Amount = "Monto"
	c.Report.Format = "pdf"
	c.Report.Locale = "es"
	return c
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EXPENSAS_LOG_LEVEL",
		"EXPENSAS_LOG_FORMAT",
		"EXPENSAS_REPORT_FORMAT",
		"EXPENSAS_REPORT_LOCALE",
		"EXPENSAS_REPORT_UNITS",
		"EXPENSAS_REPORT_CURRENCY",
		"EXPENSAS_INPUT_PATH",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("HOME", t.TempDir())
}
