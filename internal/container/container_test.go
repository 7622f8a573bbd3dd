package container

import (
	"testing"

	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(locale string) *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Input.Sheets.Deposits = "INFORME BANCARIO"
	cfg.Input.Sheets.Expensas = "EXPENSAS"
	cfg.Input.Sheets.Water = "COSTO AGUA DEPAS"
	cfg.Input.Columns.Unit = "Departamento"
	cfg.Input.Columns.Date = "Fecha"
	cfg.Input.Columns.Amount = "Monto"
	cfg.Report.Format = "pdf"
	cfg.Report.Locale = locale
	cfg.Report.Currency = "Bs."
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "spanish report",
			config: testConfig("es"),
		},
		{
			name:   "english report",
			config: testConfig("en"),
		},
		{
			name:        "unknown locale",
			config:      testConfig("fr"),
			expectError: true,
			errorMsg:    "unsupported month locale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.Equal(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetReader())
			assert.NotNil(t, c.GetComposer())
			assert.NotNil(t, c.GetService())
			assert.Equal(t, tt.config.Report.Locale, c.GetMonthOrder().Locale())
			assert.NoError(t, c.Close())
		})
	}
}

func TestContainer_RegistersAllFormats(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig("es"), logging.NewMockLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{report.FormatCSV, report.FormatJSON, report.FormatPDF}, c.GetGenerator().Formats())
	assert.Equal(t, "Informe por departamento", c.GetTexts().DocumentTitle)
}
