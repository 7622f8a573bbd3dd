package sheets_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/expensas-report/cmd/sheets"
	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/reporterror"
	"fjacquet/expensas-report/internal/workbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestSheetsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "sheets", sheets.Cmd.Use)
	assert.Contains(t, sheets.Cmd.Short, "sheets of a workbook")
	assert.NotNil(t, sheets.Cmd.Run)
}

func TestSheetsCommand_Run(t *testing.T) {
	c := newContainer(t)
	path := filepath.Join(t.TempDir(), "libro.xlsx")
	require.NoError(t, workbook.WriteTemplate(path, c.GetConfig().Layout(), c.GetMonthOrder(), []string{"1A"}))

	var out bytes.Buffer
	require.NoError(t, sheets.Run(c, path, &out))

	assert.Equal(t, "INFORME BANCARIO  [deposits]\nEXPENSAS  [expensas]\nCOSTO AGUA DEPAS  [water]\n", out.String())
}

func TestSheetsCommand_Run_MissingWorkbook(t *testing.T) {
	c := newContainer(t)

	err := sheets.Run(c, filepath.Join(t.TempDir(), "missing.xlsx"), &bytes.Buffer{})

	var readErr *reporterror.ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestSheetsCommand_Run_NoInput(t *testing.T) {
	c := newContainer(t)
	assert.Error(t, sheets.Run(c, "", &bytes.Buffer{}))
}
