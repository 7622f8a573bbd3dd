package template_test

import (
	"path/filepath"
	"testing"

	"fjacquet/expensas-report/cmd/template"
	"fjacquet/expensas-report/internal/config"
	"fjacquet/expensas-report/internal/container"
	"fjacquet/expensas-report/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
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

func TestTemplateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "template", template.Cmd.Use)
	assert.Contains(t, template.Cmd.Short, "empty input workbook")
	assert.NotNil(t, template.Cmd.Run)
	assert.NotNil(t, template.Cmd.Flags().Lookup("units-file"))
}

func TestTemplateCommand_Run(t *testing.T) {
	c := newContainer(t)
	path := filepath.Join(t.TempDir(), "plantilla.xlsx")

	require.NoError(t, template.Run(c, path, ""))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"INFORME BANCARIO", "EXPENSAS", "COSTO AGUA DEPAS"}, f.GetSheetList())
	rows, err := f.GetRows("EXPENSAS")
	require.NoError(t, err)
	require.Len(t, rows, 51)
	assert.Equal(t, "Departamento", rows[0][0])
	assert.Equal(t, "enero", rows[0][1])
	assert.Equal(t, "T5", rows[1][0])
}

func TestTemplateCommand_Run_NoOutput(t *testing.T) {
	c := newContainer(t)

	err := template.Run(c, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}
