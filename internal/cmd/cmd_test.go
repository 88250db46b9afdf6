package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfong/fingen/internal/generator"
	"github.com/willfong/fingen/internal/output"
)

func TestSchemaSQL(t *testing.T) {
	tables, err := schemaSQL("tables")
	require.NoError(t, err)
	indexes, err := schemaSQL("indexes")
	require.NoError(t, err)
	full, err := schemaSQL("full")
	require.NoError(t, err)

	for _, name := range append(append([]string{}, generator.DimensionTables...), generator.FactTables...) {
		assert.Contains(t, string(tables), "CREATE TABLE IF NOT EXISTS "+name+" (", name)
	}
	assert.NotContains(t, string(tables), "FOREIGN KEY")
	assert.Contains(t, string(indexes), "FOREIGN KEY")
	assert.Len(t, full, len(tables)+len(indexes)+1)

	_, err = schemaSQL("views")
	assert.ErrorContains(t, err, "unknown schema type")
}

func TestSchemaCommandWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join("out", "schema.sql")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"schema", "tables", "-o", path, "--no-color"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
		schemaOutputFile = ""
	})
	require.NoError(t, Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := schemaSQL("tables")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, stderr.String(), "Schema written to")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("fingen.yaml", []byte("counts:\n  sales: 150\n"), 0644))
	t.Setenv("FINGEN_COUNTS_PURCHASES", "120")

	rootCmd.SetArgs([]string{"generate", "--no-color",
		"--output", "data", "--start", "2024-01-01", "--end", "2024-03-31",
		"--transactions", "500", "--production", "50", "--cash-flow", "80",
		"--employees", "20", "--cost-centers", "6",
	})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, Execute())

	m, err := output.ReadManifest(filepath.Join(dir, "data", output.ManifestFile))
	require.NoError(t, err)
	assert.EqualValues(t, 42, m.Seed)

	rows := map[string]int64{}
	for _, tbl := range m.Tables {
		rows[tbl.Name] = tbl.Rows
	}
	assert.EqualValues(t, 500, rows[generator.TableTransactions])
	assert.EqualValues(t, 150, rows[generator.TableSales])
	assert.EqualValues(t, 120, rows[generator.TablePurchases])
	assert.EqualValues(t, 6*8*3, rows[generator.TableBudget])

	header, err := os.ReadFile(filepath.Join(dir, "data", generator.TableBudget+".csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(header), "\ufeffstredisko_id,"))
}

func TestVerboseFlagEnablesDebugLogging(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"version", "-v", "--no-color"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
		log.SetLevel(logrus.WarnLevel)
	})
	require.NoError(t, Execute())

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Contains(t, stdout.String(), "fingen")
}
