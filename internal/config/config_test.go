package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfong/fingen/internal/output"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	r, err := cfg.DateRange()
	require.NoError(t, err)
	assert.Len(t, r.Months(), 36)
	assert.Equal(t, int64(42), cfg.Generation.Seed)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Counts.Employees = 0
	cfg.Counts.Sales = -5
	cfg.Dates.Start = "2025-06-01"
	cfg.Dates.End = "2025-01-01"
	cfg.Output.Format = "parquet"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "counts.employees must be positive")
	assert.Contains(t, msg, "counts.sales must be positive")
	assert.Contains(t, msg, "before start date")
	assert.Contains(t, msg, "unknown output format")
	assert.Equal(t, 4, strings.Count(msg, "\n  - "))
}

func TestCompressionRequiresCSV(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xlsx"
	cfg.Output.Compress = true
	assert.ErrorContains(t, cfg.Validate(), "compression")
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fingen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dates:
  start: "2024-01-01"
  end: "2024-06-30"
counts:
  transactions: 1000
output:
  format: xlsx
`), 0644))

	t.Setenv("FINGEN_COUNTS_SALES", "250")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("FINGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.Counts.Transactions)
	assert.Equal(t, 250, cfg.Counts.Sales)
	assert.Equal(t, DefaultPurchases, cfg.Counts.Purchases)

	oc, err := cfg.Orchestrator("test")
	require.NoError(t, err)
	assert.Equal(t, output.FormatXLSX, oc.Output.Format)
	assert.Len(t, oc.DateRange.Months(), 6)
	assert.Equal(t, 1000, oc.Counts.Transactions)
	assert.Equal(t, "test", oc.Version)
}
