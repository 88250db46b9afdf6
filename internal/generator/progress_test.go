package generator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willfong/fingen/internal/output"
)

func TestPlainObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewPlainObserver(&buf)

	obs.TableStarted(TableRegions, 10)
	obs.TableDone(output.TableStats{Name: TableRegions, Rows: 10, Columns: 3})

	obs.TableStarted(TableTransactions, 50000)
	obs.TableProgress(TableTransactions, 25000, 50000)
	obs.TableDone(output.TableStats{Name: TableTransactions, Rows: 50000, Columns: 18})

	obs.TableFailed(TableBudget, errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "  ✓ dim_regiony: 10 rows, 3 cols\n")
	assert.Contains(t, out, "fact_transakce: 25000/50000 (50.0%)")
	assert.Contains(t, out, "  ✓ fact_transakce: 50000 rows, 18 cols in ")
	assert.Contains(t, out, "  ✗ fact_budget: FAILED: disk full\n")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0ms", formatDuration(0))
	assert.Equal(t, "2.5s", formatDuration(2500e6))
	assert.Equal(t, "1m5s", formatDuration(65e9))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[>    ]", progressBar(0, 5))
	assert.Equal(t, "[==>  ]", progressBar(0.5, 5))
	assert.Equal(t, "[=====]", progressBar(1, 5))
	assert.Equal(t, "[=====]", progressBar(1.7, 5))
}
