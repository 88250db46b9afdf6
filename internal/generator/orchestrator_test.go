package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfong/fingen/internal/output"
)

func smallConfig(t *testing.T, dir string) OrchestratorConfig {
	cfg := testConfig(t, dir)
	cfg.Counts.Transactions = 3000
	cfg.Counts.Sales = 800
	cfg.Counts.Purchases = 600
	cfg.Counts.Production = 300
	cfg.Counts.CashFlow = 700
	cfg.Counts.Employees = 40
	cfg.Counts.CostCenters = 12
	return cfg
}

func runOrchestrator(t *testing.T, cfg OrchestratorConfig) *GenerationResult {
	t.Helper()
	logger, _ := test.NewNullLogger()
	o, err := NewOrchestrator(cfg, OrchestratorOptions{Logger: logger})
	require.NoError(t, err)
	result, err := o.Run(context.Background())
	require.NoError(t, err)
	return result
}

// recordingObserver counts observer callbacks per table
type recordingObserver struct {
	mu      sync.Mutex
	started map[string]int64
	done    map[string]output.TableStats
	updates atomic.Int64
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{started: map[string]int64{}, done: map[string]output.TableStats{}}
}

func (r *recordingObserver) TableStarted(name string, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started[name] = total
}

func (r *recordingObserver) TableProgress(string, int64, int64) { r.updates.Add(1) }

func (r *recordingObserver) TableDone(stats output.TableStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done[stats.Name] = stats
}

func (r *recordingObserver) TableFailed(string, error) {}

func TestOrchestratorRun(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(t, dir)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	obs := newRecordingObserver()

	o, err := NewOrchestrator(cfg, OrchestratorOptions{Logger: logger, Observer: obs})
	require.NoError(t, err)
	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(42), result.Seed)
	assert.Equal(t, 17, result.Files)
	assert.Len(t, obs.done, 17)
	assert.Positive(t, obs.updates.Load())

	for _, name := range append(append([]string{}, DimensionTables...), FactTables...) {
		path := filepath.Join(dir, name+".csv")
		assert.FileExists(t, path)
		assert.Contains(t, obs.started, name)
	}

	rows := map[string]int64{}
	for _, st := range result.Tables {
		rows[st.Name] = st.Rows
	}
	assert.EqualValues(t, 3000, rows[TableTransactions])
	assert.EqualValues(t, 12*8*36, rows[TableBudget])
	assert.EqualValues(t, 30, rows[TableBranches])
	assert.Equal(t, obs.started[TableBudget], rows[TableBudget])

	m, err := output.ReadManifest(result.ManifestPath)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", m.StartDate)
	assert.Equal(t, result.TotalRows, m.TotalRows)
	assert.Len(t, m.Tables, 17)

	var tableEntries int
	for _, e := range hook.AllEntries() {
		if _, ok := e.Data["table"]; ok {
			tableEntries++
		}
	}
	assert.Equal(t, 17, tableEntries)
	assert.Equal(t, "Generation complete", hook.LastEntry().Message)
}

// readTables returns the content of every table file in dir
func readTables(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	out := map[string][]byte{}
	for _, name := range append(append([]string{}, DimensionTables...), FactTables...) {
		b, err := os.ReadFile(filepath.Join(dir, name+".csv"))
		require.NoError(t, err)
		out[name] = b
	}
	return out
}

func TestReproducibleOutput(t *testing.T) {
	base := smallConfig(t, t.TempDir())
	runOrchestrator(t, base)
	want := readTables(t, base.Output.Dir)

	variants := map[string]func(*OrchestratorConfig){
		"same seed":       func(*OrchestratorConfig) {},
		"parallel":        func(c *OrchestratorConfig) { c.Workers = 4 },
		"tiny chunks":     func(c *OrchestratorConfig) { c.ChunkSize = 13 },
		"parallel chunks": func(c *OrchestratorConfig) { c.Workers = 7; c.ChunkSize = 100000 },
	}
	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig(t, t.TempDir())
			mutate(&cfg)
			runOrchestrator(t, cfg)
			got := readTables(t, cfg.Output.Dir)
			for table, b := range want {
				assert.True(t, bytes.Equal(b, got[table]), "%s differs", table)
			}
		})
	}

	t.Run("different seed", func(t *testing.T) {
		cfg := smallConfig(t, t.TempDir())
		cfg.Seed = 7
		runOrchestrator(t, cfg)
		got := readTables(t, cfg.Output.Dir)
		assert.False(t, bytes.Equal(want[TableTransactions], got[TableTransactions]))
	})
}

func TestOrchestratorXLSX(t *testing.T) {
	cfg := smallConfig(t, t.TempDir())
	cfg.Output.Format = output.FormatXLSX
	cfg.Counts.Transactions = 200
	result := runOrchestrator(t, cfg)

	assert.Equal(t, 17, result.Files)
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, TableTransactions+".xlsx"))
}

func TestOrchestratorOutputError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := smallConfig(t, blocker)
	logger, _ := test.NewNullLogger()
	o, err := NewOrchestrator(cfg, OrchestratorOptions{Logger: logger})
	require.NoError(t, err)
	_, err = o.Run(context.Background())
	assert.Error(t, err)
}

func TestOrchestratorCancelled(t *testing.T) {
	cfg := smallConfig(t, t.TempDir())
	logger, _ := test.NewNullLogger()
	o, err := NewOrchestrator(cfg, OrchestratorOptions{Logger: logger})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = o.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateFactsRequiresDimensions(t *testing.T) {
	o, err := NewOrchestrator(smallConfig(t, t.TempDir()), OrchestratorOptions{})
	require.NoError(t, err)
	assert.Error(t, o.GenerateFacts(context.Background()))
}

func TestRunTasks(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		var n atomic.Int32
		tasks := make([]Task, 10)
		for i := range tasks {
			tasks[i] = Task{Name: "t", Fn: func(context.Context) error { n.Add(1); return nil }}
		}
		require.NoError(t, RunTasks(context.Background(), 3, tasks))
		assert.EqualValues(t, 10, n.Load())
	})

	t.Run("bounded concurrency", func(t *testing.T) {
		var running, peak atomic.Int32
		tasks := make([]Task, 20)
		for i := range tasks {
			tasks[i] = Task{Name: "t", Fn: func(context.Context) error {
				cur := running.Add(1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				running.Add(-1)
				return nil
			}}
		}
		require.NoError(t, RunTasks(context.Background(), 2, tasks))
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("first error wins", func(t *testing.T) {
		boom := errors.New("boom")
		var after atomic.Int32
		tasks := []Task{
			{Name: "bad", Fn: func(context.Context) error { return boom }},
			{Name: "late", Fn: func(ctx context.Context) error {
				if ctx.Err() == nil {
					after.Add(1)
				}
				return nil
			}},
		}
		err := RunTasks(context.Background(), 1, tasks)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "bad")
		assert.Zero(t, after.Load())
	})
}
