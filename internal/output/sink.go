package output

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/willfong/fingen/internal/models"
)

// TableStats describes one written table
type TableStats struct {
	Name     string        `yaml:"name"`
	Rows     int64         `yaml:"rows"`
	Columns  int           `yaml:"columns"`
	Bytes    int64         `yaml:"bytes"`
	Path     string        `yaml:"path"`
	Duration time.Duration `yaml:"-"`
}

// Sink creates table writers in one output directory and keeps track of
// everything written through it. It is safe for concurrent use by
// different tables.
type Sink struct {
	cfg    Config
	mu     sync.Mutex
	tables map[string]TableStats
}

// NewSink validates cfg and prepares the output directory.
func NewSink(cfg Config) (*Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Compress {
		if err := CheckXZAvailable(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Sink{cfg: cfg, tables: make(map[string]TableStats)}, nil
}

// Config returns the sink configuration
func (s *Sink) Config() Config {
	return s.cfg
}

// Table is an open table being streamed to disk
type Table struct {
	sink    *Sink
	name    string
	columns []string
	w       TableWriter
	start   time.Time
}

// Create opens table name and writes its header.
func (s *Sink) Create(name string, columns []string) (*Table, error) {
	w, err := Open(s.cfg, name)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.WriteHeader(columns); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}
	return &Table{sink: s, name: name, columns: columns, w: w, start: time.Now()}, nil
}

// WriteRows appends rows in order. Every row must match the column count.
func (t *Table) WriteRows(rows []models.Record) error {
	for _, r := range rows {
		values := r.Record()
		if len(values) != len(t.columns) {
			return fmt.Errorf("failed to write %s: row has %d values for %d columns", t.name, len(values), len(t.columns))
		}
		if err := t.w.WriteRow(values); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.name, err)
		}
	}
	return nil
}

// Close finishes the file and records its stats with the sink.
func (t *Table) Close() (TableStats, error) {
	if err := t.w.Close(); err != nil {
		return TableStats{}, fmt.Errorf("failed to write %s: %w", t.name, err)
	}

	stats := TableStats{
		Name:     t.name,
		Rows:     t.w.RowCount(),
		Columns:  len(t.columns),
		Path:     t.w.Path(),
		Duration: time.Since(t.start),
	}
	if info, err := os.Stat(stats.Path); err == nil {
		stats.Bytes = info.Size()
	}

	t.sink.mu.Lock()
	t.sink.tables[t.name] = stats
	t.sink.mu.Unlock()

	return stats, nil
}

// Write persists a fully materialized table.
func (s *Sink) Write(name string, columns []string, rows []models.Record) (TableStats, error) {
	t, err := s.Create(name, columns)
	if err != nil {
		return TableStats{}, err
	}
	if err := t.WriteRows(rows); err != nil {
		t.w.Close()
		return TableStats{}, err
	}
	return t.Close()
}

// Stats returns the stats of every closed table ordered by name
func (s *Sink) Stats() []TableStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TableStats, 0, len(s.tables))
	for _, st := range s.tables {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Records converts a typed row slice for Sink.Write
func Records[T models.Record](rows []T) []models.Record {
	out := make([]models.Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
