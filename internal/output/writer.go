// Package output persists generated tables as flat files (CSV, optionally
// xz-compressed, or XLSX) and records what was written in a manifest.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBufferSize is the write buffer used when Config.BufferSize is unset
const DefaultBufferSize = 64 * 1024

var errWriterClosed = errors.New("writer is closed")

// Format is the on-disk table format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats
var Formats = []Format{FormatCSV, FormatXLSX}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected csv or xlsx)", s)
}

// TableWriter writes one table: a header row followed by data rows.
type TableWriter interface {
	WriteHeader(columns []string) error
	WriteRow(values []any) error
	Close() error
	RowCount() int64
	Path() string
}

// Config holds settings for the table writers
type Config struct {
	// Directory where the files will be created
	Dir string
	// csv (default) or xlsx
	Format Format
	// Enable xz compression (creates .csv.xz files); csv only
	Compress bool
	// XZ compression preset 0-9 (default: 6). Higher = smaller but slower
	XZPreset int
	// Buffer size in bytes (default: 64KB)
	BufferSize int
}

// Extension returns the file extension produced by cfg
func (cfg Config) Extension() string {
	switch {
	case cfg.Format == FormatXLSX:
		return ".xlsx"
	case cfg.Compress:
		return ".csv.xz"
	default:
		return ".csv"
	}
}

// Validate checks that the configuration can be satisfied
func (cfg Config) Validate() error {
	if _, err := ParseFormat(string(cfg.formatOrDefault())); err != nil {
		return err
	}
	if cfg.Compress && cfg.formatOrDefault() != FormatCSV {
		return fmt.Errorf("compression is only supported for csv output")
	}
	return nil
}

func (cfg Config) formatOrDefault() Format {
	if cfg.Format == "" {
		return FormatCSV
	}
	return cfg.Format
}

// Open creates the writer for table name according to cfg.
func Open(cfg Config, name string) (TableWriter, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(cfg.Dir, name+cfg.Extension())
	switch cfg.formatOrDefault() {
	case FormatXLSX:
		return NewXLSXWriter(path, name)
	case FormatCSV:
		return NewCSVWriter(path, cfg.BufferSize, cfg.Compress, cfg.XZPreset)
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}
