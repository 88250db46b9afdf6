package output

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// utf8BOM lets spreadsheet tools detect the encoding of Czech text
const utf8BOM = "\ufeff"

// CSVWriter streams one table as comma separated UTF-8 text with a BOM.
// Rows go straight to the buffered destination so memory stays flat for
// any table size. A CSVWriter belongs to a single table and a single
// goroutine.
type CSVWriter struct {
	dest io.WriteCloser // *os.File or *XZWriter
	buf  *bufio.Writer
	csv  *csv.Writer
	path string
	rows int64
	done bool
}

// NewCSVWriter creates path, piping it through xz when compress is set,
// and writes the BOM.
func NewCSVWriter(path string, bufSize int, compress bool, xzPreset int) (*CSVWriter, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	var dest io.WriteCloser
	if compress {
		xw, err := NewXZWriter(path, xzPreset)
		if err != nil {
			return nil, err
		}
		dest = xw
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create file %s: %w", path, err)
		}
		dest = f
	}

	w := &CSVWriter{dest: dest, buf: bufio.NewWriterSize(dest, bufSize), path: path}
	w.csv = csv.NewWriter(w.buf)
	if _, err := w.buf.WriteString(utf8BOM); err != nil {
		dest.Close()
		return nil, fmt.Errorf("failed to write BOM: %w", err)
	}
	return w, nil
}

// WriteHeader writes the column names. It is not counted as a row.
func (w *CSVWriter) WriteHeader(columns []string) error {
	if w.done {
		return errWriterClosed
	}
	return w.csv.Write(columns)
}

// WriteRow formats values with FormatRow and appends them.
func (w *CSVWriter) WriteRow(values []any) error {
	if w.done {
		return errWriterClosed
	}
	if err := w.csv.Write(FormatRow(values)); err != nil {
		return fmt.Errorf("failed to write row %d: %w", w.rows+1, err)
	}
	w.rows++
	return nil
}

// Close flushes everything and closes the destination. The destination
// is closed even when flushing fails.
func (w *CSVWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	w.csv.Flush()
	flushErr := w.csv.Error()
	if flushErr == nil {
		flushErr = w.buf.Flush()
	}
	return errors.Join(flushErr, w.dest.Close())
}

// RowCount returns the number of data rows written
func (w *CSVWriter) RowCount() int64 {
	return w.rows
}

// Path returns the file path, ending in .csv or .csv.xz
func (w *CSVWriter) Path() string {
	return w.path
}
