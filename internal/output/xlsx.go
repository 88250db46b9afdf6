package output

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXWriter writes one table into its own workbook through the excelize
// stream writer, so rows are not held in memory.
type XLSXWriter struct {
	file      *excelize.File
	stream    *excelize.StreamWriter
	path      string
	nextRow   int
	rowCount  int64
	headerSty int
	closed    bool
}

// maxXLSXRows is the sheet row limit including the header row
const maxXLSXRows = 1048576

// NewXLSXWriter creates a workbook whose single sheet is named after the table.
func NewXLSXWriter(path, sheet string) (*XLSXWriter, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	return &XLSXWriter{
		file:      f,
		stream:    sw,
		path:      path,
		nextRow:   1,
		headerSty: style,
	}, nil
}

// WriteHeader writes the column names in bold
func (w *XLSXWriter) WriteHeader(columns []string) error {
	cells := make([]any, len(columns))
	for i, c := range columns {
		cells[i] = c
	}
	return w.setRow(cells, excelize.RowOpts{StyleID: w.headerSty})
}

// WriteRow writes one data row. Decimals become numbers, dates ISO strings.
func (w *XLSXWriter) WriteRow(values []any) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = xlsxCell(v)
	}
	if err := w.setRow(cells); err != nil {
		return err
	}
	w.rowCount++
	return nil
}

func (w *XLSXWriter) setRow(cells []any, opts ...excelize.RowOpts) error {
	if w.closed {
		return errWriterClosed
	}
	if w.nextRow > maxXLSXRows {
		return fmt.Errorf("sheet row limit of %d exceeded", maxXLSXRows)
	}

	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return err
	}
	if err := w.stream.SetRow(cell, cells, opts...); err != nil {
		return fmt.Errorf("failed to write row %d: %w", w.nextRow, err)
	}
	w.nextRow++
	return nil
}

func xlsxCell(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case time.Time:
		return FormatDate(x)
	default:
		return v
	}
}

// Close flushes the stream and saves the workbook
func (w *XLSXWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.stream.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("xlsx flush error: %w", err)
	}
	if err := w.file.SaveAs(w.path); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}
	return w.file.Close()
}

// RowCount returns the number of data rows written (excludes header).
func (w *XLSXWriter) RowCount() int64 {
	return w.rowCount
}

// Path returns the workbook path
func (w *XLSXWriter) Path() string {
	return w.path
}
