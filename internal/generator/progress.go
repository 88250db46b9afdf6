package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/willfong/fingen/internal/output"
)

// ProgressReporter prints progress lines for one streaming table. On a
// terminal it redraws a single line with a bar; otherwise it appends a
// line at most every interval.
type ProgressReporter struct {
	mu       sync.Mutex
	w        io.Writer
	label    string
	total    int64
	interval time.Duration
	tty      bool

	current int64
	started time.Time
	drawn   time.Time
	done    bool
}

// ProgressConfig holds settings for the progress reporter
type ProgressConfig struct {
	// Rows expected; 0 prints a plain counter
	Total int64
	// Table name shown in front of the counts
	Label string
	// Defaults to os.Stderr
	Output io.Writer
	// Minimum time between lines (default 100ms)
	UpdateFrequency time.Duration
}

// NewProgressReporter creates a reporter and starts its clock
func NewProgressReporter(cfg ProgressConfig) *ProgressReporter {
	p := &ProgressReporter{
		w:        cfg.Output,
		label:    cfg.Label,
		total:    cfg.Total,
		interval: cfg.UpdateFrequency,
		started:  time.Now(),
	}
	if p.w == nil {
		p.w = os.Stderr
	}
	if p.interval <= 0 {
		p.interval = 100 * time.Millisecond
	}
	if f, ok := p.w.(*os.File); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// Set records that n rows are written and redraws when due
func (p *ProgressReporter) Set(n int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = n
	if now := time.Now(); now.Sub(p.drawn) >= p.interval {
		p.drawn = now
		p.line(p.counts())
	}
}

// rate is rows per second since the reporter started
func (p *ProgressReporter) rate() float64 {
	elapsed := time.Since(p.started).Seconds()
	if elapsed < 0.01 {
		return 0
	}
	return float64(p.current) / elapsed
}

func (p *ProgressReporter) counts() string {
	rate := p.rate()
	if p.total <= 0 {
		return fmt.Sprintf("  %s: %d (%.0f/s)", p.label, p.current, rate)
	}

	frac := float64(p.current) / float64(p.total)
	s := fmt.Sprintf("  %s: %d/%d (%.1f%%)", p.label, p.current, p.total, frac*100)
	if p.tty {
		s += " " + progressBar(frac, 20)
	}
	if rate > 0 && p.current < p.total {
		eta := time.Duration(float64(p.total-p.current) / rate * float64(time.Second))
		s += " ETA: " + formatDuration(eta)
	}
	return s + fmt.Sprintf(" (%.0f/s)", rate)
}

// line writes text, overwriting the previous line on a terminal
func (p *ProgressReporter) line(text string) {
	if p.tty {
		fmt.Fprintf(p.w, "\r%s\033[K", text)
		return
	}
	fmt.Fprintln(p.w, text)
}

// progressBar renders frac (0..1) as an ASCII bar of the given width
func progressBar(frac float64, width int) string {
	filled := min(max(int(frac*float64(width)), 0), width)
	bar := strings.Repeat("=", filled)
	if filled < width {
		bar += ">" + strings.Repeat(" ", width-filled-1)
	}
	return "[" + bar + "]"
}

// Finish prints the final row and column counts of the table once
func (p *ProgressReporter) Finish(columns int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}
	p.done = true

	text := fmt.Sprintf("  ✓ %s: %d rows, %d cols in %s (%.0f/s)",
		p.label, p.current, columns, formatDuration(time.Since(p.started)), p.rate())
	if p.tty {
		fmt.Fprintf(p.w, "\r%s\033[K\n", text)
		return
	}
	fmt.Fprintln(p.w, text)
}

// formatDuration prints d at the precision that matters for its size
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

// Observer is notified as the orchestrator writes tables. Calls for
// different tables may arrive concurrently.
type Observer interface {
	TableStarted(name string, total int64)
	TableProgress(name string, done, total int64)
	TableDone(stats output.TableStats)
	TableFailed(name string, err error)
}

// PlainObserver renders one ProgressReporter line per streaming table.
// It is used when the terminal UI is not available.
type PlainObserver struct {
	mu        sync.Mutex
	output    io.Writer
	reporters map[string]*ProgressReporter
}

// NewPlainObserver creates an observer writing to output (default stderr)
func NewPlainObserver(w io.Writer) *PlainObserver {
	if w == nil {
		w = os.Stderr
	}
	return &PlainObserver{output: w, reporters: make(map[string]*ProgressReporter)}
}

// plainProgressMin is the smallest table that gets progress lines
const plainProgressMin = 10000

func (o *PlainObserver) TableStarted(name string, total int64) {
	if total < plainProgressMin {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reporters[name] = NewProgressReporter(ProgressConfig{
		Total:  total,
		Label:  name,
		Output: o.output,
	})
}

func (o *PlainObserver) TableProgress(name string, done, _ int64) {
	if r := o.reporter(name); r != nil {
		r.Set(done)
	}
}

func (o *PlainObserver) TableDone(stats output.TableStats) {
	if r := o.reporter(stats.Name); r != nil {
		r.Set(stats.Rows)
		r.Finish(stats.Columns)
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.output, "  ✓ %s: %d rows, %d cols\n", stats.Name, stats.Rows, stats.Columns)
}

func (o *PlainObserver) TableFailed(name string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.output, "  ✗ %s: FAILED: %v\n", name, err)
}

func (o *PlainObserver) reporter(name string) *ProgressReporter {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reporters[name]
}

type nopObserver struct{}

func (nopObserver) TableStarted(string, int64)         {}
func (nopObserver) TableProgress(string, int64, int64) {}
func (nopObserver) TableDone(output.TableStats)        {}
func (nopObserver) TableFailed(string, error)          {}
