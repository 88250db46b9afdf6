package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// redrawInterval limits how often Set repaints the terminal
const redrawInterval = 100 * time.Millisecond

// FactBoard shows one live line per fact table while facts are written,
// possibly several at once. Without styling it stays silent until Close.
type FactBoard struct {
	ui  *UI
	out io.Writer

	mu     sync.Mutex
	rows   map[string]*boardRow
	order  []string
	drawn  int // lines painted by the previous redraw
	lastAt time.Time
}

type boardRow struct {
	name    string
	total   int64
	current int64
	started time.Time
	status  Status
	summary string
	err     error
	bar     progress.Model
}

// NewFactBoard creates an empty board writing to stdout.
func (u *UI) NewFactBoard() *FactBoard {
	return &FactBoard{ui: u, out: os.Stdout, rows: make(map[string]*boardRow)}
}

// Track adds table name with its expected row count and marks it running.
// Tracking a known name starts it over.
func (b *FactBoard) Track(name string, total int64) {
	b.mu.Lock()
	if _, ok := b.rows[name]; !ok {
		b.order = append(b.order, name)
	}
	b.rows[name] = &boardRow{
		name:    name,
		total:   total,
		started: time.Now(),
		status:  StatusProgress,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(25),
			progress.WithoutPercentage(),
		),
	}
	b.redraw()
	b.mu.Unlock()
}

// Set records rows written so far. Repaints are throttled.
func (b *FactBoard) Set(name string, current int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r, ok := b.rows[name]; ok {
		r.current = current
	}
	if time.Since(b.lastAt) >= redrawInterval {
		b.redraw()
	}
}

// Done marks name as written and shows summary in place of its bar.
func (b *FactBoard) Done(name, summary string) {
	b.update(name, func(r *boardRow) {
		r.status = StatusSuccess
		r.summary = summary
		r.current = r.total
	})
}

// Fail marks name as failed with err.
func (b *FactBoard) Fail(name string, err error) {
	b.update(name, func(r *boardRow) {
		r.status = StatusError
		r.err = err
	})
}

func (b *FactBoard) update(name string, fn func(*boardRow)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r, ok := b.rows[name]; ok {
		fn(r)
	}
	b.redraw()
}

// Close paints the final state. Without styling it prints one TableRow
// per finished table instead.
func (b *FactBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ui.shouldStyle() {
		b.redraw()
		return
	}
	for _, name := range b.order {
		r := b.rows[name]
		switch r.status {
		case StatusSuccess:
			fmt.Fprintln(b.out, b.ui.TableRow(r.name, r.summary, StatusSuccess))
		case StatusError:
			fmt.Fprintln(b.out, b.ui.TableRow(r.name, fmt.Sprint(r.err), StatusError))
		}
	}
}

// redraw repaints every line over the previous paint. Callers hold mu.
func (b *FactBoard) redraw() {
	if !b.ui.shouldStyle() {
		return
	}
	if b.drawn > 0 {
		fmt.Fprintf(b.out, "\033[%dA", b.drawn)
	}
	for _, name := range b.order {
		fmt.Fprintf(b.out, "\033[K%s\n", b.line(b.rows[name]))
	}
	b.drawn = len(b.order)
	b.lastAt = time.Now()
}

func (b *FactBoard) line(r *boardRow) string {
	var detail string
	switch r.status {
	case StatusSuccess:
		detail = r.summary
	case StatusError:
		detail = StyleError.Render(fmt.Sprint(r.err))
	default:
		if r.total <= 0 {
			detail = StyleMuted.Render("generating...")
			break
		}
		frac := min(float64(r.current)/float64(r.total), 1)
		perSec := float64(r.current) / max(time.Since(r.started).Seconds(), 0.001)
		detail = r.bar.ViewAs(frac) + " " +
			StyleMuted.Render(FormatCount(r.current)+"/"+FormatCount(r.total)) + " " +
			FormatCount(int64(perSec)) + "/s"
	}
	name := lipgloss.NewStyle().Width(NameWidth).Render(r.name)
	return "  " + statusSymbol(r.status) + " " + name + " " + detail
}

// FormatDuration renders d with the precision that matters for its size.
func FormatDuration(d time.Duration) string {
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

// FormatCount abbreviates a row count with a K or M suffix.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	}
	return fmt.Sprint(n)
}
