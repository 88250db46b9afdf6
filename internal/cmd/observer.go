package cmd

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/willfong/fingen/internal/generator"
	"github.com/willfong/fingen/internal/output"
	"github.com/willfong/fingen/internal/ui"
)

// runObserver is a generator.Observer that needs a final redraw
type runObserver interface {
	generator.Observer
	Finish()
}

// newObserver picks the live terminal display when stdout is a styled
// terminal and plain progress lines otherwise.
func newObserver(u *ui.UI) runObserver {
	if u.IsTTY && !u.NoColor {
		return newTTYObserver(u)
	}
	return plainObserver{generator.NewPlainObserver(os.Stdout)}
}

type plainObserver struct {
	*generator.PlainObserver
}

func (plainObserver) Finish() {}

// ttyObserver shows a spinner while the dimension tables are built and
// one progress bar per fact table after that.
type ttyObserver struct {
	u     *ui.UI
	mu    sync.Mutex
	spin  *ui.Spinner
	dims  []output.TableStats
	board *ui.FactBoard
}

func newTTYObserver(u *ui.UI) *ttyObserver {
	return &ttyObserver{u: u, board: u.NewFactBoard()}
}

func isFact(name string) bool {
	return slices.Contains(generator.FactTables, name)
}

func (o *ttyObserver) TableStarted(name string, total int64) {
	if !isFact(name) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.spin == nil {
			o.spin = o.u.NewSpinner("Generating dimension tables")
			o.spin.Start()
		}
		o.spin.SetDetail(name)
		return
	}

	o.finishDimensions()
	o.board.Track(name, total)
}

func (o *ttyObserver) TableProgress(name string, done, _ int64) {
	if isFact(name) {
		o.board.Set(name, done)
	}
}

func (o *ttyObserver) TableDone(stats output.TableStats) {
	if !isFact(stats.Name) {
		o.mu.Lock()
		o.dims = append(o.dims, stats)
		o.mu.Unlock()
		return
	}
	o.board.Done(stats.Name, fmt.Sprintf("%s rows, %d cols in %s",
		ui.FormatCount(stats.Rows), stats.Columns, ui.FormatDuration(stats.Duration)))
}

func (o *ttyObserver) TableFailed(name string, err error) {
	if !isFact(name) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.spin != nil {
			o.spin.Error(fmt.Sprintf("%s: %v", name, err))
		}
		return
	}
	o.board.Fail(name, err)
}

// finishDimensions stops the spinner and lists the dimension tables
func (o *ttyObserver) finishDimensions() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.spin == nil {
		return
	}
	o.spin.Success(fmt.Sprintf("%d tables", len(o.dims)))
	for _, st := range o.dims {
		fmt.Println(o.u.TableRow(st.Name, fmt.Sprintf("%d rows, %d cols", st.Rows, st.Columns), ui.StatusSuccess))
	}
	fmt.Println()
	o.spin = nil
}

func (o *ttyObserver) Finish() {
	o.finishDimensions()
	o.board.Close()
}
