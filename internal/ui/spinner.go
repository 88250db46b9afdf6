package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a single status line while the dimension tables are
// built. Without styling it prints the label once and the result after it.
type Spinner struct {
	ui    *UI
	out   io.Writer
	label string

	mu      sync.Mutex
	detail  string
	running bool
	ended   bool
	quit    chan struct{}
	exited  chan struct{}
}

// NewSpinner creates a stopped spinner writing to stdout.
func (u *UI) NewSpinner(label string) *Spinner {
	return &Spinner{ui: u, out: os.Stdout, label: label}
}

// Start begins the animation. Later calls do nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.ended {
		return
	}
	s.running = true

	if !s.ui.shouldStyle() {
		fmt.Fprintf(s.out, "%s...", s.label)
		return
	}
	s.quit = make(chan struct{})
	s.exited = make(chan struct{})
	go s.animate()
}

func (s *Spinner) animate() {
	defer close(s.exited)

	style := lipgloss.NewStyle().Foreground(ColorPrimary)
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for frame := 0; ; frame = (frame + 1) % len(spinnerFrames) {
		select {
		case <-s.quit:
			return
		case <-tick.C:
		}
		s.mu.Lock()
		fmt.Fprintf(s.out, "\r\033[K%s %s... %s",
			style.Render(spinnerFrames[frame]), s.label, StyleMuted.Render(s.detail))
		s.mu.Unlock()
	}
}

// SetDetail replaces the muted text shown after the label.
func (s *Spinner) SetDetail(detail string) {
	s.mu.Lock()
	s.detail = detail
	s.mu.Unlock()
}

// Success stops the spinner with msg after the label.
func (s *Spinner) Success(msg string) {
	s.stop(StatusSuccess, msg)
}

// Error stops the spinner with msg rendered as an error.
func (s *Spinner) Error(msg string) {
	s.stop(StatusError, msg)
}

// stop ends a running spinner exactly once and prints its last line.
func (s *Spinner) stop(status Status, msg string) {
	s.mu.Lock()
	if !s.running || s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	quit, exited := s.quit, s.exited
	s.mu.Unlock()

	if !s.ui.shouldStyle() {
		fmt.Fprintf(s.out, " %s\n", msg)
		return
	}
	close(quit)
	<-exited
	if status == StatusError {
		msg = StyleError.Render(msg)
	}
	fmt.Fprintf(s.out, "\r\033[K%s %s... %s\n", statusSymbol(status), s.label, msg)
}
