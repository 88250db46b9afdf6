package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultXZPreset is used when the configured preset is out of range
const DefaultXZPreset = 6

// XZWriter pipes a table through an external xz process into a .xz file.
// xz runs single-threaded so equal input always compresses to equal bytes.
type XZWriter struct {
	file   *os.File
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	path   string
	closed bool
}

// NewXZWriter creates path and starts xz with the given preset (0-9).
func NewXZWriter(path string, preset int) (*XZWriter, error) {
	if preset < 0 || preset > 9 {
		preset = DefaultXZPreset
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	w := &XZWriter{file: file, path: path}
	w.cmd = exec.Command("xz", "--stdout", "--threads=1", fmt.Sprintf("-%d", preset))
	w.cmd.Stdout = file
	w.cmd.Stderr = &w.stderr

	if w.stdin, err = w.cmd.StdinPipe(); err != nil {
		w.discard()
		return nil, fmt.Errorf("failed to create xz stdin pipe: %w", err)
	}
	if err := w.cmd.Start(); err != nil {
		w.discard()
		return nil, fmt.Errorf("failed to start xz: %w", err)
	}
	return w, nil
}

// discard removes a file whose compressor never started
func (w *XZWriter) discard() {
	w.file.Close()
	os.Remove(w.path)
}

// Write streams p to the compressor. Callers serialize writes per table.
func (w *XZWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("xz writer for %s is closed", w.path)
	}
	return w.stdin.Write(p)
}

// Close flushes the last block and waits for xz to exit.
func (w *XZWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	stdinErr := w.stdin.Close()
	waitErr := w.cmd.Wait()
	fileErr := w.file.Close()

	switch {
	case waitErr != nil:
		if msg := strings.TrimSpace(w.stderr.String()); msg != "" {
			return fmt.Errorf("xz failed for %s: %w: %s", w.path, waitErr, msg)
		}
		return fmt.Errorf("xz failed for %s: %w", w.path, waitErr)
	case stdinErr != nil:
		return fmt.Errorf("failed to close xz stdin: %w", stdinErr)
	case fileErr != nil:
		return fmt.Errorf("failed to close %s: %w", w.path, fileErr)
	}
	return nil
}

// Path returns the full path to the .xz file
func (w *XZWriter) Path() string {
	return w.path
}

// CheckXZAvailable reports an error with installation guidance when the
// xz binary is not on PATH.
func CheckXZAvailable() error {
	if _, err := exec.LookPath("xz"); err != nil {
		return fmt.Errorf("xz compression requested but xz is not available: %w\nInstall with: apt install xz-utils (Linux) or brew install xz (macOS)", err)
	}
	return nil
}
