// Package ui provides styled terminal output for the fingen CLI.
// It uses lipgloss and bubbles for styling with automatic fallback to
// plain text when stdout is not a terminal or colors are disabled.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// UI renders the run header, messages and summary for one terminal.
type UI struct {
	IsTTY   bool
	Width   int
	NoColor bool
}

// KV is one line of a summary box.
type KV struct {
	Key   string
	Value string
}

// Status represents the status of a table or operation.
type Status int

const (
	StatusNone Status = iota
	StatusProgress
	StatusSuccess
	StatusError
)

// New creates a new UI instance with TTY detection. NO_COLOR in the
// environment disables styling.
func New() *UI {
	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)
	width := 80
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return &UI{
		IsTTY:   isTTY,
		Width:   width,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// SetNoColor turns styling off, as --no-color does.
func (u *UI) SetNoColor(noColor bool) {
	u.NoColor = noColor
}

// shouldStyle is false for pipes, files and NO_COLOR.
func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders title in a rounded box.
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("=== %s ===", title)
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2).
		Render(title)
}

// KeyValue renders a key-value line of the run parameters.
func (u *UI) KeyValue(key, value string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("%-14s %s", key+":", value)
	}

	keyStyle := lipgloss.NewStyle().Foreground(ColorMuted).Width(14)
	return "  " + keyStyle.Render(key) + " " + lipgloss.NewStyle().Bold(true).Render(value)
}

// Success prefixes msg with a check mark.
func (u *UI) Success(msg string) string {
	if !u.shouldStyle() {
		return "[OK] " + msg
	}
	return StyleSuccess.Render(SymbolSuccess+" ") + msg
}

// Error renders msg as a failure line.
func (u *UI) Error(msg string) string {
	if !u.shouldStyle() {
		return "[FAILED] " + msg
	}
	return StyleError.Render(SymbolError + " " + msg)
}

// Warning renders msg as a warning line.
func (u *UI) Warning(msg string) string {
	if !u.shouldStyle() {
		return "[WARN] " + msg
	}
	return StyleWarning.Render(SymbolWarning + " " + msg)
}

// SummaryBox renders a bordered summary section. A "Status" item is
// decorated with the symbol matching its value.
func (u *UI) SummaryBox(title string, items []KV) string {
	if !u.shouldStyle() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "\n=== %s ===\n", title)
		for _, item := range items {
			fmt.Fprintf(&sb, "%-14s %s\n", item.Key+":", item.Value)
		}
		return sb.String()
	}

	keyWidth := 0
	for _, item := range items {
		keyWidth = max(keyWidth, len(item.Key))
	}
	keyStyle := lipgloss.NewStyle().Foreground(ColorMuted).Width(keyWidth + 2)
	valueStyle := lipgloss.NewStyle().Bold(true)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		value := valueStyle.Render(item.Value)
		if item.Key == "Status" {
			value = statusSymbol(summaryStatus(item.Value)) + " " + statusStyle(summaryStatus(item.Value)).Render(item.Value)
		}
		lines = append(lines, "  "+keyStyle.Render(item.Key)+" "+value)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)

	return "\n" + titleStyle.Render("  "+title) + "\n" + boxStyle.Render(strings.Join(lines, "\n"))
}

// summaryStatus maps a free-form status value to a Status
func summaryStatus(value string) Status {
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "success"):
		return StatusSuccess
	case strings.Contains(v, "fail"):
		return StatusError
	}
	return StatusNone
}

// TableRow renders one table with its status.
func (u *UI) TableRow(name string, value string, status Status) string {
	if !u.shouldStyle() {
		prefix := ""
		if status == StatusError {
			prefix = "FAILED: "
		}
		return fmt.Sprintf("  %-*s %s%s", NameWidth+1, name+":", prefix, value)
	}

	if status == StatusError {
		value = statusStyle(status).Render(value)
	}
	nameStyle := lipgloss.NewStyle().Width(NameWidth)
	return fmt.Sprintf("  %s %s %s", statusSymbol(status), nameStyle.Render(name), value)
}

// statusSymbol returns the styled symbol shown in front of a status line
func statusSymbol(status Status) string {
	switch status {
	case StatusSuccess:
		return StyleSuccess.Render(SymbolSuccess)
	case StatusError:
		return StyleError.Render(SymbolError)
	case StatusProgress:
		return StyleProgress.Render(SymbolProgress)
	}
	return " "
}

func statusStyle(status Status) lipgloss.Style {
	switch status {
	case StatusSuccess:
		return StyleSuccess
	case StatusError:
		return StyleError
	case StatusProgress:
		return StyleProgress
	}
	return lipgloss.NewStyle()
}
