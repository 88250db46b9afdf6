package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func plainUI() *UI {
	return &UI{IsTTY: false, Width: 80}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		rows int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_500, "1.5K"},
		{500_000, "500.0K"},
		{2_340_000, "2.3M"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.rows); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.rows, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
		{2*time.Hour + 5*time.Minute, "2h5m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPlainOutput(t *testing.T) {
	u := plainUI()

	if got := u.Header("fingen"); got != "=== fingen ===" {
		t.Errorf("Header = %q", got)
	}
	if got := u.Success("done"); got != "[OK] done" {
		t.Errorf("Success = %q", got)
	}
	if got := u.TableRow("fact_budget", "boom", StatusError); !strings.Contains(got, "FAILED: boom") {
		t.Errorf("TableRow = %q", got)
	}

	box := u.SummaryBox("Generation Complete", []KV{{Key: "Files", Value: "17"}})
	if !strings.Contains(box, "Files:") || !strings.Contains(box, "17") {
		t.Errorf("SummaryBox = %q", box)
	}
}

func TestSpinnerPlain(t *testing.T) {
	var buf bytes.Buffer
	s := plainUI().NewSpinner("Generating dimension tables")
	s.out = &buf

	s.Start()
	s.SetDetail("dim_regiony")
	s.Success("10 tables")
	s.Success("again")

	if got := buf.String(); got != "Generating dimension tables... 10 tables\n" {
		t.Errorf("spinner output = %q", got)
	}
}

func TestFactBoardPlain(t *testing.T) {
	var buf bytes.Buffer
	b := plainUI().NewFactBoard()
	b.out = &buf

	b.Track("fact_transakce", 100)
	b.Track("fact_budget", 50)
	b.Track("fact_mzdy", 10)
	b.Set("fact_transakce", 40)
	b.Done("fact_transakce", "100 rows")
	b.Fail("fact_budget", errors.New("disk full"))

	if got := b.rows["fact_transakce"]; got.status != StatusSuccess || got.current != 100 {
		t.Errorf("transactions row = %+v", got)
	}
	if buf.Len() != 0 {
		t.Errorf("plain board drew before Close: %q", buf.String())
	}

	b.Close()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Close printed %d lines: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "fact_transakce:") || !strings.HasSuffix(lines[0], "100 rows") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "FAILED: disk full") {
		t.Errorf("second line = %q", lines[1])
	}
}
