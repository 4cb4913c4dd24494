package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/mohammad-safakhou/studyplan/internal/planner"
)

func samplePlan() Plan {
	start := time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)
	blocks := []planner.Block{
		{Item: "Math", Day: planner.Monday, Start: start, End: start.Add(72 * time.Minute)},
		{Item: "Novel", Day: planner.Monday, Start: start.Add(72 * time.Minute), End: start.Add(2 * time.Hour)},
	}
	return Plan{Blocks: blocks, Grid: planner.Organize(blocks)}
}

func TestForFormatSelection(t *testing.T) {
	if _, ok := ForFormat("ics", "").(ICSExporter); !ok {
		t.Fatal("expected ICS exporter for ics")
	}
	if _, ok := ForFormat("google", "").(SheetExporter); !ok {
		t.Fatal("expected sheet exporter for google")
	}
	// anything else is the report, never an error
	for _, sel := range []string{"pdf", "", "whatever"} {
		if _, ok := ForFormat(sel, "").(PDFExporter); !ok {
			t.Fatalf("expected PDF exporter for %q", sel)
		}
	}
}

func TestICSExporterEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := (ICSExporter{}).Write(&buf, samplePlan()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("expected a VCALENDAR envelope")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Fatalf("expected 2 events, got %d", strings.Count(out, "BEGIN:VEVENT"))
	}
	if !strings.Contains(out, "SUMMARY:Math (Monday)") || !strings.Contains(out, "SUMMARY:Novel (Monday)") {
		t.Fatalf("expected item (day) summaries, got:\n%s", out)
	}
}

func TestSheetExporterLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := (SheetExporter{}).Write(&buf, samplePlan()); err != nil {
		t.Fatalf("write: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading output back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + two rows, got %d records", len(records))
	}
	if records[0][0] != "Time" || records[0][1] != "Monday" || records[0][7] != "Sunday" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	// Math starts at 18:00, Novel at 19:12 -> separate hour rows, both Monday.
	if records[1][0] != "18:00" || records[1][1] != "Math" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][0] != "19:00" || records[2][1] != "Novel" {
		t.Fatalf("unexpected second row: %v", records[2])
	}
	if records[1][2] != "" {
		t.Fatalf("expected empty Tuesday cell, got %q", records[1][2])
	}
}

func TestSheetExporterSkipsEmptyRows(t *testing.T) {
	p := samplePlan()
	empty := Plan{Blocks: nil, Grid: planner.Organize(nil)}
	var buf bytes.Buffer
	if err := (SheetExporter{}).Write(&buf, empty); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only for an empty grid, got %d lines", len(lines))
	}

	var full bytes.Buffer
	if err := (SheetExporter{}).Write(&full, p); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Count(full.String(), "\n") < 2 {
		t.Fatal("expected populated rows to be kept")
	}
}

func TestPDFExporterProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := (PDFExporter{Title: "Study Schedule"}).Write(&buf, samplePlan()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", buf.Bytes()[:8])
	}
}

func TestExporterMetadata(t *testing.T) {
	cases := []struct {
		exp Exporter
		ext string
		ct  string
	}{
		{ICSExporter{}, "ics", "text/calendar"},
		{SheetExporter{}, "csv", "text/csv"},
		{PDFExporter{}, "pdf", "application/pdf"},
	}
	for _, c := range cases {
		if c.exp.Ext() != c.ext || c.exp.ContentType() != c.ct {
			t.Fatalf("unexpected metadata for %T: %s %s", c.exp, c.exp.Ext(), c.exp.ContentType())
		}
	}
}
