// Package export serializes an assembled study plan into one of the
// downloadable calendar/report formats.
package export

import (
	"io"

	"github.com/mohammad-safakhou/studyplan/internal/planner"
)

// Format selectors accepted from the planning form. Anything else falls
// back to the PDF report; there is no unsupported-format error path.
const (
	FormatICS    = "ics"
	FormatGoogle = "google"
)

// Plan carries both schedule shapes an exporter may need: the flat block
// sequence (calendar events) and the hour-by-weekday grid (tabular views).
type Plan struct {
	Blocks []planner.Block
	Grid   *planner.Grid
}

// Exporter writes one serialization of a plan.
type Exporter interface {
	Ext() string
	ContentType() string
	Write(w io.Writer, p Plan) error
}

// ForFormat picks the exporter for a form selector. title is used by the
// report exporter as its page heading.
func ForFormat(sel, title string) Exporter {
	switch sel {
	case FormatICS:
		return ICSExporter{}
	case FormatGoogle:
		return SheetExporter{}
	default:
		return PDFExporter{Title: title}
	}
}

// rowHasEntries reports whether at least one of the seven cells is set;
// all-empty rows are dropped by the tabular exporters.
func rowHasEntries(row [planner.DaysPerWeek]string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
