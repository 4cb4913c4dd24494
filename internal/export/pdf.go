package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/mohammad-safakhou/studyplan/internal/planner"
)

const (
	timeColWidth = 30
	dayColWidth  = 35
	rowHeight    = 10
)

// PDFExporter renders the grid as a one-page bordered table under a
// centered title.
type PDFExporter struct {
	Title string
}

func (PDFExporter) Ext() string         { return "pdf" }
func (PDFExporter) ContentType() string { return "application/pdf" }

func (e PDFExporter) Write(w io.Writer, p Plan) error {
	title := e.Title
	if title == "" {
		title = "Study Schedule"
	}

	// landscape A4: the eight fixed-width columns need 275mm
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, rowHeight, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(timeColWidth, rowHeight, "Time", "1", 0, "C", false, 0, "")
	for d := planner.Monday; d <= planner.Sunday; d++ {
		pdf.CellFormat(dayColWidth, rowHeight, d.String(), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, label := range p.Grid.Labels() {
		row := p.Grid.Row(label)
		if !rowHasEntries(row) {
			continue
		}
		pdf.CellFormat(timeColWidth, rowHeight, label, "1", 0, "", false, 0, "")
		for _, cell := range row {
			pdf.CellFormat(dayColWidth, rowHeight, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
