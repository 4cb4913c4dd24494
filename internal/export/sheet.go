package export

import (
	"encoding/csv"
	"io"

	"github.com/mohammad-safakhou/studyplan/internal/planner"
)

// SheetExporter renders the grid as a spreadsheet-importable CSV: a
// Time,Monday..Sunday header and one row per grid hour that has at least
// one scheduled cell.
type SheetExporter struct{}

func (SheetExporter) Ext() string         { return "csv" }
func (SheetExporter) ContentType() string { return "text/csv" }

func (SheetExporter) Write(w io.Writer, p Plan) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, planner.DaysPerWeek+1)
	header = append(header, "Time")
	for d := planner.Monday; d <= planner.Sunday; d++ {
		header = append(header, d.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, label := range p.Grid.Labels() {
		row := p.Grid.Row(label)
		if !rowHasEntries(row) {
			continue
		}
		record := append([]string{label}, row[:]...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
