package planner

import "fmt"

// Grid is a sparse hour-of-day by weekday view of a block sequence. Rows
// are keyed by the HH:00 label of the hour a block starts in and iterate in
// first-seen order. A cell holds at most one item name: when two blocks on
// the same day start within the same clock hour, the later write wins and
// the earlier item disappears from grid-based exports (the block list keeps
// both).
type Grid struct {
	labels []string
	rows   map[string]*[DaysPerWeek]string
}

// Organize regroups blocks into a grid, rounding each block's start down to
// its enclosing hour.
func Organize(blocks []Block) *Grid {
	g := &Grid{rows: make(map[string]*[DaysPerWeek]string)}
	for _, b := range blocks {
		label := fmt.Sprintf("%02d:00", b.Start.Hour())
		row, ok := g.rows[label]
		if !ok {
			row = &[DaysPerWeek]string{}
			g.rows[label] = row
			g.labels = append(g.labels, label)
		}
		row[b.Day] = b.Item
	}
	return g
}

// Labels returns the row labels in insertion order.
func (g *Grid) Labels() []string { return g.labels }

// Row returns the seven Monday-first cells for a label. Unknown labels
// yield an all-empty row.
func (g *Grid) Row(label string) [DaysPerWeek]string {
	if row, ok := g.rows[label]; ok {
		return *row
	}
	return [DaysPerWeek]string{}
}

// Cell returns the item at (label, day), or "" when nothing starts there.
func (g *Grid) Cell(label string, d Day) string {
	return g.Row(label)[d]
}
