package planner

import "time"

// Block is one item's contiguous scheduled segment within a day.
type Block struct {
	Item  string
	Day   Day
	Start time.Time
	End   time.Time
}

// Assemble partitions each window's available hours across the allocation,
// walking a cursor from the window start. Blocks within a day are
// contiguous and appear in allocation order; because the percentages sum to
// 100 the final cursor lands on the window end, modulo float rounding.
// Zero-percent items still emit a zero-duration block at the cursor.
func Assemble(windows []Window, alloc *Allocation) []Block {
	var blocks []Block
	for _, w := range windows {
		cursor := w.Start
		for _, name := range alloc.Names() {
			hours := w.AvailableHours * (alloc.Percent(name) / 100)
			end := cursor.Add(time.Duration(hours * float64(time.Hour)))
			blocks = append(blocks, Block{Item: name, Day: w.Day, Start: cursor, End: end})
			cursor = end
		}
	}
	return blocks
}
