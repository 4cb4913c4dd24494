package catalog

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
)

// Kind distinguishes the two study item flavours found in a catalog file.
type Kind string

const (
	KindCourse Kind = "course"
	KindBook   Kind = "book"
)

// DefaultPagesPerHour is the assumed reading rate used to turn a book's
// page count into hours (one page per minute).
const DefaultPagesPerHour = 60.0

// StudyItem is one schedulable unit. Name is the unique key used to match
// effort percentages from the planning form. DurationHours is informational
// and is not consumed by the allocator.
type StudyItem struct {
	Name          string  `json:"name"`
	Kind          Kind    `json:"type"`
	DurationHours float64 `json:"duration_hours"`
}

type catalogRow struct {
	Type          string `csv:"type"`
	Name          string `csv:"name"`
	DurationHours string `csv:"duration_hours"`
	TotalPages    string `csv:"total_pages"`
}

// Read parses a study catalog CSV. Each row carries a type column: course
// rows take duration_hours directly, book rows derive duration from
// total_pages at the given reading rate. Rows with an unknown type are
// skipped. pagesPerHour <= 0 falls back to DefaultPagesPerHour.
func Read(r io.Reader, pagesPerHour float64) ([]StudyItem, error) {
	if pagesPerHour <= 0 {
		pagesPerHour = DefaultPagesPerHour
	}

	var rows []catalogRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing catalog csv: %w", err)
	}

	items := make([]StudyItem, 0, len(rows))
	for i, row := range rows {
		switch Kind(row.Type) {
		case KindCourse:
			hours, err := strconv.ParseFloat(row.DurationHours, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: course %q: bad duration_hours %q", i+1, row.Name, row.DurationHours)
			}
			items = append(items, StudyItem{Name: row.Name, Kind: KindCourse, DurationHours: hours})
		case KindBook:
			pages, err := strconv.Atoi(row.TotalPages)
			if err != nil {
				return nil, fmt.Errorf("row %d: book %q: bad total_pages %q", i+1, row.Name, row.TotalPages)
			}
			items = append(items, StudyItem{Name: row.Name, Kind: KindBook, DurationHours: float64(pages) / pagesPerHour})
		default:
			// unrecognised types are not an error, the row just does not schedule
		}
	}
	return items, nil
}
