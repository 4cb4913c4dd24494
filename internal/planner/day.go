package planner

import (
	"strings"
	"time"
)

// Day is a weekday indexed Monday=0 through Sunday=6, matching the
// ordering the planning form and the grid columns use.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of grid columns.
const DaysPerWeek = 7

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// ParseDay resolves a case-insensitive weekday name ("monday"..."sunday").
func ParseDay(s string) (Day, bool) {
	for i, name := range dayNames {
		if strings.EqualFold(s, name) {
			return Day(i), true
		}
	}
	return 0, false
}

// DayOf converts t's weekday into the Monday-first indexing.
func DayOf(t time.Time) Day {
	return Day((int(t.Weekday()) + 6) % 7)
}
