package planner

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrBadTimeFormat reports a start or end time that is not HH:MM.
var ErrBadTimeFormat = errors.New("time must be HH:MM")

// DaySelection is one weekly recurring availability choice from the
// planning form. Start and End are HH:MM time-of-day strings. End is not
// required to follow Start; see Window.AvailableHours for what a reversed
// pair produces.
type DaySelection struct {
	Day   Day
	Start string
	End   string
}

// Window is a dated, concrete availability range for a single day.
type Window struct {
	Day            Day
	Start          time.Time
	End            time.Time
	AvailableHours float64
}

// BuildAvailability resolves each selection to the next dated occurrence of
// its weekday and computes the hours available inside the window. The
// returned slice preserves selection order, which downstream assembly
// iterates in.
//
// A selection for today's weekday keeps today's date when now has not yet
// reached the window start; everything else goes through NextOccurrence.
// AvailableHours is taken from the in-day seconds of End minus Start, so a
// reversed window wraps around midnight rather than going negative.
func BuildAvailability(sels []DaySelection, now time.Time, clock Clock) ([]Window, error) {
	windows := make([]Window, 0, len(sels))
	for _, sel := range sels {
		startH, startM, err := parseClock(sel.Start)
		if err != nil {
			return nil, fmt.Errorf("%s start: %w", sel.Day, err)
		}
		endH, endM, err := parseClock(sel.End)
		if err != nil {
			return nil, fmt.Errorf("%s end: %w", sel.Day, err)
		}

		date := now
		startOfDay := time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute
		if !(timeOfDay(now) < startOfDay && sel.Day == DayOf(now)) {
			date = NextOccurrence(now, sel.Day, clock)
		}

		start := time.Date(date.Year(), date.Month(), date.Day(), startH, startM, 0, 0, date.Location())
		end := time.Date(date.Year(), date.Month(), date.Day(), endH, endM, 0, 0, date.Location())

		windows = append(windows, Window{
			Day:            sel.Day,
			Start:          start,
			End:            end,
			AvailableHours: inDaySeconds(end.Sub(start)) / 3600,
		})
	}
	return windows, nil
}

// inDaySeconds normalizes a duration to its seconds within a day: a
// reversed window of -2h reads as 22h, never negative.
func inDaySeconds(d time.Duration) float64 {
	secs := math.Mod(d.Seconds(), 24*3600)
	if secs < 0 {
		secs += 24 * 3600
	}
	return secs
}

func parseClock(s string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", s)
	if perr != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}
	return t.Hour(), t.Minute(), nil
}
