package planner

import "time"

// NextOccurrence returns the next calendar date of target on or after ref.
// When target is ref's own weekday, the date is kept only while the live
// clock has not yet passed ref's time-of-day; otherwise the occurrence
// moves a week out. Note the comparison is against clock, not against ref's
// own calendar day following it; callers that want a pure reference-time
// decision must pre-empt this with their own same-day check (see
// BuildAvailability).
func NextOccurrence(ref time.Time, target Day, clock Clock) time.Time {
	daysAhead := int(target) - int(DayOf(ref))
	if daysAhead < 0 || (daysAhead == 0 && timeOfDay(clock()) > timeOfDay(ref)) {
		daysAhead += 7
	}
	return ref.AddDate(0, 0, daysAhead)
}
