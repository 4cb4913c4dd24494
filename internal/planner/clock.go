package planner

import "time"

// Clock supplies the live wall-clock time. The same-day decisions in
// NextOccurrence and BuildAvailability consult it independently of the
// reference time they are given, so tests pin both.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time { return time.Now() }

// timeOfDay is t's clock position as a duration since midnight.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
