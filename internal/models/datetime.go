package models

import (
	"fmt"
	"time"
)

// CombineDateTime combines a calendar date and a wall-clock time string in
// "HH:MM" form into a single UTC instant. The instant's year, month, day,
// hour and minute equal the inputs verbatim with zero seconds: the values
// the organizer typed are reinterpreted as UTC rather than converted from
// the local zone, so an organizer and a server in different zones never see
// the picked values shift. A malformed time string returns
// ErrInvalidTimeOfDay.
func CombineDateTime(date time.Time, timeOfDay string) (time.Time, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected HH:MM)", ErrInvalidTimeOfDay, timeOfDay)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// NormalizeCalendarDate keeps only the displayed calendar day of a picker
// value, dropping any time-of-day or zone offset the widget attached. Picker
// values must pass through this before CombineDateTime so an offset is never
// applied twice.
func NormalizeCalendarDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
