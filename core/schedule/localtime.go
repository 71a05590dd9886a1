package schedule

import (
	"errors"
	"time"
)

// LocalLayout is the wall-clock datetime input format accepted by event forms.
const LocalLayout = "2006-01-02T15:04"

// Locale is the rendering locale all wall-clock inputs are interpreted in.
// Package var so tests can pin a fixed zone.
var Locale = time.Local

var (
	ErrBadLocalTime     = errors.New("must be a valid date and time")
	ErrSkippedLocalTime = errors.New("time does not exist in the local timezone")
)

// ParseLocal converts a wall-clock input to an absolute instant in Locale.
// A value inside a daylight-savings spring-forward gap does not round-trip
// through the zone and is reported as ErrSkippedLocalTime, never silently
// normalized. Values inside a fall-back duplicated hour resolve to whichever
// offset the platform picks.
func ParseLocal(value string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalLayout, value, Locale)
	if err != nil {
		return time.Time{}, ErrBadLocalTime
	}
	if t.Format(LocalLayout) != value {
		return time.Time{}, ErrSkippedLocalTime
	}
	return t, nil
}

// FormatLocal renders an instant back to the wall-clock input format in Locale.
// ParseLocal(FormatLocal(t)) == t for any t at minute resolution outside a
// spring-forward gap.
func FormatLocal(t time.Time) string {
	return t.In(Locale).Format(LocalLayout)
}
