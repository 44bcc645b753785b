// Package timeutil provides utility functions and types for working with
// civil time-of-day values.
package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

const (
	minutesInAnHour = 60
	hoursInADay     = 24
)

// BellTime is a wall-clock time of day with minute precision.
type BellTime struct {
	Hour   int
	Minute int
}

// Parse converts a zero-padded, 24-hour "HH:MM" string into a BellTime.
// Any other shape is rejected outright, including signed components such
// as "+1:30" which strconv would otherwise accept.
func Parse(s string) (BellTime, error) {
	if len(s) != 5 || s[2] != ':' || !allDigits(s[:2]) || !allDigits(s[3:]) {
		return BellTime{}, fmt.Errorf("invalid time: %q is not in HH:MM format", s)
	}

	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return BellTime{}, fmt.Errorf("invalid time: %q is not in HH:MM format", s)
	}

	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return BellTime{}, fmt.Errorf("invalid time: %q is not in HH:MM format", s)
	}

	if hour >= hoursInADay || minute >= minutesInAnHour || hour < 0 ||
		minute < 0 {
		return BellTime{}, fmt.Errorf("invalid time: %q is out of range", s)
	}

	return BellTime{Hour: hour, Minute: minute}, nil
}

// ParseToken converts a 4-digit "HHMM" token back into a BellTime. Tokens
// that are not exactly four digits or that fall outside the valid range
// are rejected.
func ParseToken(s string) (BellTime, error) {
	if len(s) != 4 || !allDigits(s) {
		return BellTime{}, fmt.Errorf("invalid token: %q is not 4 digits", s)
	}

	return Parse(s[:2] + ":" + s[2:])
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Minutes reports the total minutes elapsed since midnight (0-1439).
func (b BellTime) Minutes() int {
	return b.Hour*minutesInAnHour + b.Minute
}

// String formats the time as zero-padded "HH:MM".
func (b BellTime) String() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

// Token formats the time as the compact 4-digit "HHMM" form used in
// share links.
func (b BellTime) Token() string {
	return fmt.Sprintf("%02d%02d", b.Hour, b.Minute)
}

// FormatClock renders a wall-clock instant as "HH:MM:SS", or "HH:MM"
// when withSeconds is false.
func FormatClock(t time.Time, withSeconds bool) string {
	if withSeconds {
		return t.Format("15:04:05")
	}

	return t.Format("15:04")
}

// DayKey returns a calendar-date identifier used to detect midnight
// rollovers.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FromClock truncates a wall-clock instant to its time-of-day at minute
// granularity.
func FromClock(t time.Time) BellTime {
	return BellTime{Hour: t.Hour(), Minute: t.Minute()}
}
