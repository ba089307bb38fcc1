package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/betterrest/internal/constants"
)

const (
	secondsPerDay = 24 * 60 * 60
)

// TimeOfDay is a wall-clock time with minute precision and no date.
type TimeOfDay struct {
	Hour   int `validate:"gte=0,lte=23"`
	Minute int `validate:"gte=0,lte=59"`
}

// NewTimeOfDay returns the time of day for hour and minute, or an error if either is out of range.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" (24h) as well as "3:04PM" and "3:04 PM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layouts := []string{constants.TimeFormat, "15:4", constants.TimeFormat12h, "3:04PM", "3:04 pm", "3:04pm"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
}

// FromTime takes the hour and minute of t, discarding the date and seconds.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// SecondsSinceMidnight is the model's wake feature.
func (t TimeOfDay) SecondsSinceMidnight() int {
	return t.Hour*3600 + t.Minute*60
}

// Minus subtracts d from t, wrapping across midnight. daysBack reports how many
// midnights were crossed. Sub-minute remainders are truncated toward the earlier minute.
func (t TimeOfDay) Minus(d time.Duration) (result TimeOfDay, daysBack int) {
	secs := t.SecondsSinceMidnight() - int(d.Seconds())
	// floor to the minute so 06:59:30 reads as 06:59
	if r := secs % 60; r != 0 {
		if r < 0 {
			secs -= 60 + r
		} else {
			secs -= r
		}
	}
	for secs < 0 {
		secs += secondsPerDay
		daysBack++
	}
	return TimeOfDay{Hour: secs / 3600, Minute: (secs % 3600) / 60}, daysBack
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.SecondsSinceMidnight() < u.SecondsSinceMidnight()
}

// Format renders t with a time layout such as constants.TimeFormat12h.
func (t TimeOfDay) Format(layout string) string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(layout)
}

func (t TimeOfDay) String() string {
	return t.Format(constants.TimeFormat)
}

// MarshalText encodes t as HH:MM.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes any form accepted by ParseTimeOfDay.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
