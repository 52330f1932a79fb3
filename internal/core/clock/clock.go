// Package clock holds the hour/minute value used by time reports and the
// free-text parser that produces it
package clock

import (
	stderrs "errors"
	"fmt"
	"strings"
	"time"

	perr "reduce/internal/platform/errors"
)

var (
	// ErrFormat is returned when a token does not have one of the accepted shapes
	ErrFormat = stderrs.New("time string is improperly formatted")

	// ErrRange is returned when hour or minute fall outside a valid time of day
	ErrRange = stderrs.New("could not convert numbers to time")
)

// Time is a time of day with minute precision
// seconds are always zero when persisted
type Time struct {
	Hour   int
	Minute int
}

// New returns a Time and reports whether hour and minute form a valid time of day
func New(hour, minute int) (Time, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Time{}, false
	}
	return Time{Hour: hour, Minute: minute}, true
}

// MustNew is New for literals in tests and fixtures
func MustNew(hour, minute int) Time {
	t, ok := New(hour, minute)
	if !ok {
		panic(fmt.Sprintf("clock: invalid time %d:%d", hour, minute))
	}
	return t
}

// Parse turns a free-text clock token into a Time
//
// accepted shapes after trimming:
//
//	H:MM or HH:MM   colon separated, hour 1-2 chars, minute exactly 2
//	HMM             3 chars, first is the hour
//	HHMM            4 chars, first two are the hour
func Parse(raw string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")

	var hour, minute string
	switch {
	case len(parts) == 2 && (len(parts[0]) == 1 || len(parts[0]) == 2) && len(parts[1]) == 2:
		hour, minute = parts[0], parts[1]
	case len(parts) == 1 && len(parts[0]) == 3:
		hour, minute = parts[0][:1], parts[0][1:]
	case len(parts) == 1 && len(parts[0]) == 4:
		hour, minute = parts[0][:2], parts[0][2:]
	default:
		return Time{}, invalid(raw, ErrFormat)
	}

	h, ok := digits(hour)
	if !ok {
		return Time{}, invalid(raw, ErrFormat)
	}
	m, ok := digits(minute)
	if !ok {
		return Time{}, invalid(raw, ErrFormat)
	}

	t, ok := New(h, m)
	if !ok {
		return Time{}, invalid(raw, ErrRange)
	}
	return t, nil
}

// ParseSeconds parses the HH:MM:SS values the picker sends back for deletion
// the seconds component must be present and valid but is otherwise dropped
func ParseSeconds(raw string) (Time, error) {
	tt, err := time.Parse(time.TimeOnly, strings.TrimSpace(raw))
	if err != nil {
		return Time{}, invalid(raw, ErrFormat)
	}
	return FromTime(tt), nil
}

// FromTime keeps the hour and minute of t
func FromTime(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute()}
}

// String formats as HH:MM
func (t Time) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// SQL formats as HH:MM:SS for postgres time columns and picker values
func (t Time) SQL() string { return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute) }

// Before reports whether t is earlier in the day than u
func (t Time) Before(u Time) bool {
	if t.Hour != u.Hour {
		return t.Hour < u.Hour
	}
	return t.Minute < u.Minute
}

// digits parses a non-empty run of ASCII digits, no sign allowed
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func invalid(raw string, cause error) error {
	return perr.Wrapf(cause, perr.ErrorCodeValidation, "invalid time %q", raw)
}

// MarshalText encodes as HH:MM
func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText accepts any shape Parse does
func (t *Time) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
