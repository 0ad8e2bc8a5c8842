package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical rendering of a Date
const DateLayout = "2006-01-02"

// dateLayouts are accepted when parsing; OECI exports use month/day/year
var dateLayouts = []string{
	DateLayout,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
}

// Date is a calendar day with no time-of-day or zone. The zero value means
// "no date".
type Date struct {
	t time.Time
}

// NewDate returns the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses one of the accepted layouts. Empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// IsZero reports whether d carries no date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of d
func (d Date) Time() time.Time {
	return d.t
}

// AddYears moves d by whole calendar years. Feb 29 rolls to Mar 1.
func (d Date) AddYears(n int) Date {
	return Date{t: d.t.AddDate(n, 0, 0)}
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// YearsUntil counts whole calendar years from d to later. Negative when later
// precedes d.
func (d Date) YearsUntil(later Date) int {
	years := later.t.Year() - d.t.Year()
	if d.AddYears(years).After(later) {
		years--
	}
	return years
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
