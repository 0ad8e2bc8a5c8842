package model

import (
	"fmt"
	"strings"
)

// Ruling is the outcome recorded for a charge.
// Construct from free text with ParseRuling; unknown text is rejected.
type Ruling string

const (
	RulingConvicted   Ruling = "convicted"
	RulingDismissed   Ruling = "dismissed"
	RulingAcquitted   Ruling = "acquitted"
	RulingNoComplaint Ruling = "no_complaint"
	RulingDiversion   Ruling = "diversion"
	RulingMistaken    Ruling = "mistaken" // mistakenly charged or removed from the charging instrument
	RulingUnknown     Ruling = "unknown"
)

// rulingAliases maps normalized court-record wording to a Ruling
var rulingAliases = map[string]Ruling{
	"convicted":           RulingConvicted,
	"conviction":          RulingConvicted,
	"guilty":              RulingConvicted,
	"guilty plea":         RulingConvicted,
	"dismissed":           RulingDismissed,
	"dismissal":           RulingDismissed,
	"acquitted":           RulingAcquitted,
	"acquittal":           RulingAcquitted,
	"not guilty":          RulingAcquitted,
	"no complaint":        RulingNoComplaint,
	"no_complaint":        RulingNoComplaint,
	"no complaint filed":  RulingNoComplaint,
	"diversion":           RulingDiversion,
	"diversion completed": RulingDiversion,
	"diverted":            RulingDiversion,
	"mistaken":            RulingMistaken,
	"mistaken citation":   RulingMistaken,
	"removed":             RulingMistaken,
	"removed from charge": RulingMistaken,
	"unknown":             RulingUnknown,
}

// ParseRuling maps court-record wording onto a Ruling, ignoring case and
// surrounding whitespace.
func ParseRuling(s string) (Ruling, error) {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if r, ok := rulingAliases[key]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRuling, s)
}

// IsValid reports whether r is one of the declared rulings
func (r Ruling) IsValid() bool {
	switch r {
	case RulingConvicted, RulingDismissed, RulingAcquitted, RulingNoComplaint,
		RulingDiversion, RulingMistaken, RulingUnknown:
		return true
	}
	return false
}

// IsConviction reports whether r records a conviction
func (r Ruling) IsConviction() bool {
	return r == RulingConvicted
}

// IsNonConviction reports whether r closes the charge without a conviction
func (r Ruling) IsNonConviction() bool {
	switch r {
	case RulingDismissed, RulingAcquitted, RulingNoComplaint, RulingDiversion, RulingMistaken:
		return true
	}
	return false
}

func (r Ruling) String() string {
	return string(r)
}

// UnmarshalText parses court-record wording, so charge files may say "Convicted"
func (r *Ruling) UnmarshalText(text []byte) error {
	parsed, err := ParseRuling(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Disposition is the outcome of a charge and the day it was entered.
// A zero Date means the record carries no disposition date.
type Disposition struct {
	Ruling Ruling `json:"ruling" yaml:"ruling"`
	Date   Date   `json:"date,omitzero" yaml:"date,omitempty"`
}

// NewDisposition returns a disposition; r must be valid
func NewDisposition(r Ruling, date Date) (Disposition, error) {
	if !r.IsValid() {
		return Disposition{}, fmt.Errorf("%w: %q", ErrUnknownRuling, string(r))
	}
	return Disposition{Ruling: r, Date: date}, nil
}

// ParseDisposition builds a disposition from raw record text
func ParseDisposition(ruling, date string) (Disposition, error) {
	r, err := ParseRuling(ruling)
	if err != nil {
		return Disposition{}, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return Disposition{}, err
	}
	return Disposition{Ruling: r, Date: d}, nil
}

// HasDate reports whether the disposition date is known
func (d Disposition) HasDate() bool {
	return !d.Date.IsZero()
}

// YearsSince counts whole years between the disposition and today
func (d Disposition) YearsSince(today Date) int {
	return d.Date.YearsUntil(today)
}

// Anniversary returns the day the given number of years have passed since the disposition
func (d Disposition) Anniversary(years int) Date {
	return d.Date.AddYears(years)
}

// IsWithinYears reports whether fewer than n full years separate the disposition from today
func (d Disposition) IsWithinYears(n int, today Date) bool {
	return today.Before(d.Anniversary(n))
}
