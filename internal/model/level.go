package model

import "strings"

// Severity is the broad offense grade of a charge
type Severity string

const (
	SeverityFelony      Severity = "felony"
	SeverityMisdemeanor Severity = "misdemeanor"
	SeverityViolation   Severity = "violation"
	SeverityUnknown     Severity = "unknown"
)

// Class is the letter class within a severity
type Class string

const (
	ClassA            Class = "A"
	ClassB            Class = "B"
	ClassC            Class = "C"
	ClassD            Class = "D"
	ClassUnclassified Class = "unclassified"
	ClassNone         Class = ""
)

// Level is a parsed severity label such as "Felony Class C"
type Level struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Class    Class    `json:"class,omitempty" yaml:"class,omitempty"`
}

// ParseLevel reads a free-text level label. It never fails: labels it cannot
// place get SeverityUnknown, which the eligibility rules treat as ambiguous.
func ParseLevel(s string) Level {
	text := strings.ToLower(strings.Join(strings.Fields(s), " "))

	level := Level{Severity: SeverityUnknown}
	switch {
	case strings.Contains(text, "felony"):
		level.Severity = SeverityFelony
	case strings.Contains(text, "misdemeanor"):
		level.Severity = SeverityMisdemeanor
	case strings.Contains(text, "violation"):
		level.Severity = SeverityViolation
	default:
		return level
	}

	switch {
	case strings.Contains(text, "unclassified"):
		level.Class = ClassUnclassified
	case strings.Contains(text, "class a"):
		level.Class = ClassA
	case strings.Contains(text, "class b"):
		level.Class = ClassB
	case strings.Contains(text, "class c"):
		level.Class = ClassC
	case strings.Contains(text, "class d"):
		level.Class = ClassD
	}
	return level
}

// IsFelony reports whether the level is any felony grade
func (l Level) IsFelony() bool {
	return l.Severity == SeverityFelony
}

// IsMisdemeanor reports whether the level is any misdemeanor grade
func (l Level) IsMisdemeanor() bool {
	return l.Severity == SeverityMisdemeanor
}

// IsViolation reports whether the level is any violation grade
func (l Level) IsViolation() bool {
	return l.Severity == SeverityViolation
}

func (l Level) String() string {
	if l.Severity == SeverityUnknown || l.Severity == "" {
		return "Unknown"
	}
	name := strings.ToUpper(string(l.Severity[:1])) + string(l.Severity[1:])
	switch l.Class {
	case ClassNone:
		return name
	case ClassUnclassified:
		return name + " Unclassified"
	default:
		return name + " Class " + string(l.Class)
	}
}
