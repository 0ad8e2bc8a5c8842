package statute

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedStatute is returned when a citation is not of the form digits.digits
var ErrMalformedStatute = errors.New("malformed statute")

// minSectionDigits is the width ORS sections are printed with (163.305, 813.010)
const minSectionDigits = 3

// Statute is a parsed ORS citation such as 163.305.
//
// The section is kept as its digit string with trailing zeros removed, so that
// 163.3 and 163.300 are the same statute. Sections compare as decimal
// fractions, not as integers: 163.29 sorts before 163.3.
type Statute struct {
	Chapter int
	Section string
}

// Parse parses a dotted numeric citation
func Parse(s string) (Statute, error) {
	raw := strings.TrimSpace(s)
	chapter, section, ok := strings.Cut(raw, ".")
	if !ok || !isDigits(chapter) || !isDigits(section) {
		return Statute{}, fmt.Errorf("%w: %q", ErrMalformedStatute, s)
	}

	n, err := strconv.Atoi(chapter)
	if err != nil {
		return Statute{}, fmt.Errorf("%w: %q: %v", ErrMalformedStatute, s, err)
	}

	return Statute{
		Chapter: n,
		Section: strings.TrimRight(section, "0"),
	}, nil
}

// MustParse is Parse for citations known at compile time
func MustParse(s string) Statute {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Compare returns -1, 0 or +1 depending on whether s sorts before, equal to or after other
func (s Statute) Compare(other Statute) int {
	switch {
	case s.Chapter < other.Chapter:
		return -1
	case s.Chapter > other.Chapter:
		return 1
	}

	a, b := s.Section, other.Section
	width := max(len(a), len(b))
	a += strings.Repeat("0", width-len(a))
	b += strings.Repeat("0", width-len(b))

	// Equal-length digit strings order the same way their values do.
	return strings.Compare(a, b)
}

// Less reports whether s sorts strictly before other
func (s Statute) Less(other Statute) bool {
	return s.Compare(other) < 0
}

// String renders the canonical citation, e.g. "813.010"
func (s Statute) String() string {
	section := s.Section
	if len(section) < minSectionDigits {
		section += strings.Repeat("0", minSectionDigits-len(section))
	}
	return fmt.Sprintf("%d.%s", s.Chapter, section)
}

// MarshalText implements encoding.TextMarshaler
func (s Statute) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Statute) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsZero reports whether s is the zero value
func (s Statute) IsZero() bool {
	return s.Chapter == 0 && s.Section == ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
