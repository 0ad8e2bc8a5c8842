package model

import "errors"

// Construction errors for charge inputs. Callers wrap these with the offending
// value; test with errors.Is.
var (
	ErrUnknownRuling = errors.New("unknown disposition ruling")
	ErrMalformedDate = errors.New("malformed date")
)
