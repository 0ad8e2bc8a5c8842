package pipeline

import (
	"errors"
	"fmt"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/statute"
)

// ChargeError reports a charge that could not be evaluated. It is fatal to
// that charge only; batch callers record it and move on.
type ChargeError struct {
	ChargeID string
	Err      error
}

func (e *ChargeError) Error() string {
	if e.ChargeID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("charge %s: %v", e.ChargeID, e.Err)
}

func (e *ChargeError) Unwrap() error {
	return e.Err
}

// Kind names the failure for metrics: statute, ruling, date or other
func (e *ChargeError) Kind() string {
	return ErrorKind(e.Err)
}

// ErrorKind classifies a per-charge error
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, statute.ErrMalformedStatute):
		return "statute"
	case errors.Is(err, model.ErrUnknownRuling):
		return "ruling"
	case errors.Is(err, model.ErrMalformedDate):
		return "date"
	default:
		return "other"
	}
}
