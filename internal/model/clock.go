package model

import "time"

// Clock supplies "today" to evaluations. The rules never read the wall clock
// themselves.
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Today() Date {
	return DateOf(time.Now())
}

// FixedClock always returns the same day
type FixedClock struct {
	Day Date
}

func (c FixedClock) Today() Date {
	return c.Day
}
