package domain

import "time"

// Clock is the time source consulted wherever closure is evaluated.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// IsClosed reports whether voting with the given deadline is over at now.
// Any instant strictly after the deadline is closed; the deadline itself is still open.
func IsClosed(deadline, now time.Time) bool {
	return now.After(deadline)
}
