package agecalc

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The reference date for every calculation comes from here; the core
// never reads the wall clock directly.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
