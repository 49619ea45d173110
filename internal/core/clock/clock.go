package clock

import "time"

// Clock supplies the current time to sessions and run identities
type Clock interface {
	Now() time.Time
}

// System is the production clock.
type System struct{}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return f.At
}
