package sortable

import "time"

// Time orders instants chronologically. Two values for the same instant in
// different locations are equal.
//
// Time is comparable, so it can be a map key, but Go's == also compares the
// location; use Time.Equals, or normalize with UTC before using it as a key.
type Time time.Time

var _ Sortable[Time] = Time{}

func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
