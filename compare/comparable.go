// Package compare provides utilities for comparing values.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison. It returns a negative number when a sorts
// before b, a positive number when a sorts after b, and zero when neither
// precedes the other. It has the same shape as cmp.Compare and the comparison
// argument of slices.SortFunc.
type Func[T any] func(a, b T) int

// Ordered returns the natural comparison of a built-in ordered type.
// NaN sorts before every other float, as with cmp.Compare.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// FromLess adapts a strict "less than" predicate into a three-way comparison.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Less reports whether a sorts strictly before b under f.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}
