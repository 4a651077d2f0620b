// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/mapsort/compare"
)

// Sortable is the ordering capability: a type that can tell whether it
// equals, or sorts before, another value of the same type. LessThan must be
// a strict weak order consistent with Equals.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the three-way comparison of two Sortable values.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Func returns Compare as a compare.Func, for use where a comparison value
// is expected.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}
