// Package errors holds the sentinel errors shared across mapsort packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrWrongType marks a value whose run-time type cannot take part in
	// the requested operation.
	ErrWrongType = errors.New("wrong type")

	// ErrUnsupportedOperation is returned when a sort is requested on data
	// that cannot support it, such as ordering values that have no total
	// order. It is raised before any comparison work starts.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
