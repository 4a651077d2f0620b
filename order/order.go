// Package order defines the sort direction shared by the sorting packages.
package order

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDirection is returned when text cannot be parsed into a Direction.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction is the order in which a sort criterion is applied.
// The zero value is Ascending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// IsAscending returns true if smaller elements come first.
func (d Direction) IsAscending() bool {
	return d != Descending
}

// IsDescending returns true if larger elements come first.
func (d Direction) IsDescending() bool {
	return !d.IsAscending()
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d.IsAscending() {
		return Descending
	}

	return Ascending
}

// Apply maps the result of a three-way comparison (negative, zero, positive)
// onto this direction. Ascending leaves it untouched, Descending negates it.
//
// Example:
//
//	order.Descending.Apply(cmp.Compare(1, 2)) // 1, so 2 sorts before 1
func (d Direction) Apply(c int) int {
	if d.IsAscending() {
		return c
	}

	return -c
}

func (d Direction) String() string {
	if d.IsAscending() {
		return "ascending"
	}

	return "descending"
}

// Parse converts text into a Direction. It accepts "asc", "ascending",
// "desc" and "descending" in any case, with surrounding whitespace ignored.
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar, got yaml node kind %d", ErrInvalidDirection, value.Kind)
	}

	return d.UnmarshalText([]byte(value.Value))
}

var (
	_ yaml.Marshaler   = Ascending
	_ yaml.Unmarshaler = (*Direction)(nil)
)
