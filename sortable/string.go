package sortable

import "github.com/amp-labs/mapsort/compare"

// String is a sortable wrapper type for the built-in string type, ordered
// byte-wise.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural is a string ordered naturally, so "v2" sorts before "v10".
// See compare.Natural.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	return compare.Natural(string(n), string(other)) < 0
}
