package sortable

import "cmp"

// Int orders ints numerically.
//
//	scores := map[sortable.Int]string{3: "c", 1: "a", 2: "b"}
//	mapsort.ByKeySortable(scores, order.Ascending) // keys 1, 2, 3
type Int int

// Uint orders uints numerically.
type Uint uint

// Byte orders bytes numerically, so 'B' sorts before 'a'.
type Byte byte

// Float orders float64 values numerically. NaN equals itself and sorts
// before every other value, as with cmp.Compare, which keeps LessThan a
// strict weak order.
type Float float64

var (
	_ Sortable[Int]   = Int(0)
	_ Sortable[Uint]  = Uint(0)
	_ Sortable[Byte]  = Byte(0)
	_ Sortable[Float] = Float(0)
)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}

func (u Uint) Equals(other Uint) bool {
	return u == other
}

func (u Uint) LessThan(other Uint) bool {
	return u < other
}

func (b Byte) Equals(other Byte) bool {
	return b == other
}

func (b Byte) LessThan(other Byte) bool {
	return b < other
}

func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
