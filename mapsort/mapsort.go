package mapsort

import (
	"cmp"
	"iter"

	"github.com/amp-labs/mapsort/order"
	"github.com/amp-labs/mapsort/sortable"
)

// SortableKey is the capability a key needs for the Sortable variants: it
// must be usable as a map key and know its own order.
type SortableKey[K any] interface {
	comparable
	sortable.Sortable[K]
}

// Keys returns a Sorter ordering entries strictly by key.
func Keys[K cmp.Ordered, V any](dir order.Direction) Sorter[K, V] {
	return newSorter[K, V](KeysOnly(dir), cmp.Compare[K], nil)
}

// Values returns a Sorter ordering entries by value. Entries with equal
// values have no defined order relative to each other.
func Values[K comparable, V cmp.Ordered](dir order.Direction) Sorter[K, V] {
	return newSorter[K, V](ValuesOnly(dir), nil, cmp.Compare[V])
}

// KeyValue returns a Sorter for the given KeyValueSorter, for maps whose
// keys and values are both ordered.
func KeyValue[K cmp.Ordered, V cmp.Ordered](sorter KeyValueSorter) Sorter[K, V] {
	return newSorter[K, V](sorter, cmp.Compare[K], cmp.Compare[V])
}

// SortableKeys is Keys for keys that implement sortable.Sortable.
func SortableKeys[K SortableKey[K], V any](dir order.Direction) Sorter[K, V] {
	return newSorter[K, V](KeysOnly(dir), sortable.Compare[K], nil)
}

// SortableValues is Values for values that implement sortable.Sortable.
func SortableValues[K comparable, V sortable.Sortable[V]](dir order.Direction) Sorter[K, V] {
	return newSorter[K, V](ValuesOnly(dir), nil, sortable.Compare[V])
}

// SortableKeyValue is KeyValue for keys and values that implement
// sortable.Sortable.
func SortableKeyValue[K SortableKey[K], V sortable.Sortable[V]](sorter KeyValueSorter) Sorter[K, V] {
	return newSorter[K, V](sorter, sortable.Compare[K], sortable.Compare[V])
}

// ByKey returns the entries of m ordered by key: with order.Ascending every
// key is smaller than the next one, with order.Descending larger.
//
// Example:
//
//	mapsort.ByKey(map[string]int{"b": 1, "a": 2}, order.Ascending)
//	// [{a 2} {b 1}]
func ByKey[K cmp.Ordered, V any](m map[K]V, dir order.Direction) []Entry[K, V] {
	return Keys[K, V](dir).Sort(m)
}

// ByKeySeq is ByKey over a sub-range of a map's iteration (or any other
// key-value iterator). Duplicate keys resolve to the last value yielded.
func ByKeySeq[K cmp.Ordered, V any](seq iter.Seq2[K, V], dir order.Direction) []Entry[K, V] {
	return Keys[K, V](dir).SortSeq(seq)
}

// ByKeyPairs is ByKey over an explicit list of pairs. Duplicate keys resolve
// to the last pair in the list.
func ByKeyPairs[K cmp.Ordered, V any](pairs []Entry[K, V], dir order.Direction) []Entry[K, V] {
	return Keys[K, V](dir).SortPairs(pairs)
}

// ByValue returns the entries of m ordered by value. Keys will not be in a
// well-defined order among entries with equal values; use ByKeyThenValue
// with ValuesThenKeys when that matters.
func ByValue[K comparable, V cmp.Ordered](m map[K]V, dir order.Direction) []Entry[K, V] {
	return Values[K, V](dir).Sort(m)
}

// ByValueSeq is ByValue over a key-value iterator.
func ByValueSeq[K comparable, V cmp.Ordered](seq iter.Seq2[K, V], dir order.Direction) []Entry[K, V] {
	return Values[K, V](dir).SortSeq(seq)
}

// ByValuePairs is ByValue over an explicit list of pairs.
func ByValuePairs[K comparable, V cmp.Ordered](pairs []Entry[K, V], dir order.Direction) []Entry[K, V] {
	return Values[K, V](dir).SortPairs(pairs)
}

// ByKeyThenValue returns the entries of m ordered as sorter describes:
// KeysOnly behaves like ByKey, ValuesOnly like ByValue, and ValuesThenKeys
// orders by value and then by key, which is a total order.
//
// Example:
//
//	m := map[int]int{1: 100, 2: 90, 3: 90, 4: 80}
//	mapsort.ByKeyThenValue(m, mapsort.ValuesThenKeys(order.Ascending, order.Descending))
//	// [{4 80} {3 90} {2 90} {1 100}]
func ByKeyThenValue[K cmp.Ordered, V cmp.Ordered](m map[K]V, sorter KeyValueSorter) []Entry[K, V] {
	return KeyValue[K, V](sorter).Sort(m)
}

// ByKeyThenValueSeq is ByKeyThenValue over a key-value iterator.
func ByKeyThenValueSeq[K cmp.Ordered, V cmp.Ordered](seq iter.Seq2[K, V], sorter KeyValueSorter) []Entry[K, V] {
	return KeyValue[K, V](sorter).SortSeq(seq)
}

// ByKeyThenValuePairs is ByKeyThenValue over an explicit list of pairs.
func ByKeyThenValuePairs[K cmp.Ordered, V cmp.Ordered](pairs []Entry[K, V], sorter KeyValueSorter) []Entry[K, V] {
	return KeyValue[K, V](sorter).SortPairs(pairs)
}

// ByKeySortable is ByKey for keys that implement sortable.Sortable.
func ByKeySortable[K SortableKey[K], V any](m map[K]V, dir order.Direction) []Entry[K, V] {
	return SortableKeys[K, V](dir).Sort(m)
}

// ByValueSortable is ByValue for values that implement sortable.Sortable.
func ByValueSortable[K comparable, V sortable.Sortable[V]](m map[K]V, dir order.Direction) []Entry[K, V] {
	return SortableValues[K, V](dir).Sort(m)
}

// ByKeyThenValueSortable is ByKeyThenValue for keys and values that
// implement sortable.Sortable.
func ByKeyThenValueSortable[K SortableKey[K], V sortable.Sortable[V]](
	m map[K]V,
	sorter KeyValueSorter,
) []Entry[K, V] {
	return SortableKeyValue[K, V](sorter).Sort(m)
}
