// Package mapsort returns the entries of a map as an ordered slice, sorted by
// key, by value, or by value and then key, each in its own direction.
//
// # Overview
//
// Go maps have no order. mapsort turns a map into []Entry[K, V] (an alias of
// [github.com/amp-labs/mapsort/maps.KeyValuePair]) ordered as requested:
//
//	scores := map[string]int{"ann": 90, "bob": 72, "cid": 90}
//
//	mapsort.ByKey(scores, order.Ascending)
//	// [{ann 90} {bob 72} {cid 90}]
//
//	mapsort.ByValue(scores, order.Descending)
//	// [{ann 90} {cid 90} {bob 72}] or [{cid 90} {ann 90} {bob 72}]
//
//	mapsort.ByKeyThenValue(scores, mapsort.ValuesThenKeys(order.Descending, order.Ascending))
//	// [{ann 90} {cid 90} {bob 72}]
//
// Sorting by value alone leaves entries with equal values in no particular
// order. [ValuesThenKeys] breaks those ties by key and is the only
// criteria that yields the same result for every run.
//
// # Orderability
//
// What may be sorted is decided by the compiler. The plain functions need
// cmp.Ordered keys and/or values; the Sortable variants ([ByKeySortable],
// [ByValueSortable], [ByKeyThenValueSortable]) accept types that implement
// [github.com/amp-labs/mapsort/sortable.Sortable] instead. [NewSorter]
// takes arbitrary comparison functions, for example
// [github.com/amp-labs/mapsort/compare.Natural] or a collation.
//
// Maps whose value types are only known at run time, such as decoded YAML,
// go through [SortDynamic], which checks the values before sorting and
// returns an error wrapping errors.ErrUnsupportedOperation when they cannot
// be ordered.
//
// # Partial inputs
//
// Every function has a Seq variant taking an iter.Seq2 (a window over a
// map's iteration, a filtered view, ...) and a Pairs variant taking an
// explicit []Entry. Both are first reduced to unique keys, the last value
// for a key winning, exactly as if they had been written into a map.
//
// # Thread Safety
//
// All functions are pure. Sorter values are immutable and may be shared
// between goroutines; the input map must not be written while it is sorted.
package mapsort
