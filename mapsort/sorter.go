package mapsort

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/mapsort/compare"
	mserrors "github.com/amp-labs/mapsort/errors"
	"github.com/amp-labs/mapsort/maps"
	"github.com/amp-labs/mapsort/order"
)

// Entry is a single key-value pair of a sorted result.
type Entry[K comparable, V any] = maps.KeyValuePair[K, V]

// Sorter is an immutable entry comparator together with the operations that
// apply it. Sorters capture only their comparison functions and directions,
// so one value can be shared freely between goroutines.
//
// The zero Sorter compares every pair as equal and leaves entries in the
// order they were materialized in.
type Sorter[K comparable, V any] struct {
	compare compare.Func[Entry[K, V]]
}

// stage is one criterion of a comparator: how to compare, and which way.
type stage[T any] struct {
	cmp compare.Func[T]
	dir order.Direction
}

// newComparator builds the entry comparison. A value stage decides whenever
// the values differ; otherwise a key stage decides. With no key stage, equal
// values compare as equal and the sort leaves them where they were.
func newComparator[K comparable, V any](values *stage[V], keys *stage[K]) compare.Func[Entry[K, V]] {
	return func(a, b Entry[K, V]) int {
		if values != nil {
			if c := values.cmp(a.Value, b.Value); c != 0 {
				return values.dir.Apply(c)
			}
		}

		if keys != nil {
			return keys.dir.Apply(keys.cmp(a.Key, b.Key))
		}

		return 0
	}
}

// newSorter assembles the stages a KeyValueSorter asks for. Callers have
// already made sure the comparisons it needs are present.
func newSorter[K comparable, V any](sorter KeyValueSorter, keys compare.Func[K], values compare.Func[V]) Sorter[K, V] {
	switch sorter.criteria {
	case CriteriaValues:
		return Sorter[K, V]{compare: newComparator[K](&stage[V]{cmp: values, dir: sorter.values}, nil)}
	case CriteriaValuesThenKeys:
		return Sorter[K, V]{compare: newComparator(
			&stage[V]{cmp: values, dir: sorter.values},
			&stage[K]{cmp: keys, dir: sorter.keys},
		)}
	default:
		return Sorter[K, V]{compare: newComparator[K, V](nil, &stage[K]{cmp: keys, dir: sorter.keys})}
	}
}

// NewSorter builds a Sorter from arbitrary three-way comparisons, for keys
// or values whose order is not their natural one (natural or collated
// strings, case-insensitive text, domain types).
//
// Only the comparisons the sorter uses are required: values may be nil for
// KeysOnly, keys may be nil for ValuesOnly. A missing comparison that is
// needed is reported as ErrUnsupportedOperation.
//
// Example:
//
//	s, err := mapsort.NewSorter[string, int](
//	    mapsort.ValuesThenKeys(order.Descending, order.Ascending),
//	    compare.Natural, cmp.Compare[int])
func NewSorter[K comparable, V any](
	sorter KeyValueSorter,
	keys compare.Func[K],
	values compare.Func[V],
) (Sorter[K, V], error) {
	if sorter.hasKeyStage() && keys == nil {
		return Sorter[K, V]{}, fmt.Errorf("%w: %s needs a key comparison", mserrors.ErrUnsupportedOperation, sorter)
	}

	if sorter.hasValueStage() && values == nil {
		return Sorter[K, V]{}, fmt.Errorf("%w: %s needs a value comparison", mserrors.ErrUnsupportedOperation, sorter)
	}

	return newSorter(sorter, keys, values), nil
}

// Compare returns the three-way comparison of two entries.
func (s Sorter[K, V]) Compare(a, b Entry[K, V]) int {
	if s.compare == nil {
		return 0
	}

	return s.compare(a, b)
}

// Less reports whether a sorts strictly before b.
func (s Sorter[K, V]) Less(a, b Entry[K, V]) bool {
	return s.Compare(a, b) < 0
}

// Sort returns the entries of m in order. The map is only read. A nil or
// empty map gives an empty, non-nil slice.
func (s Sorter[K, V]) Sort(m map[K]V) []Entry[K, V] {
	return s.sortEntries(maps.Entries(m))
}

// SortSeq materializes seq into key-unique entries (last write wins) and
// returns them in order. Use it for a sub-range of a map's iteration, see
// maps.Window. Entries that compare as equal keep the position at which
// their key was first yielded.
func (s Sorter[K, V]) SortSeq(seq iter.Seq2[K, V]) []Entry[K, V] {
	return s.sortEntries(maps.UniqueEntries(seq))
}

// SortPairs is SortSeq over an explicit list of pairs. The input slice is
// not modified.
func (s Sorter[K, V]) SortPairs(pairs []Entry[K, V]) []Entry[K, V] {
	return s.SortSeq(maps.Pairs(pairs))
}

func (s Sorter[K, V]) sortEntries(entries []Entry[K, V]) []Entry[K, V] {
	if s.compare != nil {
		slices.SortStableFunc(entries, s.compare)
	}

	return entries
}
