// Package maps provides generic helpers for turning Go maps, iterators and
// pair lists into key-unique entry lists.
package maps

import (
	"iter"
)

// Entries returns the entries of m as pairs. The order is non-deterministic,
// like ranging over the map. A nil map yields an empty, non-nil slice.
func Entries[K comparable, V any](m map[K]V) []KeyValuePair[K, V] {
	out := make([]KeyValuePair[K, V], 0, len(m))

	for key, value := range m {
		out = append(out, KeyValuePair[K, V]{Key: key, Value: value})
	}

	return out
}

// FromSeq builds a map from a key-value iterator. When a key is yielded more
// than once, the last value wins, like assigning to a map in a loop.
// A nil iterator yields an empty map.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) map[K]V {
	out := make(map[K]V)

	if seq == nil {
		return out
	}

	for key, value := range seq {
		out[key] = value
	}

	return out
}

// FromPairs builds a map from a list of pairs, last write wins.
func FromPairs[K comparable, V any](pairs []KeyValuePair[K, V]) map[K]V {
	return FromSeq(Pairs(pairs))
}

// Pairs adapts a list of pairs into a key-value iterator that yields them in
// list order.
func Pairs[K any, V any](pairs []KeyValuePair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// UniqueEntries materializes a key-value iterator into key-unique entries.
// It has the same semantics as FromSeq (last write wins) but keeps every key
// at the position where it was first seen, so the result is deterministic
// whenever the iterator is.
//
// Example:
//
//	pairs := []maps.KeyValuePair[string, int]{{"a", 1}, {"b", 2}, {"a", 3}}
//	maps.UniqueEntries(maps.Pairs(pairs)) // [{a 3} {b 2}]
func UniqueEntries[K comparable, V any](seq iter.Seq2[K, V]) []KeyValuePair[K, V] {
	out := make([]KeyValuePair[K, V], 0)

	if seq == nil {
		return out
	}

	index := make(map[K]int)

	for key, value := range seq {
		if i, ok := index[key]; ok {
			out[i].Value = value

			continue
		}

		index[key] = len(out)
		out = append(out, KeyValuePair[K, V]{Key: key, Value: value})
	}

	return out
}

// Window returns the contiguous sub-range of seq that skips the first offset
// pairs and then yields at most limit pairs. A negative limit means no limit;
// a negative offset is treated as zero.
//
// Go maps have no stable iteration order, so a window over a plain map is a
// window over one arbitrary iteration. Window over an ordered source (a
// sorted entry list via Pairs, for example) gives a stable slice.
func Window[K any, V any](seq iter.Seq2[K, V], offset, limit int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if seq == nil || limit == 0 {
			return
		}

		index := 0
		taken := 0

		for key, value := range seq {
			if index < offset {
				index++

				continue
			}

			if !yield(key, value) {
				return
			}

			taken++

			if limit > 0 && taken >= limit {
				return
			}
		}
	}
}
