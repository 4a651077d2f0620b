package mapsort_test

import (
	"cmp"
	stdmaps "maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/mapsort/mapsort"
	"github.com/amp-labs/mapsort/maps"
	"github.com/amp-labs/mapsort/order"
	"github.com/amp-labs/mapsort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intEntry = mapsort.Entry[int, int]

// scores is the fixture used throughout: two pairs of tied values.
func scores() map[int]int {
	return map[int]int{1: 100, 2: 90, 3: 90, 4: 80, 5: 70, 6: 70, 7: 60, 8: 50}
}

func entries(kv ...int) []intEntry {
	out := make([]intEntry, 0, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, intEntry{Key: kv[i], Value: kv[i+1]})
	}

	return out
}

func keysOf[K comparable, V any](in []mapsort.Entry[K, V]) []K {
	out := make([]K, len(in))

	for i, e := range in {
		out[i] = e.Key
	}

	return out
}

func valuesOf[K comparable, V any](in []mapsort.Entry[K, V]) []V {
	out := make([]V, len(in))

	for i, e := range in {
		out[i] = e.Value
	}

	return out
}

func randomMap(seed uint64, size, keySpace, valueSpace int) map[int]int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // deterministic fixture
	m := make(map[int]int, size)

	for range size {
		m[rng.IntN(keySpace)-keySpace/2] = rng.IntN(valueSpace)
	}

	return m
}

func TestByKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dir  order.Direction
		want []intEntry
	}{
		{
			name: "ascending",
			dir:  order.Ascending,
			want: entries(1, 100, 2, 90, 3, 90, 4, 80, 5, 70, 6, 70, 7, 60, 8, 50),
		},
		{
			name: "descending",
			dir:  order.Descending,
			want: entries(8, 50, 7, 60, 6, 70, 5, 70, 4, 80, 3, 90, 2, 90, 1, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mapsort.ByKey(scores(), tt.dir))
		})
	}
}

func TestByKey_Empty(t *testing.T) {
	t.Parallel()

	got := mapsort.ByKey[string, int](nil, order.Ascending)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = mapsort.ByKey(map[string]int{}, order.Descending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestByKey_Strings(t *testing.T) {
	t.Parallel()

	m := map[string]bool{"pear": true, "apple": false, "Zebra": true, "banana": false}

	assert.Equal(t, []string{"Zebra", "apple", "banana", "pear"}, keysOf(mapsort.ByKey(m, order.Ascending)))
	assert.Equal(t, []string{"pear", "banana", "apple", "Zebra"}, keysOf(mapsort.ByKey(m, order.Descending)))
}

func TestByValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dir    order.Direction
		values []int
	}{
		{name: "ascending", dir: order.Ascending, values: []int{50, 60, 70, 70, 80, 90, 90, 100}},
		{name: "descending", dir: order.Descending, values: []int{100, 90, 90, 80, 70, 70, 60, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mapsort.ByValue(scores(), tt.dir)

			// Keys among equal values are not specified; only values are checked,
			// plus that every entry survived.
			assert.Equal(t, tt.values, valuesOf(got))
			assert.ElementsMatch(t, maps.Entries(scores()), got)
		})
	}
}

func TestByKeyThenValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sorter mapsort.KeyValueSorter
		want   []intEntry
	}{
		{
			name:   "keys only ascending",
			sorter: mapsort.KeysOnly(order.Ascending),
			want:   entries(1, 100, 2, 90, 3, 90, 4, 80, 5, 70, 6, 70, 7, 60, 8, 50),
		},
		{
			name:   "keys only descending",
			sorter: mapsort.KeysOnly(order.Descending),
			want:   entries(8, 50, 7, 60, 6, 70, 5, 70, 4, 80, 3, 90, 2, 90, 1, 100),
		},
		{
			name:   "values ascending then keys ascending",
			sorter: mapsort.ValuesThenKeys(order.Ascending, order.Ascending),
			want:   entries(8, 50, 7, 60, 5, 70, 6, 70, 4, 80, 2, 90, 3, 90, 1, 100),
		},
		{
			name:   "values ascending then keys descending",
			sorter: mapsort.ValuesThenKeys(order.Ascending, order.Descending),
			want:   entries(8, 50, 7, 60, 6, 70, 5, 70, 4, 80, 3, 90, 2, 90, 1, 100),
		},
		{
			name:   "values descending then keys ascending",
			sorter: mapsort.ValuesThenKeys(order.Descending, order.Ascending),
			want:   entries(1, 100, 2, 90, 3, 90, 4, 80, 5, 70, 6, 70, 7, 60, 8, 50),
		},
		{
			name:   "values descending then keys descending",
			sorter: mapsort.ValuesThenKeys(order.Descending, order.Descending),
			want:   entries(1, 100, 3, 90, 2, 90, 4, 80, 6, 70, 5, 70, 7, 60, 8, 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mapsort.ByKeyThenValue(scores(), tt.sorter))
		})
	}
}

func TestByKeyThenValue_ValuesOnly(t *testing.T) {
	t.Parallel()

	asc := mapsort.ByKeyThenValue(scores(), mapsort.ValuesOnly(order.Ascending))
	assert.Equal(t, []int{50, 60, 70, 70, 80, 90, 90, 100}, valuesOf(asc))

	desc := mapsort.ByKeyThenValue(scores(), mapsort.ValuesOnly(order.Descending))
	assert.Equal(t, []int{100, 90, 90, 80, 70, 70, 60, 50}, valuesOf(desc))
}

func TestByKeyThenValue_ZeroSorter(t *testing.T) {
	t.Parallel()

	var sorter mapsort.KeyValueSorter

	assert.Equal(t,
		mapsort.ByKey(scores(), order.Ascending),
		mapsort.ByKeyThenValue(scores(), sorter))
}

func TestProperties_RandomMaps(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		m := randomMap(seed, 300, 1000, 15)

		for _, dir := range []order.Direction{order.Ascending, order.Descending} {
			byKey := mapsort.ByKey(m, dir)

			// Same multiset, one entry per key.
			require.Len(t, byKey, len(m))
			assert.Equal(t, m, maps.FromPairs(byKey))

			// Keys strictly ordered.
			for i := 1; i < len(byKey); i++ {
				c := cmp.Compare(byKey[i-1].Key, byKey[i].Key)
				assert.Equal(t, -1, dir.Apply(c), "seed %d index %d", seed, i)
			}

			// KeysOnly is ByKey.
			assert.Equal(t, byKey, mapsort.ByKeyThenValue(m, mapsort.KeysOnly(dir)))

			// Values non-strictly ordered.
			byValue := mapsort.ByValue(m, dir)
			require.Len(t, byValue, len(m))

			for i := 1; i < len(byValue); i++ {
				c := cmp.Compare(byValue[i-1].Value, byValue[i].Value)
				assert.LessOrEqual(t, dir.Apply(c), 0, "seed %d index %d", seed, i)
			}

			for _, keyDir := range []order.Direction{order.Ascending, order.Descending} {
				sorter := mapsort.ValuesThenKeys(dir, keyDir)
				got := mapsort.ByKeyThenValue(m, sorter)

				// Deterministic: same map, same answer.
				assert.Equal(t, got, mapsort.ByKeyThenValue(m, sorter))

				for i := 1; i < len(got); i++ {
					prev, cur := got[i-1], got[i]

					if prev.Value == cur.Value {
						assert.Equal(t, -1, keyDir.Apply(cmp.Compare(prev.Key, cur.Key)))
					} else {
						assert.Equal(t, -1, dir.Apply(cmp.Compare(prev.Value, cur.Value)))
					}
				}
			}
		}

		// Flipping both directions reverses a total order.
		asc := mapsort.ByKeyThenValue(m, mapsort.ValuesThenKeys(order.Ascending, order.Ascending))
		desc := mapsort.ByKeyThenValue(m, mapsort.ValuesThenKeys(order.Descending, order.Descending))
		slices.Reverse(desc)
		assert.Equal(t, asc, desc, "seed %d", seed)
	}
}

func TestSeqAndPairs(t *testing.T) {
	t.Parallel()

	t.Run("full map iteration matches the map form", func(t *testing.T) {
		t.Parallel()

		m := scores()
		sorter := mapsort.ValuesThenKeys(order.Descending, order.Ascending)

		assert.Equal(t, mapsort.ByKeyThenValue(m, sorter), mapsort.ByKeyThenValueSeq(stdmaps.All(m), sorter))
		assert.Equal(t, mapsort.ByKey(m, order.Ascending), mapsort.ByKeySeq(stdmaps.All(m), order.Ascending))
		assert.Equal(t,
			valuesOf(mapsort.ByValue(m, order.Ascending)),
			valuesOf(mapsort.ByValueSeq(stdmaps.All(m), order.Ascending)))
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()

		pairs := entries(3, 1, 1, 5, 3, 9, 2, 5, 1, 0)

		assert.Equal(t, entries(1, 0, 2, 5, 3, 9), mapsort.ByKeyPairs(pairs, order.Ascending))
		assert.Equal(t, entries(3, 9, 2, 5, 1, 0), mapsort.ByKeyThenValuePairs(pairs, mapsort.ValuesThenKeys(
			order.Descending, order.Ascending)))
		assert.Equal(t, []int{0, 5, 9}, valuesOf(mapsort.ByValuePairs(pairs, order.Ascending)))

		// Input untouched.
		assert.Equal(t, entries(3, 1, 1, 5, 3, 9, 2, 5, 1, 0), pairs)
	})

	t.Run("window over a sorted list", func(t *testing.T) {
		t.Parallel()

		byKey := mapsort.ByKey(scores(), order.Ascending)
		window := maps.Window(maps.Pairs(byKey), 2, 4)

		got := mapsort.ByKeyThenValueSeq(window, mapsort.ValuesThenKeys(order.Ascending, order.Descending))
		assert.Equal(t, entries(6, 70, 5, 70, 4, 80, 3, 90), got)
	})

	t.Run("window over a map iteration", func(t *testing.T) {
		t.Parallel()

		m := scores()
		got := mapsort.ByKeySeq(maps.Window(stdmaps.All(m), 3, 3), order.Descending)

		require.Len(t, got, 3)

		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i-1].Key, got[i].Key)
		}

		for _, e := range got {
			assert.Equal(t, m[e.Key], e.Value)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mapsort.ByKeyPairs[int, int](nil, order.Ascending))
		assert.NotNil(t, mapsort.ByValueSeq[int, int](nil, order.Ascending))
		assert.Empty(t, mapsort.ByKeyThenValueSeq(maps.Window(stdmaps.All(scores()), 0, 0),
			mapsort.ValuesThenKeys(order.Ascending, order.Ascending)))
	})
}

// version orders by major, then minor, and is usable as a map key.
type version struct {
	major, minor int
}

func (v version) Equals(other version) bool {
	return v == other
}

func (v version) LessThan(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}

	return v.minor < other.minor
}

func TestSortable(t *testing.T) {
	t.Parallel()

	t.Run("natural keys", func(t *testing.T) {
		t.Parallel()

		m := map[sortable.Natural]int{"file10": 1, "file2": 2, "file1": 3}

		assert.Equal(t,
			[]sortable.Natural{"file1", "file2", "file10"},
			keysOf(mapsort.ByKeySortable(m, order.Ascending)))
	})

	t.Run("custom key and value types", func(t *testing.T) {
		t.Parallel()

		releases := map[version]sortable.Float{
			{1, 2}:  0.5,
			{1, 10}: 0.5,
			{0, 9}:  0.9,
			{2, 0}:  0.1,
		}

		got := mapsort.ByKeyThenValueSortable(releases, mapsort.ValuesThenKeys(order.Descending, order.Descending))
		assert.Equal(t, []version{{0, 9}, {1, 10}, {1, 2}, {2, 0}}, keysOf(got))

		assert.Equal(t,
			[]version{{0, 9}, {1, 2}, {1, 10}, {2, 0}},
			keysOf(mapsort.ByKeySortable(releases, order.Ascending)))
	})

	t.Run("sortable values", func(t *testing.T) {
		t.Parallel()

		m := map[string]sortable.Int{"a": 3, "b": -1, "c": 2}

		assert.Equal(t, []string{"b", "c", "a"}, keysOf(mapsort.ByValueSortable(m, order.Ascending)))
	})
}
