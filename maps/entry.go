package maps

// KeyValuePair is a generic key-value pair struct used to represent entries in maps.
// It is the element type of every ordered entry sequence produced by mapsort,
// and the input element type when callers already hold an explicit list of
// pairs.
//
// Example:
//
//	for i, entry := range mapsort.ByKey(scores, order.Ascending) {
//	    fmt.Printf("Index: %d, Key: %v, Value: %v\n", i, entry.Key, entry.Value)
//	}
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// NewKeyValuePair creates a KeyValuePair from a key and a value.
func NewKeyValuePair[K any, V any](key K, value V) KeyValuePair[K, V] {
	return KeyValuePair[K, V]{Key: key, Value: value}
}
