// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, the ordering capability used by mapsort.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types ([Int], [Uint], [Byte], [Float],
// [Time], [String]) and the naturally ordered [Natural] string.
//
// The Sortable interface extends [github.com/amp-labs/mapsort/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Built-in ordered types (cmp.Ordered) don't need a wrapper; Sortable exists
// for domain types whose order is not the order of an underlying primitive.
//
// # Usage
//
// The Sortable variants of the mapsort functions only accept keys and/or
// values that implement the capability, so the ordering requirement is
// checked by the compiler:
//
//	versions := map[sortable.Natural]string{"v10": "latest", "v2": "old", "v9": "stable"}
//	entries := mapsort.ByKeySortable(versions, order.Ascending)
//	// Keys come out as v2, v9, v10
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Priority struct {
//	    Level int
//	    Name  string
//	}
//
//	func (p Priority) Equals(other Priority) bool {
//	    return p.Level == other.Level && p.Name == other.Name
//	}
//
//	func (p Priority) LessThan(other Priority) bool {
//	    if p.Level != other.Level {
//	        return p.Level < other.Level
//	    }
//	    return p.Name < other.Name
//	}
//
// Use [Compare] (or [Func]) to turn any Sortable type into a three-way
// comparison for slices.SortFunc or mapsort.NewSorter.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
