package mapsort

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/mapsort/order"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSorter is returned when a sort order cannot be decoded.
var ErrInvalidSorter = errors.New("invalid sort order")

// Criteria says what a KeyValueSorter sorts by.
type Criteria int

const (
	// CriteriaKeys sorts by key only.
	CriteriaKeys Criteria = iota
	// CriteriaValues sorts by value only. Entries with equal values have no
	// defined order relative to each other.
	CriteriaValues
	// CriteriaValuesThenKeys sorts by value, breaking ties by key. This is
	// the only criteria that yields a total order for every map.
	CriteriaValuesThenKeys
)

func (c Criteria) String() string {
	switch c {
	case CriteriaKeys:
		return "keys"
	case CriteriaValues:
		return "values"
	case CriteriaValuesThenKeys:
		return "values-then-keys"
	default:
		return fmt.Sprintf("Criteria(%d)", int(c))
	}
}

// ParseCriteria is the inverse of Criteria.String. Underscores may be used in
// place of dashes, and case is ignored.
func ParseCriteria(s string) (Criteria, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")

	switch normalized {
	case "keys", "keys-only":
		return CriteriaKeys, nil
	case "values", "values-only":
		return CriteriaValues, nil
	case "values-then-keys":
		return CriteriaValuesThenKeys, nil
	default:
		return CriteriaKeys, fmt.Errorf("%w: unknown criteria %q", ErrInvalidSorter, s)
	}
}

// KeyValueSorter specifies how to sort a map whose keys and values are both
// orderable. Build one with KeysOnly, ValuesOnly or ValuesThenKeys.
//
// The zero value is KeysOnly(order.Ascending).
type KeyValueSorter struct {
	criteria Criteria
	keys     order.Direction
	values   order.Direction
}

// KeysOnly sorts by key in the given direction. Keys of a map are unique, so
// the result order is fully determined.
func KeysOnly(keys order.Direction) KeyValueSorter {
	return KeyValueSorter{criteria: CriteriaKeys, keys: keys}
}

// ValuesOnly sorts by value in the given direction. Keys will not be in a
// well-defined order among entries with equal values.
func ValuesOnly(values order.Direction) KeyValueSorter {
	return KeyValueSorter{criteria: CriteriaValues, values: values}
}

// ValuesThenKeys sorts by value, and by key among entries with equal values.
func ValuesThenKeys(values, keys order.Direction) KeyValueSorter {
	return KeyValueSorter{criteria: CriteriaValuesThenKeys, keys: keys, values: values}
}

// Criteria returns what the sorter sorts by.
func (s KeyValueSorter) Criteria() Criteria {
	return s.criteria
}

// KeyDirection returns the key direction, and false if keys play no part.
func (s KeyValueSorter) KeyDirection() (order.Direction, bool) {
	return s.keys, s.hasKeyStage()
}

// ValueDirection returns the value direction, and false if values play no part.
func (s KeyValueSorter) ValueDirection() (order.Direction, bool) {
	return s.values, s.hasValueStage()
}

func (s KeyValueSorter) hasKeyStage() bool {
	return s.criteria != CriteriaValues
}

func (s KeyValueSorter) hasValueStage() bool {
	return s.criteria != CriteriaKeys
}

func (s KeyValueSorter) String() string {
	switch s.criteria {
	case CriteriaKeys:
		return fmt.Sprintf("keys(%s)", s.keys)
	case CriteriaValues:
		return fmt.Sprintf("values(%s)", s.values)
	default:
		return fmt.Sprintf("%s(values=%s, keys=%s)", s.criteria, s.values, s.keys)
	}
}

// sorterDocument is the YAML form of a KeyValueSorter:
//
//	by: values-then-keys
//	values: descending
//	keys: ascending
type sorterDocument struct {
	By     string           `yaml:"by"`
	Values *order.Direction `yaml:"values,omitempty"`
	Keys   *order.Direction `yaml:"keys,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. Only the directions that take part
// in the sort are written.
func (s KeyValueSorter) MarshalYAML() (any, error) {
	doc := sorterDocument{By: s.criteria.String()}

	if dir, ok := s.ValueDirection(); ok {
		doc.Values = &dir
	}

	if dir, ok := s.KeyDirection(); ok {
		doc.Keys = &dir
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Besides the mapping form, a bare
// criteria scalar ("values") is accepted and means ascending throughout.
// Missing directions default to ascending; a direction for a criterion the
// sorter does not use is rejected.
func (s *KeyValueSorter) UnmarshalYAML(node *yaml.Node) error {
	var doc sorterDocument

	switch node.Kind {
	case yaml.ScalarNode:
		doc.By = node.Value
	case yaml.MappingNode:
		if err := node.Decode(&doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: expected a mapping or a scalar, got yaml node kind %d", ErrInvalidSorter, node.Kind)
	}

	if strings.TrimSpace(doc.By) == "" {
		return fmt.Errorf("%w: missing \"by\"", ErrInvalidSorter)
	}

	criteria, err := ParseCriteria(doc.By)
	if err != nil {
		return err
	}

	var keys, values order.Direction

	if doc.Keys != nil {
		keys = *doc.Keys
	}

	if doc.Values != nil {
		values = *doc.Values
	}

	switch criteria {
	case CriteriaKeys:
		if doc.Values != nil {
			return fmt.Errorf("%w: %s does not take a values direction", ErrInvalidSorter, criteria)
		}

		*s = KeysOnly(keys)
	case CriteriaValues:
		if doc.Keys != nil {
			return fmt.Errorf("%w: %s does not take a keys direction", ErrInvalidSorter, criteria)
		}

		*s = ValuesOnly(values)
	case CriteriaValuesThenKeys:
		*s = ValuesThenKeys(values, keys)
	}

	return nil
}

// ParseKeyValueSorter decodes a KeyValueSorter from YAML (or JSON, which is
// valid YAML).
//
// Example:
//
//	sorter, err := mapsort.ParseKeyValueSorter([]byte("by: values-then-keys\nvalues: desc\n"))
func ParseKeyValueSorter(data []byte) (KeyValueSorter, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return KeyValueSorter{}, fmt.Errorf("%w: empty document", ErrInvalidSorter)
	}

	var sorter KeyValueSorter

	if err := yaml.Unmarshal(data, &sorter); err != nil {
		return KeyValueSorter{}, err
	}

	return sorter, nil
}

var (
	_ yaml.Marshaler   = KeyValueSorter{}
	_ yaml.Unmarshaler = (*KeyValueSorter)(nil)
)
