package mapsort

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdmaps "maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	mserrors "github.com/amp-labs/mapsort/errors"
	"github.com/amp-labs/mapsort/logger"
)

// valueClass groups the run-time types whose values can be ordered against
// each other.
type valueClass int

const (
	classUnsupported valueClass = iota
	classNumber
	classString
	classTime
)

func (c valueClass) String() string {
	switch c {
	case classNumber:
		return "number"
	case classString:
		return "string"
	case classTime:
		return "time"
	default:
		return "unsupported"
	}
}

type numberKind int

const (
	numberInt numberKind = iota
	numberUint
	numberFloat
)

// number holds an integer or a float without converting between them, so
// every pair compares by its exact mathematical value.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// Bounds of the integer ranges as float64. Both are powers of two and
// exactly representable.
const (
	minInt64Float  float64 = -(1 << 63)
	maxInt64Float  float64 = 1 << 63
	maxUint64Float float64 = 1 << 64
)

// compareNumbers is a total order over every int, uint and float value:
// NaN first (as cmp.Compare does), then numbers by exact value. Integers are
// never converted to float64, so 2^53+1 stays above float64(2^53).
func compareNumbers(a, b number) int {
	switch {
	case a.kind == numberFloat && b.kind == numberFloat:
		return cmp.Compare(a.f, b.f)
	case b.kind == numberFloat:
		return compareIntegerFloat(a, b.f)
	case a.kind == numberFloat:
		return -compareIntegerFloat(b, a.f)
	case a.kind == numberInt && b.kind == numberInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == numberUint && b.kind == numberUint:
		return cmp.Compare(a.u, b.u)
	case a.kind == numberInt:
		return compareIntUint(a.i, b.u)
	default:
		return -compareIntUint(b.i, a.u)
	}
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}

	return cmp.Compare(uint64(i), u)
}

// compareIntegerFloat compares an int or uint number with f exactly.
func compareIntegerFloat(n number, f float64) int {
	if math.IsNaN(f) {
		return 1
	}

	if n.kind == numberUint {
		switch {
		case f < 0:
			return 1
		case f >= maxUint64Float:
			return -1
		}

		whole, frac := math.Modf(f)
		if c := cmp.Compare(n.u, uint64(whole)); c != 0 {
			return c
		}

		return -sign(frac)
	}

	switch {
	case f < minInt64Float:
		return 1
	case f >= maxInt64Float:
		return -1
	}

	whole, frac := math.Modf(f)
	if c := cmp.Compare(n.i, int64(whole)); c != 0 {
		return c
	}

	return -sign(frac)
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// dynamicValue is a run-time value converted once, up front, into a form
// that compares without further type switches.
type dynamicValue struct {
	class valueClass
	num   number
	str   string
	at    time.Time
}

//nolint:cyclop,gocyclo // one case per supported kind
func classify(value any) (dynamicValue, bool) {
	switch v := value.(type) {
	case int:
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: int64(v)}}, true
	case int8:
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: int64(v)}}, true
	case int16:
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: int64(v)}}, true
	case int32:
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: int64(v)}}, true
	case int64:
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: v}}, true
	case uint:
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: uint64(v)}}, true
	case uint8:
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: uint64(v)}}, true
	case uint16:
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: uint64(v)}}, true
	case uint32:
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: uint64(v)}}, true
	case uint64:
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: v}}, true
	case float32:
		return dynamicValue{class: classNumber, num: number{kind: numberFloat, f: float64(v)}}, true
	case float64:
		return dynamicValue{class: classNumber, num: number{kind: numberFloat, f: v}}, true
	case json.Number:
		return classifyJSONNumber(v)
	case string:
		return dynamicValue{class: classString, str: v}, true
	case time.Time:
		return dynamicValue{class: classTime, at: v}, true
	default:
		return dynamicValue{}, false
	}
}

func classifyJSONNumber(n json.Number) (dynamicValue, bool) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return dynamicValue{class: classNumber, num: number{kind: numberInt, i: i}}, true
	}

	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return dynamicValue{class: classNumber, num: number{kind: numberUint, u: u}}, true
	}

	// ParseFloat also accepts "NaN", "Inf" and "Infinity", none of which is
	// JSON number syntax. Infinity is only kept when it comes from a valid
	// literal that overflows, such as 1e400.
	f, err := strconv.ParseFloat(string(n), 64)

	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return dynamicValue{}, false
	case err == nil && (math.IsNaN(f) || math.IsInf(f, 0)):
		return dynamicValue{}, false
	}

	return dynamicValue{class: classNumber, num: number{kind: numberFloat, f: f}}, true
}

func compareDynamic(compareStrings func(a, b string) int) func(a, b dynamicValue) int {
	return func(a, b dynamicValue) int {
		switch a.class {
		case classNumber:
			return compareNumbers(a.num, b.num)
		case classString:
			return compareStrings(a.str, b.str)
		case classTime:
			return a.at.Compare(b.at)
		default:
			return 0
		}
	}
}

// classifyAll converts every value of m, or explains why the values cannot
// be ordered. Keys are visited in sorted order so the error is stable.
func classifyAll(m map[string]any) (map[string]dynamicValue, error) {
	var (
		errs    mserrors.Collection
		classes = make(map[valueClass][]string)
		out     = make(map[string]dynamicValue, len(m))
	)

	for _, key := range slices.Sorted(stdmaps.Keys(m)) {
		value := m[key]

		dv, ok := classify(value)
		if !ok {
			errs.Add(fmt.Errorf("%w: %w: value of key %q is %T, which has no total order",
				mserrors.ErrUnsupportedOperation, mserrors.ErrWrongType, key, value))

			continue
		}

		classes[dv.class] = append(classes[dv.class], key)
		out[key] = dv
	}

	if len(classes) > 1 {
		kinds := slices.Sorted(stdmaps.Keys(classes))
		summary := make([]string, 0, len(kinds))

		for _, kind := range kinds {
			summary = append(summary, fmt.Sprintf("%s (e.g. key %q)", kind, classes[kind][0]))
		}

		errs.Add(fmt.Errorf("%w: values mix %s and cannot be compared with each other",
			mserrors.ErrUnsupportedOperation, strings.Join(summary, ", ")))
	}

	if errs.HasError() {
		return nil, logger.AnnotateError(errs.GetError(), "problems", errs.Len())
	}

	return out, nil
}

// SortDynamic sorts a map whose value types are only known at run time,
// typically one decoded from YAML or JSON.
//
// Keys are strings and always orderable. When sorter involves values, every
// value must be a number (any Go integer or float kind, or json.Number), a
// string, or a time.Time, and all values must be of the same one of those
// three kinds. Otherwise SortDynamic returns an error wrapping
// ErrUnsupportedOperation that names every offending key, without sorting
// anything. KeysOnly never looks at values.
//
// Numbers compare by numeric value across kinds, so int 2 sorts before
// float64 2.5.
func SortDynamic(
	ctx context.Context,
	m map[string]any,
	sorter KeyValueSorter,
	opts ...Option,
) ([]Entry[string, any], error) {
	options := defaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	if !sorter.hasValueStage() {
		return newSorter[string, any](sorter, options.KeyCompare, nil).Sort(m), nil
	}

	values, err := classifyAll(m)
	if err != nil {
		logger.Get(ctx).Debug("refusing to sort dynamic map",
			"sorter", sorter.String(),
			"entries", len(m),
			"error", err)

		return nil, err
	}

	sorted := newSorter[string, dynamicValue](sorter, options.KeyCompare, compareDynamic(options.StringCompare)).
		Sort(values)

	out := make([]Entry[string, any], len(sorted))

	for i, entry := range sorted {
		out[i] = Entry[string, any]{Key: entry.Key, Value: m[entry.Key]}
	}

	return out, nil
}
