package mapsort

import (
	"strings"

	"github.com/amp-labs/mapsort/compare"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options configures SortDynamic.
type Options struct {
	// KeyCompare orders keys. Defaults to byte-wise string comparison.
	KeyCompare compare.Func[string]

	// StringCompare orders string values. Defaults to byte-wise string
	// comparison.
	StringCompare compare.Func[string]
}

// Option is a functional option for configuring SortDynamic.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		KeyCompare:    strings.Compare,
		StringCompare: strings.Compare,
	}
}

// WithKeyCompare orders keys with the given comparison. A nil comparison is
// ignored.
func WithKeyCompare(f compare.Func[string]) Option {
	return func(o *Options) {
		if f != nil {
			o.KeyCompare = f
		}
	}
}

// WithStringCompare orders string values with the given comparison. A nil
// comparison is ignored.
func WithStringCompare(f compare.Func[string]) Option {
	return func(o *Options) {
		if f != nil {
			o.StringCompare = f
		}
	}
}

// WithNaturalKeys orders keys naturally, so "item2" sorts before "item10".
func WithNaturalKeys() Option {
	return WithKeyCompare(compare.Natural)
}

// WithCollation orders keys and string values by the collation rules of the
// given language.
func WithCollation(tag language.Tag, opts ...collate.Option) Option {
	collated := compare.Collated(tag, opts...)

	return func(o *Options) {
		o.KeyCompare = collated
		o.StringCompare = collated
	}
}
