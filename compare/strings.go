package compare

import (
	"strings"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Natural compares strings in natural order, so embedded numbers compare by
// value: "file2" sorts before "file10". Strings that natural ordering
// considers equivalent (such as "a01" and "a1") fall back to byte order, so
// distinct strings never compare as equal.
func Natural(a, b string) int {
	if a == b {
		return 0
	}

	// natsort.Compare reports true in both directions for equivalent strings.
	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case ab && !ba:
		return -1
	case ba && !ab:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Collated returns a comparison that orders strings by the collation rules
// of the given language, e.g. language.German places "ä" next to "a" rather
// than after "z". As with Natural, strings the collator considers equivalent
// fall back to byte order.
//
// A collate.Collator keeps scratch buffers and cannot be shared between
// goroutines, so the returned Func serializes its calls.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	var mut sync.Mutex

	collator := collate.New(tag, opts...)

	return func(a, b string) int {
		if a == b {
			return 0
		}

		mut.Lock()
		c := collator.CompareString(a, b)
		mut.Unlock()

		if c != 0 {
			return c
		}

		return strings.Compare(a, b)
	}
}

// Fold compares strings case-insensitively, falling back to byte order for
// strings that differ only in case.
func Fold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}
