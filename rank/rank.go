package rank

import (
	"slices"
	"strconv"
	"strings"

	"github.com/agrigo/farmstore/query"
	"github.com/agrigo/farmstore/record"
)

// SortSpec selects the sort field and direction.
type SortSpec struct {
	Field     record.Field
	Ascending bool
}

// TopNSpec selects the first N records of a sorted view.
type TopNSpec struct {
	N int
	SortSpec
}

// sortKey is the precomputed composite comparison key of one record.
// Numeric fields compare by converted value; non-convertible values take a
// fixed 0.0 sentinel so they sort deterministically instead of failing.
// Text fields compare case-insensitively.
type sortKey struct {
	num     float64
	text    string
	refDate string
}

func makeKey(r *record.Record, f record.Field, numeric bool) sortKey {
	fv, _ := record.Get(r, f)

	k := sortKey{refDate: r.RefDate}
	if numeric {
		n, err := strconv.ParseFloat(strings.TrimSpace(fv), 64)
		if err != nil {
			n = 0.0
		}
		k.num = n
	} else {
		k.text = strings.ToLower(fv)
	}
	return k
}

func (k sortKey) compare(other sortKey, numeric bool) int {
	var c int
	if numeric {
		switch {
		case k.num < other.num:
			c = -1
		case k.num > other.num:
			c = 1
		}
	} else {
		c = strings.Compare(k.text, other.text)
	}
	if c != 0 {
		return c
	}
	return strings.Compare(k.refDate, other.refDate)
}

// SortInPlace reorders the collection by the given spec.
//
// The sort is stable: records equal on the full composite key keep their
// original relative order, in both directions. An unknown field leaves the
// collection unmodified and returns ErrUnknownColumn.
func SortInPlace(records []record.Record, spec SortSpec) error {
	if !record.Valid(spec.Field) {
		return &query.ErrUnknownColumn{Column: spec.Field}
	}

	numeric := record.Numeric(spec.Field)
	keys := make([]sortKey, len(records))
	order := make([]int, len(records))
	for i := range records {
		keys[i] = makeKey(&records[i], spec.Field, numeric)
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		c := keys[a].compare(keys[b], numeric)
		if !spec.Ascending {
			c = -c
		}
		return c
	})

	sorted := make([]record.Record, len(records))
	for i, idx := range order {
		sorted[i] = records[idx]
	}
	copy(records, sorted)
	return nil
}

// Sort returns a new collection ordered by the given spec. The input is
// never mutated and the result does not alias its backing storage.
func Sort(records []record.Record, spec SortSpec) ([]record.Record, error) {
	out := make([]record.Record, len(records))
	copy(out, records)
	if err := SortInPlace(out, spec); err != nil {
		return nil, err
	}
	return out, nil
}

// TopN returns the first min(n, len) records of the sorted view. It always
// operates on a copy; the canonical collection is never reordered.
// n <= 0 yields an empty result, not an error.
func TopN(records []record.Record, spec TopNSpec) ([]record.Record, error) {
	if !record.Valid(spec.Field) {
		return nil, &query.ErrUnknownColumn{Column: spec.Field}
	}
	if spec.N <= 0 {
		return []record.Record{}, nil
	}

	sorted, err := Sort(records, spec.SortSpec)
	if err != nil {
		return nil, err
	}
	if spec.N < len(sorted) {
		sorted = sorted[:spec.N:spec.N]
	}
	return sorted, nil
}
