package query

import "github.com/agrigo/farmstore/record"

// Mask evaluates a query to a combined boolean mask over the collection.
//
// Each condition is evaluated independently; the per-condition masks are then
// combined with And/Or. An empty condition list is the vacuous case: AND
// matches everything, OR matches nothing.
func Mask(records []record.Record, q Query) (*Bitmap, error) {
	if len(q.Conditions) == 0 {
		mask := NewBitmap()
		if q.Operator != BoolOr {
			for i := range records {
				mask.Add(i)
			}
		}
		return mask, nil
	}

	combined, err := Evaluate(records, q.Conditions[0])
	if err != nil {
		return nil, err
	}

	for _, cond := range q.Conditions[1:] {
		mask, err := Evaluate(records, cond)
		if err != nil {
			return nil, err
		}
		if q.Operator == BoolOr {
			combined.Or(mask)
		} else {
			combined.And(mask)
		}
	}

	return combined, nil
}

// Search returns the subset of records matching the query.
//
// The subset preserves the original relative order of the collection and is
// backed by fresh storage: later mutation of the result never aliases the
// input, and vice versa.
func Search(records []record.Record, q Query) ([]record.Record, error) {
	mask, err := Mask(records, q)
	if err != nil {
		return nil, err
	}

	out := make([]record.Record, 0, mask.Cardinality())
	for i := range mask.Iterator() {
		out = append(out, records[i])
	}
	return out, nil
}
