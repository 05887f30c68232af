package query

import "github.com/agrigo/farmstore/record"

// UniqueValues returns the set of distinct non-empty string values of a
// field across the collection. Empty values are excluded.
func UniqueValues(records []record.Record, f record.Field) (map[string]struct{}, error) {
	if !record.Valid(f) {
		return nil, &ErrUnknownColumn{Column: f}
	}

	values := make(map[string]struct{})
	for i := range records {
		fv, err := record.Get(&records[i], f)
		if err != nil {
			return nil, err
		}
		if fv == "" {
			continue
		}
		values[fv] = struct{}{}
	}
	return values, nil
}
