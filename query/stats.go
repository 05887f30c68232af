package query

import "github.com/agrigo/farmstore/record"

// FieldStats holds summary statistics of one numeric field.
// Count is the number of records whose value converted; only converted
// values contribute to Min, Max and Mean.
type FieldStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summary holds summary statistics over a record subset.
type Summary struct {
	TotalRecords int
	// Fields maps each numeric field with at least one convertible value
	// to its statistics. Non-convertible values are excluded from the
	// statistic, never treated as zero.
	Fields map[record.Field]FieldStats
}

// Summarize computes summary statistics over the given records.
func Summarize(records []record.Record) Summary {
	s := Summary{
		TotalRecords: len(records),
		Fields:       make(map[record.Field]FieldStats),
	}

	for _, f := range record.Fields() {
		if !record.Numeric(f) {
			continue
		}

		var (
			count    int
			sum      float64
			min, max float64
		)
		for i := range records {
			fv, err := record.Get(&records[i], f)
			if err != nil {
				continue
			}
			n, ok := parseFloat(fv)
			if !ok {
				continue
			}
			if count == 0 || n < min {
				min = n
			}
			if count == 0 || n > max {
				max = n
			}
			sum += n
			count++
		}

		if count > 0 {
			s.Fields[f] = FieldStats{
				Count: count,
				Min:   min,
				Max:   max,
				Mean:  sum / float64(count),
			}
		}
	}

	return s
}
