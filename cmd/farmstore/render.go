package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/agrigo/farmstore"
	"github.com/agrigo/farmstore/query"
	"github.com/agrigo/farmstore/record"
)

// Columns shown in the tabular views. The full 15-field record is too wide
// for a terminal; the detail view prints everything.
var tableFields = []record.Field{
	record.FieldRefDate,
	record.FieldGeo,
	record.FieldMeasurementType,
	record.FieldUOM,
	record.FieldValue,
	record.FieldStatus,
}

func renderRecords(w io.Writer, records []record.Record) {
	table := tablewriter.NewWriter(w)

	header := []string{"#"}
	for _, f := range tableFields {
		header = append(header, record.Header(f))
	}
	table.SetHeader(header)

	for i, r := range records {
		row := []string{strconv.Itoa(i)}
		for _, f := range tableFields {
			v, _ := record.Get(&r, f)
			row = append(row, v)
		}
		table.Append(row)
	}

	table.Render()
	fmt.Fprintf(w, "%d record(s)\n", len(records))
}

func renderIndexed(w io.Writer, rows []farmstore.Indexed) {
	table := tablewriter.NewWriter(w)

	header := []string{"#"}
	for _, f := range tableFields {
		header = append(header, record.Header(f))
	}
	table.SetHeader(header)

	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Index)}
		for _, f := range tableFields {
			v, _ := record.Get(&row.Record, f)
			cells = append(cells, v)
		}
		table.Append(cells)
	}

	table.Render()
	fmt.Fprintf(w, "%d record(s)\n", len(rows))
}

func renderDetail(w io.Writer, r record.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	for _, f := range record.Fields() {
		v, _ := record.Get(&r, f)
		table.Append([]string{string(f), v})
	}
	table.Render()
}

func renderSummary(w io.Writer, s query.Summary) {
	fmt.Fprintf(w, "Total records: %d\n", s.TotalRecords)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Count", "Min", "Max", "Mean"})

	for _, f := range record.Fields() {
		stats, ok := s.Fields[f]
		if !ok {
			continue
		}
		table.Append([]string{
			string(f),
			strconv.Itoa(stats.Count),
			strconv.FormatFloat(stats.Min, 'g', -1, 64),
			strconv.FormatFloat(stats.Max, 'g', -1, 64),
			strconv.FormatFloat(stats.Mean, 'g', -1, 64),
		})
	}
	table.Render()
}

func renderUnique(w io.Writer, f record.Field, values map[string]struct{}) {
	sorted := make([]string, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)

	fmt.Fprintf(w, "%d distinct value(s) for %s:\n", len(sorted), f)
	for _, v := range sorted {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

var operators = map[string]query.Operator{
	"eq":         query.OpEqual,
	"ne":         query.OpNotEqual,
	"gt":         query.OpGreaterThan,
	"gte":        query.OpGreaterEqual,
	"lt":         query.OpLessThan,
	"lte":        query.OpLessEqual,
	"contains":   query.OpContains,
	"startswith": query.OpStartsWith,
	"endswith":   query.OpEndsWith,
	"regex":      query.OpRegex,
}

// parseCondition parses "column:operator:value". The value may itself
// contain colons.
func parseCondition(s string) (query.Condition, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return query.Condition{}, fmt.Errorf("condition %q: want column:operator:value", s)
	}

	field := record.Field(parts[0])
	if !record.Valid(field) {
		return query.Condition{}, fmt.Errorf("condition %q: unknown column %q", s, parts[0])
	}

	op, ok := operators[parts[1]]
	if !ok {
		return query.Condition{}, fmt.Errorf("condition %q: unknown operator %q", s, parts[1])
	}

	return query.Condition{Column: field, Operator: op, Value: parts[2]}, nil
}
