package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrigo/farmstore/record"
)

func sampleRecords() []record.Record {
	return []record.Record{
		{
			RefDate: "2020", Geo: "Canada", DGUID: "123",
			MeasurementType: "Wheat", UOM: "Bushels", UOMID: "1",
			ScalarFactor: "thousands", ScalarID: "3", Vector: "v001",
			Coordinate: "1.1", Value: "1000", Decimals: "0",
		},
		{
			RefDate: "2020", Geo: "Ontario", DGUID: "124",
			MeasurementType: "Corn", UOM: "Bushels", UOMID: "1",
			ScalarFactor: "thousands", ScalarID: "3", Vector: "v002",
			Coordinate: "1.2", Value: "2000", Decimals: "0",
		},
		{
			RefDate: "2021", Geo: "Quebec", DGUID: "125",
			MeasurementType: "Barley", UOM: "Bushels", UOMID: "1",
			ScalarFactor: "thousands", ScalarID: "3", Vector: "v003",
			Coordinate: "1.3", Value: "1500", Decimals: "0",
		},
		{
			RefDate: "2021", Geo: "Alberta", DGUID: "126",
			MeasurementType: "Wheat", UOM: "Acres", UOMID: "28",
			ScalarFactor: "units", ScalarID: "0", Vector: "v004",
			Coordinate: "1.4", Value: "500", Decimals: "0",
		},
	}
}

func TestEvaluate(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		cond     Condition
		expected []int
	}{
		{
			"Equal_String",
			Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Ontario"},
			[]int{1},
		},
		{
			"Equal_String_CaseSensitive",
			Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "ontario"},
			nil,
		},
		{
			"NotEqual_String",
			Condition{Column: record.FieldUOM, Operator: OpNotEqual, Value: "Bushels"},
			[]int{3},
		},
		{
			"Equal_Numeric",
			Condition{Column: record.FieldValue, Operator: OpEqual, Value: "1500"},
			[]int{2},
		},
		{
			"Equal_Numeric_DifferentLexicalForm",
			Condition{Column: record.FieldValue, Operator: OpEqual, Value: "1500.0"},
			[]int{2},
		},
		{
			"GreaterThan_Numeric",
			Condition{Column: record.FieldValue, Operator: OpGreaterThan, Value: "1000"},
			[]int{1, 2},
		},
		{
			"LessEqual_Numeric",
			Condition{Column: record.FieldValue, Operator: OpLessEqual, Value: "1000"},
			[]int{0, 3},
		},
		{
			"GreaterEqual_Numeric",
			Condition{Column: record.FieldValue, Operator: OpGreaterEqual, Value: "1500"},
			[]int{1, 2},
		},
		{
			"LessThan_Numeric",
			Condition{Column: record.FieldValue, Operator: OpLessThan, Value: "1000"},
			[]int{3},
		},
		{
			"GreaterThan_NonNumericOperand_MatchesNothing",
			Condition{Column: record.FieldValue, Operator: OpGreaterThan, Value: "abc"},
			nil,
		},
		{
			"GreaterThan_TextColumn_Lexicographic",
			Condition{Column: record.FieldGeo, Operator: OpGreaterThan, Value: "Canada"},
			[]int{1, 2},
		},
		{
			"Contains",
			Condition{Column: record.FieldMeasurementType, Operator: OpContains, Value: "Wheat"},
			[]int{0, 3},
		},
		{
			"Contains_CaseSensitive",
			Condition{Column: record.FieldMeasurementType, Operator: OpContains, Value: "wheat"},
			nil,
		},
		{
			"StartsWith",
			Condition{Column: record.FieldMeasurementType, Operator: OpStartsWith, Value: "W"},
			[]int{0, 3},
		},
		{
			"EndsWith",
			Condition{Column: record.FieldUOM, Operator: OpEndsWith, Value: "s"},
			[]int{0, 1, 2, 3},
		},
		{
			"Regex",
			Condition{Column: record.FieldVector, Operator: OpRegex, Value: "^v00[12]$"},
			[]int{0, 1},
		},
		{
			"Equal_NoMatch",
			Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Nowhere"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Evaluate(records, tt.cond)
			require.NoError(t, err)

			var got []int
			for i := range mask.Iterator() {
				got = append(got, i)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateUnknownColumn(t *testing.T) {
	_, err := Evaluate(sampleRecords(), Condition{Column: "nope", Operator: OpEqual, Value: "x"})
	require.Error(t, err)

	var uc *ErrUnknownColumn
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, record.Field("nope"), uc.Column)
}

func TestEvaluateInvalidPattern(t *testing.T) {
	_, err := Evaluate(sampleRecords(), Condition{Column: record.FieldGeo, Operator: OpRegex, Value: "("})
	require.Error(t, err)

	var ip *ErrInvalidPattern
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "(", ip.Pattern)
	assert.Error(t, ip.Unwrap())
}

func TestEvaluateNumericFallbackToString(t *testing.T) {
	// A numeric column holding a non-convertible value still participates in
	// equality as a raw string.
	records := []record.Record{
		{Geo: "Ontario", Value: "n/a"},
		{Geo: "Quebec", Value: "100"},
	}

	mask, err := Evaluate(records, Condition{Column: record.FieldValue, Operator: OpEqual, Value: "n/a"})
	require.NoError(t, err)
	assert.Equal(t, 1, mask.Cardinality())
	assert.True(t, mask.Contains(0))

	// Ordering operators exclude the non-convertible value instead of failing.
	mask, err = Evaluate(records, Condition{Column: record.FieldValue, Operator: OpGreaterThan, Value: "50"})
	require.NoError(t, err)
	assert.Equal(t, 1, mask.Cardinality())
	assert.True(t, mask.Contains(1))
}
