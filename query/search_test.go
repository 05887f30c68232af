package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrigo/farmstore/record"
)

func TestSearchAnd(t *testing.T) {
	results, err := Search(sampleRecords(), And(
		Condition{Column: record.FieldRefDate, Operator: OpEqual, Value: "2020"},
		Condition{Column: record.FieldGeo, Operator: OpContains, Value: "a"},
	))
	require.NoError(t, err)

	// Canada and Ontario in 2020, original order preserved.
	require.Len(t, results, 2)
	assert.Equal(t, "Canada", results[0].Geo)
	assert.Equal(t, "Ontario", results[1].Geo)
}

func TestSearchOr(t *testing.T) {
	results, err := Search(sampleRecords(), Or(
		Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Canada"},
		Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Quebec"},
	))
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Canada", results[0].Geo)
	assert.Equal(t, "Quebec", results[1].Geo)
}

func TestSearchEmptyQueryAsymmetry(t *testing.T) {
	records := sampleRecords()

	// Vacuous AND returns the full collection.
	results, err := Search(records, And())
	require.NoError(t, err)
	assert.Equal(t, records, results)

	// Vacuous OR returns nothing.
	results, err = Search(records, Or())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchPreservesOrder(t *testing.T) {
	records := []record.Record{
		{Geo: "Ontario", Value: "100", RefDate: "2019"},
		{Geo: "Ontario", Value: "50", RefDate: "2018"},
		{Geo: "Quebec", Value: "200", RefDate: "2020"},
	}

	results, err := Search(records, And(
		Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Ontario"},
	))
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "100", results[0].Value)
	assert.Equal(t, "50", results[1].Value)
}

func TestSearchResultDoesNotAliasInput(t *testing.T) {
	records := sampleRecords()

	results, err := Search(records, And(
		Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Canada"},
	))
	require.NoError(t, err)
	require.Len(t, results, 1)

	results[0].Geo = "Mutated"
	assert.Equal(t, "Canada", records[0].Geo)
}

func TestSearchNonNumericOperandExcludesAll(t *testing.T) {
	results, err := Search(sampleRecords(), And(
		Condition{Column: record.FieldValue, Operator: OpGreaterThan, Value: "abc"},
	))
	require.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestSearchAbortsOnUnknownColumn(t *testing.T) {
	_, err := Search(sampleRecords(), And(
		Condition{Column: record.FieldGeo, Operator: OpEqual, Value: "Canada"},
		Condition{Column: "bogus", Operator: OpEqual, Value: "x"},
	))

	var uc *ErrUnknownColumn
	require.ErrorAs(t, err, &uc)
}

func TestMaskCombination(t *testing.T) {
	records := sampleRecords()

	mask, err := Mask(records, Or(
		Condition{Column: record.FieldUOM, Operator: OpEqual, Value: "Acres"},
		Condition{Column: record.FieldValue, Operator: OpGreaterEqual, Value: "2000"},
	))
	require.NoError(t, err)

	assert.Equal(t, 2, mask.Cardinality())
	assert.True(t, mask.Contains(1))
	assert.True(t, mask.Contains(3))
}
