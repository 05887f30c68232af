package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrigo/farmstore/record"
)

func TestUniqueValues(t *testing.T) {
	records := []record.Record{
		{Geo: "Ontario"},
		{Geo: "Quebec"},
		{Geo: "Ontario"},
		{Geo: "Alberta"},
	}

	values, err := UniqueValues(records, record.FieldGeo)
	require.NoError(t, err)

	assert.Len(t, values, 3)
	assert.Contains(t, values, "Ontario")
	assert.Contains(t, values, "Quebec")
	assert.Contains(t, values, "Alberta")
}

func TestUniqueValuesExcludesEmpty(t *testing.T) {
	records := []record.Record{
		{Status: "A"},
		{Status: ""},
		{Status: "B"},
		{Status: ""},
	}

	values, err := UniqueValues(records, record.FieldStatus)
	require.NoError(t, err)

	assert.Len(t, values, 2)
	assert.NotContains(t, values, "")
	assert.LessOrEqual(t, len(values), len(records))
}

func TestUniqueValuesUnknownColumn(t *testing.T) {
	_, err := UniqueValues(sampleRecords(), "bogus")

	var uc *ErrUnknownColumn
	require.ErrorAs(t, err, &uc)
}

func TestUniqueValuesEmptyCollection(t *testing.T) {
	values, err := UniqueValues(nil, record.FieldGeo)
	require.NoError(t, err)
	assert.Empty(t, values)
}
