package csvio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrigo/farmstore/blobstore"
	"github.com/agrigo/farmstore/record"
)

const sampleCSV = "\xEF\xBB\xBF" +
	`REF_DATE,GEO,DGUID,"Area, production and farm value of potatoes",UOM,UOM_ID,SCALAR_FACTOR,SCALAR_ID,VECTOR,COORDINATE,VALUE,STATUS,SYMBOL,TERMINATED,DECIMALS
2020,Canada,123,Seeded area,Acres,28,units,0,v001,1.1,1000,,,,0
2020,Ontario,124,Seeded area,Acres,28,units,0,v002,1.2,2000,,,,0
2021,Quebec,125,Production,Hundredweight,239,thousands,3,v003,1.3,1500,,,,0
`

func TestDecode(t *testing.T) {
	records, err := Decode(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2020", records[0].RefDate)
	assert.Equal(t, "Canada", records[0].Geo)
	assert.Equal(t, "Seeded area", records[0].MeasurementType)
	assert.Equal(t, "1000", records[0].Value)
	assert.Equal(t, "Quebec", records[2].Geo)
	assert.Equal(t, "Hundredweight", records[2].UOM)
}

func TestDecodeMaxRecords(t *testing.T) {
	records, err := Decode(strings.NewReader(sampleCSV), 2)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Ontario", records[1].Geo)
}

func TestDecodeWithoutBOM(t *testing.T) {
	records, err := Decode(strings.NewReader(strings.TrimPrefix(sampleCSV, "\xEF\xBB\xBF")), 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2020", records[0].RefDate)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDecodeIgnoresUnknownColumns(t *testing.T) {
	data := "GEO,MYSTERY,VALUE\nOntario,zzz,100\n"

	records, err := Decode(strings.NewReader(data), 0)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Ontario", records[0].Geo)
	assert.Equal(t, "100", records[0].Value)
	assert.Empty(t, records[0].RefDate)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []record.Record{
		{RefDate: "2020", Geo: "Canada", MeasurementType: "Seeded area", Value: "1000", UOM: "Acres"},
		{RefDate: "2021", Geo: "Quebec", MeasurementType: "Production", Value: "1500", UOM: "Hundredweight"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records))

	// Encoded output starts with the BOM for spreadsheet compatibility.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	decoded, err := Decode(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestRepositoryLoadSave(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	repo := NewRepository(store)

	require.NoError(t, store.Put(ctx, "farm.csv", []byte(sampleCSV)))

	records, err := repo.Load(ctx, "farm.csv", 100)
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.NoError(t, repo.Save(ctx, "out.csv", records))

	reloaded, err := repo.Load(ctx, "out.csv", 0)
	require.NoError(t, err)
	assert.Equal(t, records, reloaded)
}

func TestRepositoryLoadMissing(t *testing.T) {
	repo := NewRepository(blobstore.NewMemoryStore())

	_, err := repo.Load(context.Background(), "missing.csv", 0)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestRepositoryGzipRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	repo := NewRepository(store)

	records := []record.Record{
		{RefDate: "2020", Geo: "Ontario", Value: "100"},
	}

	require.NoError(t, repo.Save(ctx, "export.csv.gz", records))

	// The stored blob really is gzip data.
	raw, err := blobstore.ReadAll(ctx, store, "export.csv.gz")
	require.NoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	_ = zr.Close()

	reloaded, err := repo.Load(ctx, "export.csv.gz", 0)
	require.NoError(t, err)
	assert.Equal(t, records, reloaded)
}
