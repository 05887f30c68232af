package csvio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/agrigo/farmstore/blobstore"
	"github.com/agrigo/farmstore/record"
)

// ErrEmptyDataset is returned when a dataset has no header row.
var ErrEmptyDataset = errors.New("dataset has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Repository persists record collections as CSV blobs.
type Repository struct {
	store blobstore.Store
}

// NewRepository creates a repository backed by the given blob store.
func NewRepository(store blobstore.Store) *Repository {
	return &Repository{store: store}
}

// Load reads up to maxRecords records from the named CSV blob.
// maxRecords <= 0 means no limit. Columns are matched by header name;
// columns the schema does not know are ignored, missing columns load as
// empty strings.
func (r *Repository) Load(ctx context.Context, name string, maxRecords int) ([]record.Record, error) {
	rc, err := r.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var reader io.Reader = rc
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("open gzip %q: %w", name, err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	return Decode(reader, maxRecords)
}

// Save writes the records to the named CSV blob, replacing any existing
// content. The header row uses the source dataset's column names.
func (r *Repository) Save(ctx context.Context, name string, records []record.Record) error {
	var buf bytes.Buffer

	var w io.Writer = &buf
	var gz *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		gz = gzip.NewWriter(&buf)
		w = gz
	}

	if err := Encode(w, records); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return err
		}
	}

	return r.store.Put(ctx, name, buf.Bytes())
}

// Decode reads records from CSV data. A leading UTF-8 BOM is stripped.
func Decode(r io.Reader, maxRecords int) ([]record.Record, error) {
	br := newBOMStrippingReader(r)

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // rows may legitimately be ragged at the tail

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Column index -> schema field, for the columns we recognize.
	fields := make(map[int]record.Field)
	for i, h := range header {
		if f, ok := record.FieldForHeader(strings.TrimSpace(h)); ok {
			fields[i] = f
		}
	}

	var records []record.Record
	for maxRecords <= 0 || len(records) < maxRecords {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}

		var rec record.Record
		for i, f := range fields {
			if i < len(row) {
				_ = record.Set(&rec, f, row[i])
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Encode writes records as CSV with a UTF-8 BOM and the dataset header row.
func Encode(w io.Writer, records []record.Record) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	fields := record.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = record.Header(f)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(fields))
	for i := range records {
		for j, f := range fields {
			v, err := record.Get(&records[i], f)
			if err != nil {
				return err
			}
			row[j] = v
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// newBOMStrippingReader removes a leading UTF-8 BOM if present.
func newBOMStrippingReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
