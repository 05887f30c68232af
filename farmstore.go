package farmstore

import (
	"context"
	"slices"
	"strings"

	"github.com/agrigo/farmstore/blobstore"
	"github.com/agrigo/farmstore/csvio"
	"github.com/agrigo/farmstore/query"
	"github.com/agrigo/farmstore/rank"
	"github.com/agrigo/farmstore/record"
)

// Store owns the canonical in-memory record collection.
//
// It is the single logical owner: search, top-N and unique-value extraction
// get read-only access, Sort gets explicit mutate permission, and every
// returned collection is a copy. A Store is meant for one interactive
// session; it is not safe for concurrent use.
type Store struct {
	records    []record.Record
	repo       *csvio.Repository
	logger     *Logger
	maxRecords int
	source     string
}

// Indexed pairs a record with its position in the canonical collection.
type Indexed struct {
	Index  int
	Record record.Record
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	o := options{
		logger:     NoopLogger(),
		store:      blobstore.NewLocalStore("."),
		maxRecords: DefaultMaxRecords,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		repo:       csvio.NewRepository(o.store),
		logger:     o.logger,
		maxRecords: o.maxRecords,
	}
}

// Count returns the number of records currently in memory.
func (s *Store) Count() int {
	return len(s.records)
}

// Source returns the name of the currently loaded dataset, or "" if none.
func (s *Store) Source() string {
	return s.source
}

// Records returns a copy of the canonical collection.
func (s *Store) Records() []record.Record {
	return slices.Clone(s.records)
}

// Record returns the record at the given zero-based index.
func (s *Store) Record(i int) (record.Record, error) {
	if i < 0 || i >= len(s.records) {
		return record.Record{}, &ErrIndexOutOfRange{Index: i, Count: len(s.records)}
	}
	return s.records[i], nil
}

// Add appends a record to the canonical collection.
func (s *Store) Add(r record.Record) {
	s.records = append(s.records, r)
}

// Update replaces the record at the given index.
func (s *Store) Update(i int, r record.Record) error {
	if i < 0 || i >= len(s.records) {
		return &ErrIndexOutOfRange{Index: i, Count: len(s.records)}
	}
	s.records[i] = r
	return nil
}

// Delete removes the record at the given index.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.records) {
		return &ErrIndexOutOfRange{Index: i, Count: len(s.records)}
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

// RecordsInRange returns the records with indices in [start, end], clamped
// to the collection bounds.
func (s *Store) RecordsInRange(start, end int) []Indexed {
	start = max(start, 0)
	end = min(end, len(s.records)-1)

	var out []Indexed
	for i := start; i <= end; i++ {
		out = append(out, Indexed{Index: i, Record: s.records[i]})
	}
	return out
}

// FindText scans the key fields (geo, ref_date, measurement type, value)
// for a case-insensitive substring match.
func (s *Store) FindText(term string) []Indexed {
	term = strings.ToLower(term)

	var out []Indexed
	for i := range s.records {
		r := &s.records[i]
		if strings.Contains(strings.ToLower(r.Geo), term) ||
			strings.Contains(strings.ToLower(r.RefDate), term) ||
			strings.Contains(strings.ToLower(r.MeasurementType), term) ||
			strings.Contains(strings.ToLower(r.Value), term) {
			out = append(out, Indexed{Index: i, Record: s.records[i]})
		}
	}
	return out
}

// LoadCSV replaces the canonical collection with the named dataset.
func (s *Store) LoadCSV(ctx context.Context, name string) error {
	records, err := s.repo.Load(ctx, name, s.maxRecords)
	s.logger.LogLoad(ctx, name, len(records), err)
	if err != nil {
		return err
	}

	s.records = records
	s.source = name
	return nil
}

// SaveCSV writes the canonical collection to the named dataset.
func (s *Store) SaveCSV(ctx context.Context, name string) error {
	err := s.repo.Save(ctx, name, s.records)
	s.logger.LogSave(ctx, name, len(s.records), err)
	return err
}

// ExportCSV writes an arbitrary record subset (typically search results or a
// top-N view) to the named blob. Names ending in ".gz" are compressed.
func (s *Store) ExportCSV(ctx context.Context, name string, records []record.Record) error {
	err := s.repo.Save(ctx, name, records)
	s.logger.LogSave(ctx, name, len(records), err)
	return err
}

// Search returns the subset of the canonical collection matching the query,
// in original order.
func (s *Store) Search(q query.Query) ([]record.Record, error) {
	results, err := query.Search(s.records, q)
	s.logger.LogSearch(context.Background(), len(q.Conditions), len(results), err)
	return results, err
}

// Summarize computes summary statistics over the canonical collection.
// Use query.Summarize directly for statistics over a search result.
func (s *Store) Summarize() query.Summary {
	return query.Summarize(s.records)
}

// UniqueValues returns the distinct non-empty values of a field.
func (s *Store) UniqueValues(f record.Field) (map[string]struct{}, error) {
	return query.UniqueValues(s.records, f)
}

// Sort reorders the canonical collection in place. This is the only
// operation with mutate permission on the canonical ordering.
func (s *Store) Sort(spec rank.SortSpec) error {
	err := rank.SortInPlace(s.records, spec)
	s.logger.LogSort(context.Background(), string(spec.Field), spec.Ascending, err)
	return err
}

// Sorted returns a sorted copy without touching the canonical order.
func (s *Store) Sorted(spec rank.SortSpec) ([]record.Record, error) {
	return rank.Sort(s.records, spec)
}

// TopN returns the first min(n, Count) records of the sorted view. The
// canonical collection is never reordered.
func (s *Store) TopN(spec rank.TopNSpec) ([]record.Record, error) {
	return rank.TopN(s.records, spec)
}
