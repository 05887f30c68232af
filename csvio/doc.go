// Package csvio loads and saves record collections as CSV.
//
// The repository speaks to a blobstore.Store rather than the file system
// directly, so datasets and exports can live locally, in memory (tests) or
// in object storage. The source dataset is utf-8-sig encoded; a leading BOM
// is stripped on read and written back on save for spreadsheet
// compatibility. Names ending in ".gz" are transparently gzip-compressed.
package csvio
