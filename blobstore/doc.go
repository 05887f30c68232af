// Package blobstore abstracts where datasets and exports live.
//
// A Store reads and writes named blobs (CSV datasets, exported result files)
// behind a small context-aware interface. Backends include the local file
// system, an in-memory map for tests, Amazon S3 and MinIO/S3-compatible
// object storage.
package blobstore
