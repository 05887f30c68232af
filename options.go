package farmstore

import "github.com/agrigo/farmstore/blobstore"

// DefaultMaxRecords caps how many records a load pulls into memory unless
// overridden.
const DefaultMaxRecords = 100

type options struct {
	logger     *Logger
	store      blobstore.Store
	maxRecords int
}

// Option configures Store construction.
type Option func(*options)

// WithLogger configures the logger. Passing nil keeps the silent default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBlobStore configures where datasets and exports are read and written.
// The default is a local store rooted at the current directory.
func WithBlobStore(s blobstore.Store) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithMaxRecords configures the load cap. n <= 0 removes the limit.
func WithMaxRecords(n int) Option {
	return func(o *options) {
		o.maxRecords = n
	}
}
