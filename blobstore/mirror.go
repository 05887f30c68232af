package blobstore

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Mirror copies the named blobs from src to dst, fetching up to concurrency
// blobs in parallel. Blob content is copied whole; a failed blob aborts the
// remaining copies and returns the first error.
func Mirror(ctx context.Context, src, dst Store, names []string, concurrency int) error {
	if concurrency <= 0 {
		concurrency = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, name := range names {
		g.Go(func() error {
			data, err := ReadAll(ctx, src, name)
			if err != nil {
				return err
			}
			return dst.Put(ctx, name, data)
		})
	}

	return g.Wait()
}

// MirrorPrefix copies every blob under the given prefix from src to dst.
func MirrorPrefix(ctx context.Context, src, dst Store, prefix string, concurrency int) error {
	names, err := src.List(ctx, prefix)
	if err != nil {
		return err
	}
	return Mirror(ctx, src, dst, names, concurrency)
}
