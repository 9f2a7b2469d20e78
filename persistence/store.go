package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/wordsieve/blobstore"
	"github.com/hupe1980/wordsieve/index"
)

// Save writes the cache for ix to name in store and returns its size.
func Save(ctx context.Context, store blobstore.BlobStore, name string, ix *index.Index, optFns ...Option) (int, error) {
	data, err := Encode(ix, optFns...)
	if err != nil {
		return 0, err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return 0, fmt.Errorf("persistence: save %s: %w", name, err)
	}
	return len(data), nil
}

// Load reads the cache stored under name. A missing blob is reported as
// ErrCacheMiss; other store failures are returned unchanged.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*index.Index, error) {
	data, err := blobstore.ReadFile(ctx, store, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s: %w", ErrCacheMiss, name, err)
		}
		return nil, fmt.Errorf("persistence: load %s: %w", name, err)
	}
	return Decode(data)
}
