package blobstore

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// LimitConfig bounds the request load a store puts on its backend.
type LimitConfig struct {
	// RequestsPerSecond caps the request rate. If 0, unlimited.
	RequestsPerSecond float64

	// Burst is the number of requests allowed at once above the rate.
	// If 0, defaults to 1.
	Burst int

	// MaxInFlight caps concurrent requests. If 0, unlimited.
	MaxInFlight int64
}

// LimitedStore throttles every call of the wrapped store, including reads
// on the blobs it opens. Writes through a WritableBlob are not throttled;
// the Create call itself is.
type LimitedStore struct {
	store    BlobStore
	limiter  *rate.Limiter       // nil if unlimited
	inFlight *semaphore.Weighted // nil if unlimited
}

var _ BlobStore = (*LimitedStore)(nil)

// Limit wraps store according to cfg. A zero cfg returns store unchanged.
func Limit(store BlobStore, cfg LimitConfig) BlobStore {
	if cfg.RequestsPerSecond <= 0 && cfg.MaxInFlight <= 0 {
		return store
	}

	l := &LimitedStore{store: store}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		l.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	if cfg.MaxInFlight > 0 {
		l.inFlight = semaphore.NewWeighted(cfg.MaxInFlight)
	}
	return l
}

// acquire waits for a request slot. The returned release must be called
// once the request finished.
func (l *LimitedStore) acquire(ctx context.Context) (release func(), err error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if l.inFlight != nil {
		if err := l.inFlight.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		return func() { l.inFlight.Release(1) }, nil
	}
	return func() {}, nil
}

func (l *LimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	b, err := l.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	lb := &limitedBlob{Blob: b, l: l}
	if m, ok := b.(Mappable); ok {
		return &mappedLimitedBlob{limitedBlob: lb, m: m}, nil
	}
	return lb, nil
}

func (l *LimitedStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.store.Create(ctx, name)
}

func (l *LimitedStore) Put(ctx context.Context, name string, data []byte) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return l.store.Put(ctx, name, data)
}

func (l *LimitedStore) Delete(ctx context.Context, name string) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return l.store.Delete(ctx, name)
}

func (l *LimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.store.List(ctx, prefix)
}

type limitedBlob struct {
	Blob
	l *LimitedStore
}

func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	release, err := b.l.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()
	return b.Blob.ReadAt(ctx, p, off)
}

func (b *limitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	release, err := b.l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return b.Blob.ReadRange(ctx, off, length)
}

// mappedLimitedBlob keeps the Mappable fast path of the wrapped blob.
// Bytes reads local memory and is not limited.
type mappedLimitedBlob struct {
	*limitedBlob
	m Mappable
}

func (b *mappedLimitedBlob) Bytes() ([]byte, error) {
	return b.m.Bytes()
}
