package wordsieve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/wordsieve/blobstore"
	"github.com/hupe1980/wordsieve/index"
	"github.com/hupe1980/wordsieve/persistence"
	"github.com/hupe1980/wordsieve/query"
	"github.com/hupe1980/wordsieve/wordlist"
)

// Sieve owns a built index and hands out query sessions against it.
//
// A Sieve is safe for concurrent use: the index is immutable and every
// session owns its candidate set.
type Sieve struct {
	ix   *index.Index
	opts options
}

// Open returns a Sieve backed by the configured cache, falling back to the
// configured word lists.
//
// The cache is consulted first unless WithRebuild is set. Any cache problem
// (missing blob, corrupt payload, incompatible version, other word length)
// triggers a rebuild from the word lists, after which the cache is written
// again. A failed cache write is logged and otherwise ignored.
func Open(ctx context.Context, optFns ...Option) (*Sieve, error) {
	o := applyOptions(optFns)

	if o.cacheStore != nil && !o.rebuild {
		ix, err := loadCache(ctx, &o)
		if err == nil {
			return &Sieve{ix: ix, opts: o}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	words, err := loadWords(ctx, &o)
	if err != nil {
		return nil, err
	}

	s, err := build(ctx, words, o)
	if err != nil {
		return nil, err
	}

	if o.cacheStore != nil {
		// Logged and recorded inside SaveCache.
		_, _ = s.SaveCache(ctx)
	}

	return s, nil
}

// New builds a Sieve directly from words. No cache is read; SaveCache may
// still be used when WithCache is given.
func New(words []string, optFns ...Option) (*Sieve, error) {
	return build(context.Background(), words, applyOptions(optFns))
}

func build(ctx context.Context, words []string, o options) (*Sieve, error) {
	start := time.Now()
	ix, err := index.Build(words, o.indexOptions()...)
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild(len(words), elapsed, err)
	o.logger.LogBuild(ctx, len(words), elapsed, err)

	if err != nil {
		return nil, err
	}
	return &Sieve{ix: ix, opts: o}, nil
}

func loadCache(ctx context.Context, o *options) (*index.Index, error) {
	start := time.Now()
	ix, err := persistence.Load(ctx, o.cacheStore, o.cacheName)
	if err == nil && ix.WordLength() != o.wordLength {
		ix, err = nil, &StaleCacheError{Name: o.cacheName, Cached: ix.WordLength(), Expected: o.wordLength}
	}

	o.metricsCollector.RecordCacheLoad(err == nil, time.Since(start))
	o.logger.LogCacheLoad(ctx, o.cacheName, errors.Is(err, blobstore.ErrNotFound), err)

	return ix, err
}

func loadWords(ctx context.Context, o *options) ([]string, error) {
	if o.wordStore == nil || len(o.wordLists) == 0 {
		return nil, ErrNoWords
	}

	words, err := wordlist.LoadAll(ctx, o.wordStore, o.wordLists, o.wordListOptions()...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrNoWords, translateError(err))
	}

	o.logger.DebugContext(ctx, "word lists loaded",
		"lists", len(o.wordLists),
		"words", len(words),
	)
	return words, nil
}

// Index returns the underlying index.
func (s *Sieve) Index() *index.Index {
	return s.ix
}

// Len returns the number of indexed words.
func (s *Sieve) Len() int {
	return s.ix.Len()
}

// Query opens a new session over every word. The session inherits the
// Sieve's policy and case folding, and reports each step to the configured
// logger and metrics collector. optFns are applied last.
func (s *Sieve) Query(optFns ...query.Option) *query.Query {
	return s.queryContext(context.Background(), optFns...)
}

func (s *Sieve) queryContext(ctx context.Context, optFns ...query.Option) *query.Query {
	base := []query.Option{
		query.WithPolicy(s.opts.policy),
		query.WithFoldCase(s.opts.foldCase),
		query.WithTracer(&stepTracer{
			ctx:     ctx,
			logger:  s.opts.logger,
			metrics: s.opts.metricsCollector,
		}),
	}
	return query.New(s.ix, append(base, optFns...)...)
}

// Filter applies cs in order to a fresh session and returns the surviving
// words. An empty result is not an error; the error is only set when a
// Strict session rejected an argument.
func (s *Sieve) Filter(ctx context.Context, cs ...query.Constraint) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	q := s.queryContext(ctx).Apply(cs...)
	words, err := q.Results(), q.Err()
	elapsed := time.Since(start)

	s.opts.metricsCollector.RecordFilter(len(cs), len(words), elapsed, err)
	s.opts.logger.LogFilter(ctx, query.Format(cs), len(words), err)

	return words, err
}

// SaveCache writes the index to the configured cache store and returns the
// number of bytes written.
func (s *Sieve) SaveCache(ctx context.Context) (int, error) {
	if s.opts.cacheStore == nil {
		return 0, ErrNoCacheStore
	}

	start := time.Now()
	n, err := persistence.Save(ctx, s.opts.cacheStore, s.opts.cacheName, s.ix,
		persistence.WithCompression(s.opts.compression))
	elapsed := time.Since(start)

	s.opts.metricsCollector.RecordCacheSave(n, elapsed, err)
	s.opts.logger.LogCacheSave(ctx, s.opts.cacheName, n, err)

	return n, err
}

type stepTracer struct {
	ctx     context.Context
	logger  *Logger
	metrics MetricsCollector
}

func (t *stepTracer) Trace(e query.Event) {
	t.logger.LogStep(t.ctx, e)
	t.metrics.RecordStep(e.Before, e.After)
}
