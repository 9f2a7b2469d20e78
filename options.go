package wordsieve

import (
	"log/slog"

	"github.com/hupe1980/wordsieve/blobstore"
	"github.com/hupe1980/wordsieve/index"
	"github.com/hupe1980/wordsieve/persistence"
	"github.com/hupe1980/wordsieve/query"
	"github.com/hupe1980/wordsieve/wordlist"
)

// DefaultCacheName is the blob name of the index cache.
const DefaultCacheName = "wordsieve.idx"

type options struct {
	wordStore        blobstore.BlobStore
	wordLists        []string
	cacheStore       blobstore.BlobStore
	cacheName        string
	rebuild          bool
	compression      persistence.Compression
	wordLength       int
	foldCase         bool
	dedupe           bool
	policy           query.Policy
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Open and New.
type Option func(*options)

// WithWordLists names the word lists to load from store when no usable
// cache exists. Lists are read concurrently and concatenated in order, so
// word ids follow the order of names.
//
// Example:
//
//	store := blobstore.NewLocalStore("./lists")
//	s, _ := wordsieve.Open(ctx, wordsieve.WithWordLists(store, "answers.txt", "allowed.txt"))
func WithWordLists(store blobstore.BlobStore, names ...string) Option {
	return func(o *options) {
		o.wordStore = store
		o.wordLists = names
	}
}

// WithCache configures where the index cache lives. Open tries the cache
// first and writes it after every rebuild. An empty name selects
// DefaultCacheName.
//
// Example with S3:
//
//	cache, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("wordsieve/"))
//	s, _ := wordsieve.Open(ctx,
//	    wordsieve.WithWordLists(blobstore.NewLocalStore("."), "words.txt"),
//	    wordsieve.WithCache(cache, ""),
//	)
func WithCache(store blobstore.BlobStore, name string) Option {
	return func(o *options) {
		if name == "" {
			name = DefaultCacheName
		}
		o.cacheStore = store
		o.cacheName = name
	}
}

// WithRebuild makes Open ignore an existing cache and rebuild from the word
// lists. The cache is still written afterwards.
func WithRebuild(rebuild bool) Option {
	return func(o *options) {
		o.rebuild = rebuild
	}
}

// WithCompression selects the payload compression of written caches.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithWordLength sets the number of position slots (default 5). Loaded word
// lists are restricted to words of this length.
func WithWordLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.wordLength = n
		}
	}
}

// WithFoldCase folds ASCII upper case to lower case in word lists and query
// arguments.
func WithFoldCase(fold bool) Option {
	return func(o *options) {
		o.foldCase = fold
	}
}

// WithDedupe drops repeated words while loading word lists.
func WithDedupe(dedupe bool) Option {
	return func(o *options) {
		o.dedupe = dedupe
	}
}

// WithPolicy sets the argument policy of query sessions opened by the Sieve.
func WithPolicy(p query.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wordsieve.BasicMetricsCollector{}
//	s, _ := wordsieve.New(words, wordsieve.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := wordsieve.NewJSONLogger(slog.LevelInfo)
//	s, _ := wordsieve.New(words, wordsieve.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		cacheName:        DefaultCacheName,
		compression:      persistence.CompressionZSTD,
		wordLength:       index.DefaultWordLength,
		policy:           query.Lenient,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) indexOptions() []index.Option {
	return []index.Option{
		index.WithWordLength(o.wordLength),
		index.WithFoldCase(o.foldCase),
	}
}

func (o *options) wordListOptions() []wordlist.Option {
	return []wordlist.Option{
		wordlist.WithFoldCase(o.foldCase),
		wordlist.WithLength(o.wordLength),
		wordlist.WithDedupe(o.dedupe),
	}
}
