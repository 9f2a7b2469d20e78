package wordsieve

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each index build from a word list.
	RecordBuild(words int, duration time.Duration, err error)

	// RecordCacheLoad is called after each attempt to read the index cache.
	// hit is true when the cached index was used.
	RecordCacheLoad(hit bool, duration time.Duration)

	// RecordCacheSave is called after each cache write.
	RecordCacheSave(size int, duration time.Duration, err error)

	// RecordFilter is called after each Sieve.Filter call.
	RecordFilter(constraints, results int, duration time.Duration, err error)

	// RecordStep is called after every operation of a query session opened
	// through a Sieve.
	RecordStep(before, after int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordCacheLoad(bool, time.Duration)         {}
func (NoopMetricsCollector) RecordCacheSave(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordStep(int, int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildWords       atomic.Int64
	BuildTotalNanos  atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
	CacheSaves       atomic.Int64
	CacheSaveErrors  atomic.Int64
	CacheSavedBytes  atomic.Int64
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterResults    atomic.Int64
	FilterTotalNanos atomic.Int64
	StepCount        atomic.Int64
	StepEliminated   atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(words int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildWords.Add(int64(words))
}

// RecordCacheLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheLoad(hit bool, _ time.Duration) {
	if hit {
		b.CacheHits.Add(1)
	} else {
		b.CacheMisses.Add(1)
	}
}

// RecordCacheSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheSave(size int, _ time.Duration, err error) {
	b.CacheSaves.Add(1)
	if err != nil {
		b.CacheSaveErrors.Add(1)
		return
	}
	b.CacheSavedBytes.Add(int64(size))
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(_, results int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	b.FilterResults.Add(int64(results))
	if err != nil {
		b.FilterErrors.Add(1)
	}
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(before, after int) {
	b.StepCount.Add(1)
	b.StepEliminated.Add(int64(before - after))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildErrors:     b.BuildErrors.Load(),
		BuildWords:      b.BuildWords.Load(),
		BuildAvgNanos:   avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		CacheHits:       b.CacheHits.Load(),
		CacheMisses:     b.CacheMisses.Load(),
		CacheSaves:      b.CacheSaves.Load(),
		CacheSaveErrors: b.CacheSaveErrors.Load(),
		CacheSavedBytes: b.CacheSavedBytes.Load(),
		FilterCount:     b.FilterCount.Load(),
		FilterErrors:    b.FilterErrors.Load(),
		FilterResults:   b.FilterResults.Load(),
		FilterAvgNanos:  avg(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
		StepCount:       b.StepCount.Load(),
		StepEliminated:  b.StepEliminated.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64 `json:"build_count"`
	BuildErrors     int64 `json:"build_errors"`
	BuildWords      int64 `json:"build_words"`
	BuildAvgNanos   int64 `json:"build_avg_nanos"`
	CacheHits       int64 `json:"cache_hits"`
	CacheMisses     int64 `json:"cache_misses"`
	CacheSaves      int64 `json:"cache_saves"`
	CacheSaveErrors int64 `json:"cache_save_errors"`
	CacheSavedBytes int64 `json:"cache_saved_bytes"`
	FilterCount     int64 `json:"filter_count"`
	FilterErrors    int64 `json:"filter_errors"`
	FilterResults   int64 `json:"filter_results"`
	FilterAvgNanos  int64 `json:"filter_avg_nanos"`
	StepCount       int64 `json:"step_count"`
	StepEliminated  int64 `json:"step_eliminated"`
}
