package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about store queries and
// HTTP requests. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*queryStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*queryStats),
		otel:  otel,
	}
}

// RecordStoreQuery increments counters for a named store query and keeps the
// last observed latency.
func (r *Recorder) RecordStoreQuery(query string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.stats[query]
	if stats == nil {
		stats = &queryStats{}
		r.stats[query] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordStoreQuery(query, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// QueryCalls returns the total attempts recorded for a query name.
func (r *Recorder) QueryCalls(query string) int {
	return r.Snapshot(query).Calls
}

// QueryErrors returns the total failed attempts recorded for a query name.
func (r *Recorder) QueryErrors(query string) int {
	return r.Snapshot(query).Errors
}

// LastQueryLatency returns the last recorded latency for a query name.
func (r *Recorder) LastQueryLatency(query string) time.Duration {
	return r.Snapshot(query).LastLatency
}

// Snapshot is a copy of the current stats for one query name.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(query string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(query)
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func (r *Recorder) snapshot(query string) queryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[query]; ok && stats != nil {
		return *stats
	}
	return queryStats{}
}
