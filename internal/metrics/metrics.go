package metrics

import (
	"sync"
	"time"
)

// GenerationSample describes one successful lineup generation.
type GenerationSample struct {
	TeamCount   int
	Players     int
	Goalkeepers int
	Spread      int
	Duration    time.Duration
}

// Recorder captures lightweight, in-memory metrics about lineup generation and session upkeep,
// mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats Snapshot
	otel  *otelInstruments
}

// Snapshot is a copy of the recorder's counters.
type Snapshot struct {
	Generations     int
	PlayersBalanced int
	Rejections      map[string]int
	LastSpread      int
	LastDuration    time.Duration
	Sweeps          int
	SessionsExpired int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: Snapshot{Rejections: make(map[string]int)},
		otel:  otel,
	}
}

// RecordGeneration tracks a successful lineup generation.
func (r *Recorder) RecordGeneration(sample GenerationSample) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.Generations++
	r.stats.PlayersBalanced += sample.Players
	r.stats.LastSpread = sample.Spread
	r.stats.LastDuration = sample.Duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGeneration(sample)
	}
}

// RecordRejection tracks a generation request turned away by validation.
func (r *Recorder) RecordRejection(reason string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.Rejections[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRejection(reason)
	}
}

// RecordSweep tracks one pass of the idle-session sweeper.
func (r *Recorder) RecordSweep(duration time.Duration, removed int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.Sweeps++
	r.stats.SessionsExpired += removed
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSweep(duration, removed)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Generations returns the number of successful generations recorded.
func (r *Recorder) Generations() int {
	return r.Snapshot().Generations
}

// Rejections returns how many generations were rejected for reason.
func (r *Recorder) Rejections(reason string) int {
	return r.Snapshot().Rejections[reason]
}

// Snapshot returns a copy of the current stats.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Rejections: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.stats
	snap.Rejections = make(map[string]int, len(r.stats.Rejections))
	for k, v := range r.stats.Rejections {
		snap.Rejections[k] = v
	}
	return snap
}
