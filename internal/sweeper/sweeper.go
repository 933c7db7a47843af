package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
	"github.com/preston-bernstein/pickup-teams-service/internal/metrics"
)

const (
	defaultInterval = 5 * time.Minute
	defaultTTL      = 6 * time.Hour
)

// Expirer drops sessions idle for longer than ttl and reports how many went.
type Expirer interface {
	ExpireIdle(ttl time.Duration) int
}

// Sweeper periodically expires idle sessions.
type Sweeper struct {
	target   Expirer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	ttl      time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the sweeper's recent activity.
type Status struct {
	Running     bool
	Sweeps      int
	LastSweep   time.Time
	LastRemoved int
}

// IsReady reports whether the sweep loop is running.
func (s Status) IsReady() bool {
	return s.Running
}

// New constructs a Sweeper. Non-positive interval or ttl use defaults.
func New(target Expirer, logger *slog.Logger, recorder *metrics.Recorder, interval, ttl time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Sweeper{
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		ttl:      ttl,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start begins sweeping until the context is cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.ticker = time.NewTicker(s.interval)
	s.startMu.Unlock()

	s.setRunning(true)

	go func() {
		defer close(s.exited)
		defer s.setRunning(false)
		logging.Info(s.logger, "session sweeper started",
			slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()),
		)

		for {
			select {
			case <-ctx.Done():
				s.ticker.Stop()
				logging.Info(s.logger, "session sweeper stopped")
				return
			case <-s.done:
				s.ticker.Stop()
				logging.Info(s.logger, "session sweeper stopped")
				return
			case <-s.ticker.C:
				s.SweepOnce()
			}
		}
	}()
}

// Stop halts the sweep loop and waits for it to exit or for ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.done)
	})

	s.startMu.Lock()
	started := s.started
	s.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-s.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SweepOnce expires idle sessions immediately.
func (s *Sweeper) SweepOnce() int {
	start := time.Now()
	removed := s.target.ExpireIdle(s.ttl)
	duration := time.Since(start)

	s.metrics.RecordSweep(duration, removed)
	s.recordSweep(start, removed)
	if removed > 0 {
		logging.Info(s.logger, "expired idle sessions",
			slog.Int(logging.FieldCount, removed),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	}
	return removed
}

func (s *Sweeper) setRunning(running bool) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Running = running
}

func (s *Sweeper) recordSweep(at time.Time, removed int) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Sweeps++
	s.status.LastSweep = at
	s.status.LastRemoved = removed
}

// Status returns a snapshot of the sweeper's recent activity.
func (s *Sweeper) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
