package chunkz

import (
	"context"
	"sync/atomic"
	"time"
)

// StreamStats contains statistics about items flowing through a monitored stream.
type StreamStats struct {
	// LastUpdate is the timestamp of this statistics snapshot
	LastUpdate time.Time
	// Count is the number of items seen since the monitor started
	Count int64
	// Rate is the average items per second since the previous report
	Rate float64
}

// Monitor observes items passing through a stream and periodically reports
// statistics. It never modifies or reorders the stream.
type Monitor[T any] struct {
	onStats    func(StreamStats)
	clock      Clock
	lastTime   time.Time
	name       string
	interval   time.Duration
	count      atomic.Int64
	lastReport int64
}

// NewMonitor creates a pass-through processor that reports throughput.
//
// Example:
//
//	// Report how fast windows are produced
//	monitor, err := chunkz.NewMonitor[[]byte](time.Second, func(s chunkz.StreamStats) {
//		log.Printf("windows: %d (%.1f/s)", s.Count, s.Rate)
//	})
//	if err != nil {
//		return err
//	}
//
//	windows := monitor.Process(ctx, chunker.Process(ctx, bytes))
//
// Parameters:
//   - interval: How often to report statistics (must be > 0)
//   - onStats: Callback invoked at each interval and once when the stream ends
//
// Returns ErrInvalidConfiguration (wrapped in *ConfigError) for a
// non-positive interval.
func NewMonitor[T any](interval time.Duration, onStats func(StreamStats)) (*Monitor[T], error) {
	if err := validateInterval("monitor", interval); err != nil {
		return nil, err
	}

	return &Monitor[T]{
		name:     "monitor",
		interval: interval,
		onStats:  onStats,
		clock:    RealClock,
	}, nil
}

// WithClock sets the clock used for ticks and timestamps.
func (m *Monitor[T]) WithClock(clock Clock) *Monitor[T] {
	m.clock = clock
	return m
}

// WithName sets a custom name for the processor.
func (m *Monitor[T]) WithName(name string) *Monitor[T] {
	m.name = name
	return m
}

// Count returns the number of items seen so far.
func (m *Monitor[T]) Count() int64 {
	return m.count.Load()
}

func (m *Monitor[T]) Process(ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		ticker := m.clock.NewTicker(m.interval)
		defer ticker.Stop()

		m.lastTime = m.clock.Now()

		for {
			select {
			case <-ctx.Done():
				m.reportStats()
				return

			case item, ok := <-in:
				if !ok {
					m.reportStats()
					return
				}

				m.count.Add(1)

				select {
				case out <- item:
				case <-ctx.Done():
					m.reportStats()
					return
				}

			case <-ticker.C():
				m.reportStats()
			}
		}
	}()

	return out
}

// reportStats runs on the Process goroutine only.
func (m *Monitor[T]) reportStats() {
	count := m.count.Load()
	now := m.clock.Now()

	var rate float64
	if d := now.Sub(m.lastTime).Seconds(); d > 0 {
		rate = float64(count-m.lastReport) / d
	}

	m.lastTime = now
	m.lastReport = count

	if m.onStats != nil {
		m.onStats(StreamStats{
			Count:      count,
			Rate:       rate,
			LastUpdate: now,
		})
	}
}

func (m *Monitor[T]) Name() string {
	return m.name
}
