// This file contains concrete observer implementations for instrumenting
// stream pulls (Observer pattern).
package stream

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// PullUpdate describes one produced item of an observed stream.
type PullUpdate struct {
	// Kind is the stream kind label, e.g. "range" or "permutations".
	Kind string
	// Produced is the running count of items produced so far.
	Produced uint64
}

// PullObserver receives a notification for every item an observed stream
// produces.
type PullObserver interface {
	Update(update PullUpdate)
}

// ─────────────────────────────────────────────────────────────────────────────
// Channel Observer
// ─────────────────────────────────────────────────────────────────────────────

// ChannelObserver adapts the Observer pattern to channel-based communication,
// for UI code that renders progress from a channel.
type ChannelObserver struct {
	channel chan<- PullUpdate
}

// NewChannelObserver creates an observer that sends updates to a channel.
// The channel should have sufficient buffer capacity to avoid blocking.
// If ch is nil, updates are discarded.
func NewChannelObserver(ch chan<- PullUpdate) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Update implements PullObserver by sending to the channel.
// Uses non-blocking send to avoid deadlocks when the channel is full.
func (o *ChannelObserver) Update(update PullUpdate) {
	if o.channel == nil {
		return
	}
	select {
	case o.channel <- update:
	default:
		// Channel full, drop update (UI will catch up on the next one)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs production progress using zerolog. It throttles
// logging to every interval-th item to avoid log spam on large drains.
type LoggingObserver struct {
	logger   zerolog.Logger
	interval uint64
	mu       sync.Mutex
	last     map[string]uint64
}

// NewLoggingObserver creates an observer that logs every interval-th produced
// item per stream kind (and always the first).
func NewLoggingObserver(logger zerolog.Logger, interval uint64) *LoggingObserver {
	if interval == 0 {
		interval = 1000
	}
	return &LoggingObserver{
		logger:   logger,
		interval: interval,
		last:     make(map[string]uint64),
	}
}

// Update implements PullObserver by logging significant production milestones.
func (o *LoggingObserver) Update(update PullUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()

	last := o.last[update.Kind]
	if update.Produced == 1 || update.Produced-last >= o.interval {
		o.logger.Debug().
			Str("kind", update.Kind).
			Uint64("produced", update.Produced).
			Msg("stream production progress")
		o.last[update.Kind] = update.Produced
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

var (
	// itemsProduced counts items produced per stream kind.
	// Registered once globally to avoid duplicate registration errors.
	itemsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lazyseq_stream_items_produced_total",
			Help: "Total number of items produced by observed streams, by kind",
		},
		[]string{"kind"},
	)
)

// MetricsObserver exports production counts to Prometheus.
type MetricsObserver struct {
	counter *prometheus.CounterVec
}

// NewMetricsObserver creates an observer that updates Prometheus metrics.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{counter: itemsProduced}
}

// Update implements PullObserver by incrementing the per-kind counter.
func (o *MetricsObserver) Update(update PullUpdate) {
	o.counter.WithLabelValues(update.Kind).Inc()
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer (Null Object Pattern)
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver is a null object that discards all updates. Useful for testing
// or when instrumentation is not needed.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// Update implements PullObserver by doing nothing.
func (o *NoOpObserver) Update(update PullUpdate) {
	// Intentionally empty - Null Object pattern
}
