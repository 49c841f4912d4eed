// Package status collects session statistics shared between the game loop and
// the audio callbacks.
package status

import (
	"log/slog"
	"sync/atomic"
)

// Session statistic keys
const (
	MatchesStarted  = "matches_started"
	MatchesFinished = "matches_finished"
	Points          = "points"
	Hits            = "hits"
	Frames          = "frames"
	LastHitPitch    = "last_hit_pitch"
)

// Registry groups counters and gauges
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// LogValue renders every metric as a flat slog group
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Counters.Range(func(key string, c *atomic.Int64) {
		attrs = append(attrs, slog.Int64(key, c.Load()))
	})
	r.Gauges.Range(func(key string, g *AtomicFloat) {
		attrs = append(attrs, slog.Float64(key, g.Get()))
	})
	return slog.GroupValue(attrs...)
}
