// Package metrics records purge events as Prometheus metrics and pushes them
// to a Pushgateway, since a purge is a batch job with no scrape endpoint.
package metrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/imamik/ospurge/internal/purge"
)

// JobName is the Pushgateway job the metrics are grouped under.
const JobName = "ospurge"

// Run results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder implements purge.Observer and keeps its metrics in its own
// registry.
type Recorder struct {
	registry *prometheus.Registry
	now      func() time.Time

	mu      sync.Mutex
	started time.Time

	resourcesDeleted   *prometheus.CounterVec
	conflictsTolerated *prometheus.CounterVec
	runsTotal          *prometheus.CounterVec
	purgeDuration      prometheus.Histogram
	lastSuccess        prometheus.Gauge
}

var _ purge.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		now:      time.Now,

		resourcesDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ospurge",
				Name:      "resources_deleted_total",
				Help:      "Total number of deleted resources by kind",
			},
			[]string{"kind"},
		),
		conflictsTolerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ospurge",
				Name:      "conflicts_tolerated_total",
				Help:      "Total number of ignored conflicts by kind",
			},
			[]string{"kind"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ospurge",
				Subsystem: "purge",
				Name:      "runs_total",
				Help:      "Total number of purge runs by result",
			},
			[]string{"result"},
		),
		purgeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "ospurge",
				Subsystem: "purge",
				Name:      "duration_seconds",
				Help:      "Duration of a purge run in seconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~34min
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ospurge",
				Subsystem: "purge",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful purge",
			},
		),
	}

	r.registry.MustRegister(
		r.resourcesDeleted,
		r.conflictsTolerated,
		r.runsTotal,
		r.purgeDuration,
		r.lastSuccess,
	)
	return r
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Event implements purge.Observer.
func (r *Recorder) Event(e purge.Event) {
	switch e.Type {
	case purge.EventPurgeStarted:
		r.mu.Lock()
		r.started = r.eventTime(e)
		r.mu.Unlock()
	case purge.EventResourceDeleted:
		r.resourcesDeleted.WithLabelValues(string(e.Kind)).Inc()
	case purge.EventConflictTolerated:
		r.conflictsTolerated.WithLabelValues(string(e.Kind)).Inc()
	case purge.EventPurgeCompleted:
		r.runsTotal.WithLabelValues(ResultSuccess).Inc()
		r.observeDuration(e)
		r.lastSuccess.Set(float64(r.eventTime(e).Unix()))
	case purge.EventPurgeFailed:
		r.runsTotal.WithLabelValues(ResultFailure).Inc()
		r.observeDuration(e)
	}
}

func (r *Recorder) observeDuration(e purge.Event) {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if started.IsZero() {
		return
	}
	r.purgeDuration.Observe(r.eventTime(e).Sub(started).Seconds())
}

func (r *Recorder) eventTime(e purge.Event) time.Time {
	if e.Timestamp.IsZero() {
		return r.now()
	}
	return e.Timestamp
}

// Push sends the metrics to the Pushgateway at url, grouped by project.
func (r *Recorder) Push(ctx context.Context, url, project string) error {
	err := push.New(url, JobName).
		Gatherer(r.registry).
		Grouping("project", project).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
