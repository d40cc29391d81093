package metric

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "iotlab"

// Registry holds the client-side request metrics.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

var (
	globalRegistry *Registry
	globalOnce     sync.Once
)

// NewRegistry creates a registry with all iotlab metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests sent to the testbed API, by verb and status code.",
			},
			[]string{"verb", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Round-trip time of testbed API requests.",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"verb"},
		),
	}

	reg.MustRegister(r.RequestsTotal, r.RequestDuration)
	return r
}

// Global returns the process-wide registry.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// RecordRequest counts one completed request. A code of 0 means the
// request failed before a response arrived.
func (r *Registry) RecordRequest(verb string, code int) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	r.RequestsTotal.WithLabelValues(verb, label).Inc()
}

// ObserveRequestDuration records a request latency in seconds.
func (r *Registry) ObserveRequestDuration(verb string, seconds float64) {
	r.RequestDuration.WithLabelValues(verb).Observe(seconds)
}

// Gatherer exposes the underlying registry for export.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics in the node_exporter textfile
// format. The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
