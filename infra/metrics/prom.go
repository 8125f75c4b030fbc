package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gridkit/enermetrics/core/energy"
	coremetrics "github.com/gridkit/enermetrics/core/metrics"
)

// PromSink records API activity in Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
	days     *prometheus.CounterVec
}

// NewPromSink registers the API metrics on the provided registerer. If
// reg is nil, the default registerer is used. Already-registered
// collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "performance_requests_total",
		Help: "Total number of performance-metrics requests",
	}, []string{"status"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "performance_request_duration_seconds",
		Help:    "Time spent handling a performance-metrics request",
		Buckets: prometheus.DefBuckets,
	})
	days := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "energy_days_computed_total",
		Help: "Number of day chunks computed, by energy source",
	}, []string{"source"})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(days); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			days = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{requests: requests, latency: latency, days: days}, nil
}

// RecordRequest increments the request counter and observes the latency.
func (s *PromSink) RecordRequest(rec coremetrics.RequestRecord) error {
	s.requests.WithLabelValues(strconv.Itoa(rec.Status)).Inc()
	s.latency.Observe(rec.Duration.Seconds())
	return nil
}

// RecordDayMetrics counts the computed day chunks for the source.
func (s *PromSink) RecordDayMetrics(source string, days []energy.DayMetrics) error {
	s.days.WithLabelValues(source).Add(float64(len(days)))
	return nil
}
