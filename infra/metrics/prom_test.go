package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gridkit/enermetrics/core/energy"
	coremetrics "github.com/gridkit/enermetrics/core/metrics"
)

func TestPromSink_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	if err := sink.RecordRequest(coremetrics.RequestRecord{Status: 200, Duration: 3 * time.Millisecond}); err != nil {
		t.Fatalf("record request: %v", err)
	}
	if err := sink.RecordRequest(coremetrics.RequestRecord{Status: 400, Duration: time.Millisecond}); err != nil {
		t.Fatalf("record request: %v", err)
	}

	expected := `
# HELP performance_requests_total Total number of performance-metrics requests
# TYPE performance_requests_total counter
performance_requests_total{status="200"} 1
performance_requests_total{status="400"} 1
`
	if err := testutil.CollectAndCompare(sink.requests, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(sink.latency); c == 0 {
		t.Errorf("latency not recorded")
	}
}

func TestPromSink_RecordDayMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	days := []energy.DayMetrics{{Day: 1}, {Day: 2}}
	if err := sink.RecordDayMetrics("coal", days); err != nil {
		t.Fatalf("record days: %v", err)
	}
	expected := `
# HELP energy_days_computed_total Number of day chunks computed, by energy source
# TYPE energy_days_computed_total counter
energy_days_computed_total{source="coal"} 2
`
	if err := testutil.CollectAndCompare(sink.days, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("second: %v", err)
	}
}
