package metrics

import (
	"time"

	"github.com/gridkit/enermetrics/core/energy"
)

// RequestRecord describes one handled API request.
type RequestRecord struct {
	Status   int
	Duration time.Duration
}

// Sink receives request and computation reports. Implementations must be
// safe for concurrent use.
type Sink interface {
	RecordRequest(rec RequestRecord) error
	RecordDayMetrics(source string, days []energy.DayMetrics) error
}

// NopSink discards all reports.
type NopSink struct{}

func (NopSink) RecordRequest(RequestRecord) error                  { return nil }
func (NopSink) RecordDayMetrics(string, []energy.DayMetrics) error { return nil }
