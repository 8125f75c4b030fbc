package metrics

import (
	"errors"

	"github.com/gridkit/enermetrics/core/energy"
)

// MultiSink fans reports out to several sinks. Errors are joined so a
// failing sink does not silence the others.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a MultiSink from the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordRequest(rec RequestRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordRequest(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordDayMetrics(source string, days []energy.DayMetrics) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordDayMetrics(source, days); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
