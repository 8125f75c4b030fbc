package performance

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gridkit/enermetrics/core/energy"
	"github.com/gridkit/enermetrics/core/logger"
	"github.com/gridkit/enermetrics/core/metrics"
)

// NewHandler returns an HTTP handler computing performance metrics via
// GET or POST /api/performance_metrics. Parameters are read from the
// query string and, for POST, the form body: repeated hourly_consumption
// values plus day_tariff, night_tariff and source.
func NewHandler(log logger.Logger, sink metrics.Sink) http.Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		start := time.Now()
		status := http.StatusOK
		defer func() {
			if err := sink.RecordRequest(metrics.RequestRecord{Status: status, Duration: time.Since(start)}); err != nil {
				log.Errorf("record request: %v", err)
			}
		}()

		if err := r.ParseForm(); err != nil {
			status = http.StatusBadRequest
			http.Error(w, fmt.Sprintf("malformed request parameters: %v", err), status)
			return
		}
		params, err := bindParams(r.Form)
		if err != nil {
			status = http.StatusBadRequest
			http.Error(w, err.Error(), status)
			return
		}

		days, err := energy.ChunkDays(params.consumption, params.dayTariff, params.nightTariff, params.source)
		if err != nil {
			if errors.Is(err, energy.ErrInvalidInput) {
				status = http.StatusBadRequest
			} else {
				status = http.StatusInternalServerError
			}
			http.Error(w, err.Error(), status)
			return
		}
		if err := sink.RecordDayMetrics(params.source, days); err != nil {
			log.Errorf("record day metrics: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(days); err != nil {
			log.Errorf("encode response: %v", err)
		}
	})
}

type requestParams struct {
	consumption []float64
	dayTariff   float64
	nightTariff float64
	source      string
}

func bindParams(form map[string][]string) (requestParams, error) {
	var p requestParams
	raw := form["hourly_consumption"]
	if len(raw) == 0 {
		return p, fmt.Errorf("%w: hourly consumption must contain at least one value", energy.ErrInvalidInput)
	}
	p.consumption = make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("%w: hourly_consumption value %q is not a number", energy.ErrInvalidInput, s)
		}
		p.consumption = append(p.consumption, v)
	}
	var err error
	if p.dayTariff, err = parseTariff(form, "day_tariff"); err != nil {
		return p, err
	}
	if p.nightTariff, err = parseTariff(form, "night_tariff"); err != nil {
		return p, err
	}
	if vals := form["source"]; len(vals) > 0 {
		p.source = vals[0]
	}
	if p.source == "" {
		return p, fmt.Errorf("%w: source is required", energy.ErrInvalidInput)
	}
	return p, nil
}

func parseTariff(form map[string][]string, name string) (float64, error) {
	vals := form[name]
	if len(vals) == 0 {
		return 0, fmt.Errorf("%w: %s is required", energy.ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not a number", energy.ErrInvalidInput, name, vals[0])
	}
	return v, nil
}
