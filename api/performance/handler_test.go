package performance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gridkit/enermetrics/core/energy"
	"github.com/gridkit/enermetrics/infra/logger"
)

func metricsURL(consumption []string, dayTariff, nightTariff, source string) string {
	q := url.Values{}
	for _, c := range consumption {
		q.Add("hourly_consumption", c)
	}
	q.Set("day_tariff", dayTariff)
	q.Set("night_tariff", nightTariff)
	q.Set("source", source)
	return "/api/performance_metrics?" + q.Encode()
}

func flat(n int, v string) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestHandler_FullDay(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", metricsURL(flat(24, "1.0"), "0.10", "0.05", "coal"), nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %s", ct)
	}
	var out []energy.DayMetrics
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Day != 1 {
		t.Fatalf("unexpected output %#v", out)
	}
	m := out[0].Metrics
	if m.TotalDayConsumption != 16.0 || m.TotalNightConsumption != 8.0 {
		t.Fatalf("split %v/%v", m.TotalDayConsumption, m.TotalNightConsumption)
	}
	if m.TotalCO2Emissions != 21.6 || m.AverageCostPerKWh != 0.08 {
		t.Fatalf("metrics %+v", m)
	}
}

func TestHandler_MultiDay(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", metricsURL(flat(30, "1.0"), "0.1", "0.05", "grid_mix"), nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	var out []energy.DayMetrics
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0].Day != 1 || out[1].Day != 2 {
		t.Fatalf("unexpected days %#v", out)
	}
	if out[1].Metrics.TotalConsumption != 6.0 {
		t.Fatalf("day 2 total %v", out[1].Metrics.TotalConsumption)
	}
}

func TestHandler_PostForm(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	form := url.Values{}
	form.Add("hourly_consumption", "1.0")
	form.Add("hourly_consumption", "2.0")
	form.Set("day_tariff", "0.2")
	form.Set("night_tariff", "0.1")
	form.Set("source", "nuclear")
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/performance_metrics", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	var out []energy.DayMetrics
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Metrics.TotalConsumption != 3.0 {
		t.Fatalf("unexpected output %#v", out)
	}
}

func TestHandler_MissingConsumption(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/performance_metrics?day_tariff=0.1&night_tariff=0.05&source=coal", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "at least one value") {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestHandler_UnknownSource(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", metricsURL([]string{"1.0"}, "0.1", "0.05", "wind"), nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	for _, key := range []string{"coal", "natural_gas", "oil", "nuclear", "renewables", "grid_mix"} {
		if !strings.Contains(rr.Body.String(), key) {
			t.Fatalf("body missing %q: %s", key, rr.Body.String())
		}
	}
}

func TestHandler_MalformedNumber(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", metricsURL([]string{"abc"}, "0.1", "0.05", "coal"), nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestHandler_MissingTariff(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/performance_metrics?hourly_consumption=1.0&night_tariff=0.05&source=coal", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "day_tariff") {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(logger.NopLogger{}, nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/performance_metrics", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}
