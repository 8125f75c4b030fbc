package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gridkit/enermetrics/api/performance"
	"github.com/gridkit/enermetrics/config"
	coremetrics "github.com/gridkit/enermetrics/core/metrics"
	"github.com/gridkit/enermetrics/infra/logger"
	"github.com/gridkit/enermetrics/infra/metrics"
)

// Service wires the API server and the metric sinks.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	srv    *http.Server
	influx *metrics.InfluxSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	svc := &Service{cfg: cfg, log: logg}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(metrics.InfluxConfig{
			URL:    cfg.Metrics.InfluxURL,
			Token:  cfg.Metrics.InfluxToken,
			Org:    cfg.Metrics.InfluxOrg,
			Bucket: cfg.Metrics.InfluxBucket,
		}, logger.New("influx-sink"))
		if is, ok := sink.(*metrics.InfluxSink); ok {
			svc.influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	mux := http.NewServeMux()
	handler := performance.NewHandler(logger.New("api"), sink)
	mux.Handle("/api/performance_metrics", performance.WithRequestLog(logger.New("http"), handler))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	svc.srv = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}
	return svc, nil
}

// Run starts the API server and blocks until the context is cancelled or
// the server fails.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddress); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.cfg.Server.Address)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
