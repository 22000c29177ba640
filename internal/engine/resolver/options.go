package resolver

import (
	"context"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets where cache activity is recorded.
func WithMetrics(metrics ports.Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(tracer ports.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}
func (nopLogger) SetJSON(bool) {}
func (nopLogger) SetVerbose(bool) {}

type nopMetrics struct{}

func (nopMetrics) CacheHit(domain.Scheme) {}
func (nopMetrics) CacheMiss(domain.Scheme) {}
func (nopMetrics) Coalesced(domain.Scheme) {}
func (nopMetrics) FetchFailed(domain.Scheme) {}
func (nopMetrics) UnknownScheme() {}
func (nopMetrics) WriteTextfile(string) error {
	return nil
}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End() {}
func (nopSpan) RecordError(error) {}
func (nopSpan) SetAttribute(string, any) {}
