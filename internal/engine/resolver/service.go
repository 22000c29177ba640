// Package resolver implements the version-resolution cache: a single actor
// goroutine that owns the cache, coalesces concurrent lookups of the same
// resource into one upstream fetch and fans the result out to every waiter.
package resolver

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service is the actor owning the cache and the pending table. Create one
// per run with New, then Start it; obtain clients with Handle.
type Service struct {
	updaters map[domain.Scheme]ports.Updater
	logger   ports.Logger
	metrics  ports.Metrics
	tracer   ports.Tracer

	inbox       chan request
	completions chan completed
	stop        chan struct{}
	done        chan struct{}
	startOnce   sync.Once
	stopOnce    sync.Once

	// Owned by the loop goroutine.
	cache   map[domain.Resource][]domain.Version
	pending map[domain.Resource][]chan<- result
}

// New creates a Service dispatching fetches to updaters by scheme.
// When two updaters claim the same scheme the last one wins.
func New(updaters []ports.Updater, opts ...Option) *Service {
	s := &Service{
		updaters:    make(map[domain.Scheme]ports.Updater, len(updaters)),
		logger:      nopLogger{},
		metrics:     nopMetrics{},
		tracer:      nopTracer{},
		inbox:       make(chan request),
		completions: make(chan completed),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		cache:       make(map[domain.Resource][]domain.Version),
		pending:     make(map[domain.Resource][]chan<- result),
	}
	for _, u := range updaters {
		s.updaters[u.Scheme()] = u
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the service loop. It runs until ctx is cancelled or Close
// is called. Fetches started by the loop use ctx, never a caller's context.
// Calling Start more than once has no effect.
func (s *Service) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.loop(ctx)
	})
}

// Close stops the loop and waits for it to exit. Requests made afterwards,
// or still waiting, fail with domain.ErrChannelClosed.
func (s *Service) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.startOnce.Do(func() { close(s.done) })
	<-s.done
}

// Handle returns a client of the service.
func (s *Service) Handle() Handle {
	return Handle{svc: s}
}

func (s *Service) loop(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		close(s.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case req := <-s.inbox:
			s.handleRequest(ctx, req)
		case c := <-s.completions:
			s.handleCompleted(c)
		}
	}
}

func (s *Service) handleRequest(ctx context.Context, req request) {
	resource := req.resource
	scheme := resource.Scheme()

	if versions, ok := s.cache[resource]; ok {
		s.metrics.CacheHit(scheme)
		req.reply <- result{versions: slices.Clone(versions)}
		return
	}

	if waiters, ok := s.pending[resource]; ok {
		s.metrics.Coalesced(scheme)
		s.pending[resource] = append(waiters, req.reply)
		return
	}

	updater, ok := s.updaters[scheme]
	if !ok {
		s.metrics.UnknownScheme()
		err := zerr.With(zerr.Wrap(domain.ErrUnknownResourceScheme, "no updater for resource"), "resource", resource.String())
		req.reply <- result{err: err}
		return
	}

	s.metrics.CacheMiss(scheme)
	s.pending[resource] = []chan<- result{req.reply}
	go s.fetch(ctx, updater, resource)
}

func (s *Service) handleCompleted(c completed) {
	waiters, ok := s.pending[c.resource]
	delete(s.pending, c.resource)

	if c.err != nil {
		s.metrics.FetchFailed(c.resource.Scheme())
	} else {
		if c.versions == nil {
			c.versions = []domain.Version{}
		}
		s.cache[c.resource] = c.versions
	}

	if !ok {
		s.logger.Warn(fmt.Sprintf("fetch of %s completed without pending requests", c.resource))
		return
	}
	for _, reply := range waiters {
		reply <- result{versions: slices.Clone(c.versions), err: c.err}
	}
}

// fetch runs one upstream call and reports it to the loop. A panicking
// updater is reported as a failed fetch.
func (s *Service) fetch(ctx context.Context, updater ports.Updater, resource domain.Resource) {
	c := completed{resource: resource}
	defer func() {
		select {
		case s.completions <- c:
		case <-s.done:
		}
	}()

	ctx, span := s.tracer.Start(ctx, "fetch "+resource.String())
	span.SetAttribute("scheme", string(resource.Scheme()))
	defer span.End()

	defer zerr.Defer(func(err error) {
		c.versions = nil
		c.err = zerr.With(zerr.Wrap(err, "updater panicked"), "resource", resource.String())
		span.RecordError(c.err)
	})

	if url, err := updater.URL(resource); err == nil {
		s.logger.Debug("fetching " + url)
	}

	c.versions, c.err = updater.Versions(ctx, resource)
	if c.err != nil {
		span.RecordError(c.err)
		return
	}
	span.SetAttribute("versions", len(c.versions))
}
