package ports

import "go.trai.ch/ghwu/internal/core/domain"

// Metrics records resolver cache activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	CacheHit(scheme domain.Scheme)
	CacheMiss(scheme domain.Scheme)
	Coalesced(scheme domain.Scheme)
	FetchFailed(scheme domain.Scheme)
	UnknownScheme()

	// WriteTextfile writes every metric to path in the Prometheus text format.
	WriteTextfile(path string) error
}
