package ports

import (
	"context"

	"go.trai.ch/ghwu/internal/core/domain"
)

// VersionResolver looks up resource versions through a shared, single-flight cache.
//
//go:generate mockgen -source=version_resolver.go -destination=mocks/mock_version_resolver.go -package=mocks
type VersionResolver interface {
	// GetVersions returns every known version of resource.
	GetVersions(ctx context.Context, resource domain.Resource) ([]domain.Version, error)

	// Resolve determines the latest version of resource pinned at current.
	// Lookup failures are carried in the outcome rather than returned.
	Resolve(ctx context.Context, resource domain.Resource, current domain.Version) domain.Outcome
}
