package ports

import (
	"context"

	"go.trai.ch/ghwu/internal/core/domain"
)

// Updater fetches the available versions of the resources of one scheme.
//
//go:generate mockgen -source=updater.go -destination=mocks/mock_updater.go -package=mocks
type Updater interface {
	// Scheme returns the resource scheme this updater serves.
	Scheme() domain.Scheme

	// URL returns the upstream endpoint listing the tags of resource.
	URL(resource domain.Resource) (string, error)

	// Versions fetches and parses every tag of resource.
	// An upstream without tags yields an empty, non-nil error free result.
	Versions(ctx context.Context, resource domain.Resource) ([]domain.Version, error)
}
