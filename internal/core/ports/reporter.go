package ports

import "go.trai.ch/ghwu/internal/core/domain"

// Reporter presents the results of a run.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Outdated reports an entity of file whose pinned version is behind its latest.
	Outdated(file string, entity domain.Entity, dryRun bool)

	// Failed reports that resource, used by file, could not be resolved.
	Failed(file string, resource domain.Resource, err error)

	// Summary reports that outdated entities were found.
	Summary()
}
