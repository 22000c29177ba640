package ports

import "go.trai.ch/ghwu/internal/core/domain"

// WorkflowStore reads and writes workflow files.
//
//go:generate mockgen -source=workflow_store.go -destination=mocks/mock_workflow_store.go -package=mocks
type WorkflowStore interface {
	// List returns the workflow files in dir, sorted by name.
	List(dir string) ([]string, error)

	// Load reads and parses the workflow at path.
	Load(path string) (*domain.Workflow, error)

	// Save rewrites every entity of wf that has an updated line.
	// It reports whether the file changed.
	Save(wf *domain.Workflow) (bool, error)
}
