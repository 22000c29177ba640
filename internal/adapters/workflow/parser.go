// Package workflow extracts versioned references from GitHub workflow files
// and writes updated references back.
package workflow

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Parser collects the uses references of a workflow.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a Parser that reports skipped references to logger.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the jobs of a workflow and returns one entity per uses entry,
// in document order. Both jobs.<id>.uses and jobs.<id>.steps[].uses are read.
func (p *Parser) Parse(path string, contents []byte) (*domain.Workflow, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidWorkflow, err.Error()), "path", path)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, jobsNotFound(path)
	}

	jobs := mappingValue(root, "jobs")
	if jobs == nil {
		return nil, jobsNotFound(path)
	}
	if jobs.Kind != yaml.MappingNode {
		return nil, invalid(path, jobs, "jobs entry is not a mapping")
	}

	wf := &domain.Workflow{
		Path:     path,
		Contents: contents,
		Checksum: xxhash.Sum64(contents),
	}

	for i := 0; i+1 < len(jobs.Content); i += 2 {
		job := jobs.Content[i+1]
		if job.Kind != yaml.MappingNode {
			return nil, invalid(path, job, fmt.Sprintf("job %q is not a mapping", jobs.Content[i].Value))
		}

		if uses := mappingValue(job, "uses"); uses != nil {
			if err := p.collect(wf, uses); err != nil {
				return nil, err
			}
		}

		steps := mappingValue(job, "steps")
		if steps == nil {
			continue
		}
		if steps.Kind != yaml.SequenceNode {
			return nil, invalid(path, steps, "steps entry is not a sequence")
		}
		for _, step := range steps.Content {
			if step.Kind != yaml.MappingNode {
				continue
			}
			if uses := mappingValue(step, "uses"); uses != nil {
				if err := p.collect(wf, uses); err != nil {
					return nil, err
				}
			}
		}
	}

	return wf, nil
}

func (p *Parser) collect(wf *domain.Workflow, uses *yaml.Node) error {
	if uses.Kind != yaml.ScalarNode || uses.ShortTag() != "!!str" {
		return invalid(wf.Path, uses, "uses entry is not a string")
	}

	pos := domain.Position{Line: uses.Line, Column: uses.Column}
	entity, err := domain.NewEntity(uses.Value, pos)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("%s:%d: skipping %q: %v", wf.Path, pos.Line, uses.Value, err))
		return nil
	}

	p.logger.Debug(fmt.Sprintf("%s:%d: found %s at %s", wf.Path, pos.Line, entity.Resource, entity.Version))
	wf.Entities = append(wf.Entities, entity)
	return nil
}

// mappingValue returns the value node of key in a mapping node, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func invalid(path string, node *yaml.Node, msg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidWorkflow, msg), "path", path)
	return zerr.With(err, "line", node.Line)
}

func jobsNotFound(path string) error {
	return zerr.With(zerr.Wrap(domain.ErrJobsNotFound, "parse workflow"), "path", path)
}
