package app

import (
	"context"
	"fmt"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// processor checks and updates a single workflow file.
type processor struct {
	cfg      domain.Config
	store    ports.WorkflowStore
	resolver ports.VersionResolver
	reporter ports.Reporter
	logger   ports.Logger
	dryRun   bool
}

type fileResult struct {
	outdated   int
	unresolved int
	updated    bool
}

// usage is a distinct (resource, version) pair of a file.
type usage struct {
	resource domain.Resource
	version  string
}

func (p *processor) process(ctx context.Context, path string) (fileResult, error) {
	var res fileResult

	wf, err := p.store.Load(path)
	if err != nil {
		return res, err
	}

	usages, entities := p.collect(wf)
	outcomes := p.resolve(ctx, usages, entities)

	reported := make(map[usage]bool, len(outcomes))
	for i, e := range wf.Entities {
		key := usage{resource: e.Resource, version: e.Version.String()}
		out, ok := outcomes[key]
		if !ok {
			continue
		}

		if out.Err != nil {
			if !reported[key] {
				reported[key] = true
				res.unresolved++
				p.reporter.Failed(path, e.Resource, out.Err)
			}
			continue
		}
		if !out.Outdated() {
			continue
		}

		wf.Entities[i] = e.WithLatest(out.Latest)
		if !reported[key] {
			reported[key] = true
			res.outdated++
			p.reporter.Outdated(path, wf.Entities[i], p.dryRun)
		}
	}

	if p.dryRun || res.outdated == 0 {
		return res, nil
	}

	changed, err := p.store.Save(wf)
	if err != nil {
		return res, err
	}
	if changed {
		res.updated = true
		p.logger.Info("updated " + path)
	}
	return res, nil
}

// collect returns the distinct usages of wf in first-occurrence order, with
// an example entity for each. Ignored resources and commit pins are skipped.
func (p *processor) collect(wf *domain.Workflow) ([]usage, map[usage]domain.Entity) {
	var usages []usage
	entities := make(map[usage]domain.Entity)

	for _, e := range wf.Entities {
		key := usage{resource: e.Resource, version: e.Version.String()}
		if _, seen := entities[key]; seen {
			continue
		}
		if p.cfg.Ignores(e.Resource) {
			p.logger.Debug(fmt.Sprintf("%s: ignoring %s", wf.Path, e.Resource))
			continue
		}
		if e.Version.IsCommitSHA() {
			p.logger.Debug(fmt.Sprintf("%s: %s is pinned to commit %s", wf.Path, e.Resource, e.Version))
			continue
		}
		entities[key] = e
		usages = append(usages, key)
	}
	return usages, entities
}

func (p *processor) resolve(ctx context.Context, usages []usage, entities map[usage]domain.Entity) map[usage]domain.Outcome {
	results := make([]domain.Outcome, len(usages))

	var g errgroup.Group
	for i, u := range usages {
		g.Go(func() error {
			results[i] = p.resolver.Resolve(ctx, u.resource, entities[u].Version)
			return nil
		})
	}
	_ = g.Wait()

	outcomes := make(map[usage]domain.Outcome, len(usages))
	for i, u := range usages {
		outcomes[u] = results[i]
	}
	return outcomes
}
