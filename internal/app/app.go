// Package app implements the application layer for ghwu.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/ghwu/internal/adapters/report"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/ghwu/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.WorkflowStore
	updaters     []ports.Updater
	logger       ports.Logger
	metrics      ports.Metrics
	tracer       ports.Tracer
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.WorkflowStore,
	updaters []ports.Updater,
	log ports.Logger,
	metrics ports.Metrics,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		updaters:     updaters,
		logger:       log,
		metrics:      metrics,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets where reports are written.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// ConfigureLogging switches the logger between pretty and JSON output and
// enables debug messages.
func (a *App) ConfigureLogging(json, verbose bool) {
	a.logger.SetJSON(json)
	a.logger.SetVerbose(verbose)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the configuration file. Empty selects domain.DefaultConfigFile.
	ConfigPath string
	// ConfigRequired makes a missing configuration file an error.
	ConfigRequired bool
	// Dir overrides the configured workflow directory.
	Dir string
	// OutputFormat overrides the configured output format.
	OutputFormat string
	DryRun       bool
	// ErrorOnOutdated makes Run print the outdated summary and return domain.ErrOutdatedFound.
	ErrorOnOutdated bool
	// MetricsFile receives the resolver counters when set.
	MetricsFile string
}

// Summary counts what a run did.
type Summary struct {
	Files int
	// Outdated counts distinct outdated (resource, version) pairs per file.
	Outdated int
	// Updated counts rewritten files.
	Updated int
	// Unresolved counts (file, resource) pairs whose lookup failed.
	Unresolved int
	// Failed counts files that could not be loaded or written.
	Failed int
}

// Run checks every workflow for outdated references and rewrites them
// unless opts.DryRun is set.
func (a *App) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	var summary Summary

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return summary, err
	}

	files, err := a.store.List(cfg.WorkflowDir)
	if err != nil {
		return summary, err
	}
	summary.Files = len(files)
	a.logger.Debug(fmt.Sprintf("found %d workflows in %s", len(files), cfg.WorkflowDir))

	svc := a.newResolver(ctx)
	defer svc.Close()
	h := svc.Handle()

	reporter := report.New(cfg.OutputFormat, a.stdout, a.stderr, a.logger)
	proc := &processor{
		cfg:      cfg,
		store:    a.store,
		resolver: h,
		reporter: reporter,
		logger:   a.logger,
		dryRun:   opts.DryRun,
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(cfg.Workers())
	for _, path := range files {
		g.Go(func() error {
			res, err := proc.process(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			summary.Outdated += res.outdated
			summary.Unresolved += res.unresolved
			if res.updated {
				summary.Updated++
			}
			if err != nil {
				a.logger.Error(err)
				summary.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			a.logger.Error(err)
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if summary.Failed > 0 {
		return summary, domain.ErrProcessingFailed
	}
	if summary.Outdated > 0 && opts.ErrorOnOutdated {
		reporter.Summary()
		return summary, domain.ErrOutdatedFound
	}
	return summary, nil
}

// Resolve looks up the latest version of each reference and prints one line
// per reference to w, in the order given.
func (a *App) Resolve(ctx context.Context, refs []string, w io.Writer) error {
	svc := a.newResolver(ctx)
	defer svc.Close()
	h := svc.Handle()

	lines := make([]string, len(refs))
	errs := make([]error, len(refs))

	var g errgroup.Group
	for i, ref := range refs {
		g.Go(func() error {
			resource, current, err := domain.ParseReference(ref)
			if err != nil {
				errs[i] = err
				return nil
			}

			out := h.Resolve(ctx, resource, current)
			switch {
			case out.Err != nil:
				errs[i] = zerr.With(zerr.Wrap(out.Err, "failed to resolve "+resource.String()), "reference", ref)
			case out.Outdated():
				lines[i] = fmt.Sprintf("%s -> %s", ref, out.Latest)
			default:
				lines[i] = ref + ": up to date"
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	for i := range refs {
		if errs[i] != nil {
			a.logger.Error(errs[i])
			failed = true
			continue
		}
		_, _ = fmt.Fprintln(w, lines[i])
	}

	if failed {
		return domain.ErrProcessingFailed
	}
	return nil
}

func (a *App) loadConfig(opts RunOptions) (domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path, opts.ConfigRequired)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Dir != "" {
		cfg.WorkflowDir = opts.Dir
	}
	if opts.OutputFormat != "" {
		format, err := domain.ParseOutputFormat(opts.OutputFormat)
		if err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, "invalid flag"), "output-format", opts.OutputFormat)
		}
		cfg.OutputFormat = format
	}
	return cfg, nil
}

func (a *App) newResolver(ctx context.Context) *resolver.Service {
	svc := resolver.New(a.updaters,
		resolver.WithLogger(a.logger),
		resolver.WithMetrics(a.metrics),
		resolver.WithTracer(a.tracer),
	)
	svc.Start(ctx)
	return svc
}
