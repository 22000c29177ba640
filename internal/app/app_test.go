package app_test

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ghwu/internal/adapters/metrics"
	"go.trai.ch/ghwu/internal/adapters/telemetry"
	"go.trai.ch/ghwu/internal/adapters/workflow"
	"go.trai.ch/ghwu/internal/app"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/ghwu/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const ciWorkflow = `name: CI
on: push
jobs:
  lint:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v2
      - uses: docker://lpenz/omnilint:0.4
      - uses: actions/cache@v1
      - uses: actions/setup-go@0123456789abcdef0123456789abcdef01234567
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v2
`

var omnilintTags = []string{"latest", "0.2", "0.3", "0.4", "0.6", "0.7", "0.8.0", "0.9.0"}

func versions(tags ...string) []domain.Version {
	out := make([]domain.Version, 0, len(tags))
	for _, tag := range tags {
		out = append(out, domain.MustParseVersion(tag))
	}
	return out
}

type fixture struct {
	ctrl    *gomock.Controller
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	github  *mocks.MockUpdater
	hub     *mocks.MockUpdater
	metrics *metrics.Recorder
	dir     string
	stdout  bytes.Buffer
	stderr  bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:    ctrl,
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		github:  mocks.NewMockUpdater(ctrl),
		hub:     mocks.NewMockUpdater(ctrl),
		metrics: metrics.NewRecorder(),
		dir:     t.TempDir(),
	}

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.github.EXPECT().Scheme().Return(domain.SchemeGitHub).AnyTimes()
	f.github.EXPECT().URL(gomock.Any()).Return("https://api.github.test", nil).AnyTimes()
	f.hub.EXPECT().Scheme().Return(domain.SchemeDockerHub).AnyTimes()
	f.hub.EXPECT().URL(gomock.Any()).Return("https://hub.docker.test", nil).AnyTimes()
	return f
}

func (f *fixture) app() *app.App {
	store := workflow.NewStore(workflow.NewParser(f.logger))
	updaters := []ports.Updater{f.github, f.hub}
	return app.New(f.loader, store, updaters, f.logger, f.metrics, telemetry.NewNoOpTracer()).
		WithOutput(&f.stdout, &f.stderr)
}

func (f *fixture) config(t *testing.T, format domain.OutputFormat) {
	t.Helper()
	f.loader.EXPECT().Load(domain.DefaultConfigFile, false).Return(domain.Config{
		WorkflowDir:  f.dir,
		OutputFormat: format,
		Concurrency:  2,
		Ignore:       []string{"actions/cache"},
	}, nil)
}

func (f *fixture) write(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func (f *fixture) expectUpstreams() {
	f.github.EXPECT().Versions(gomock.Any(), domain.NewAction("actions/checkout")).
		Return(versions("v2", "v3", "v4"), nil).Times(1)
	f.hub.EXPECT().Versions(gomock.Any(), domain.Resource{Kind: domain.KindImage, Path: "lpenz/omnilint"}).
		Return(versions(omnilintTags...), nil).Times(1)
}

func TestApp_Run_UpdatesWorkflows(t *testing.T) {
	f := newFixture(t)
	f.config(t, domain.OutputStandard)
	f.expectUpstreams()
	path := f.write(t, "ci.yml", ciWorkflow)

	summary, err := f.app().Run(t.Context(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, app.Summary{Files: 1, Outdated: 2, Updated: 1}, summary)

	assert.Equal(t,
		path+": update github://actions/checkout from v2 to v4\n"+
			path+": update docker://lpenz/omnilint from 0.4 to 0.9.0\n",
		f.stdout.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "      - uses: actions/checkout@v4\n      - uses: docker://lpenz/omnilint:0.9.0\n")
	assert.Contains(t, string(got), "      - uses: actions/cache@v1\n")
	assert.NotContains(t, string(got), "actions/checkout@v2")
}

func TestApp_Run_DryRunErrorOnOutdated(t *testing.T) {
	f := newFixture(t)
	f.config(t, domain.OutputStandard)
	f.expectUpstreams()
	path := f.write(t, "ci.yml", ciWorkflow)

	summary, err := f.app().Run(t.Context(), app.RunOptions{DryRun: true, ErrorOnOutdated: true})
	assert.True(t, errors.Is(err, domain.ErrOutdatedFound))
	assert.Equal(t, 2, summary.Outdated)
	assert.Zero(t, summary.Updated)

	assert.Contains(t, f.stdout.String(), path+": update github://actions/checkout from v2 to v4 (dryrun)\n")
	assert.Equal(t, "Found oudated entities\n", f.stderr.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ciWorkflow, string(got))
}

func TestApp_Run_GitHubWarningWithFailure(t *testing.T) {
	f := newFixture(t)
	f.config(t, domain.OutputStandard)
	f.github.EXPECT().Versions(gomock.Any(), gomock.Any()).
		Return(nil, &domain.HTTPError{URL: "https://api.github.test/repos/actions/checkout", Status: http.StatusNotFound})
	f.hub.EXPECT().Versions(gomock.Any(), gomock.Any()).Return(versions(omnilintTags...), nil)
	path := f.write(t, "ci.yml", ciWorkflow)

	summary, err := f.app().Run(t.Context(), app.RunOptions{OutputFormat: "github-warning", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unresolved)
	assert.Equal(t, 1, summary.Outdated)

	assert.Equal(t,
		"::error file="+path+"::github://actions/checkout: 404 Not Found while getting https://api.github.test/repos/actions/checkout\n"+
			"::warning file="+path+"::update docker://lpenz/omnilint from 0.4 to 0.9.0\n",
		f.stdout.String())
}

func TestApp_Run_FileFailuresDoNotStopOthers(t *testing.T) {
	f := newFixture(t)
	f.config(t, domain.OutputStandard)
	f.expectUpstreams()
	f.write(t, "broken.yml", "name: no jobs here\n")
	good := f.write(t, "ci.yml", ciWorkflow)

	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrJobsNotFound))
	}).Times(1)

	summary, err := f.app().Run(t.Context(), app.RunOptions{})
	assert.True(t, errors.Is(err, domain.ErrProcessingFailed))
	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Updated)

	got, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Contains(t, string(got), "actions/checkout@v4")
}

func TestApp_Run_WritesMetrics(t *testing.T) {
	f := newFixture(t)
	f.config(t, domain.OutputStandard)
	f.expectUpstreams()
	f.write(t, "ci.yml", ciWorkflow)
	metricsFile := filepath.Join(t.TempDir(), "ghwu.prom")

	_, err := f.app().Run(t.Context(), app.RunOptions{DryRun: true, MetricsFile: metricsFile})
	require.NoError(t, err)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ghwu_resolver_cache_total{scheme="github",status="miss"} 1`)
	assert.Contains(t, string(data), `ghwu_resolver_cache_total{scheme="dockerhub",status="miss"} 1`)
}

func TestApp_Run_ConfigError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("bad config")
	f.loader.EXPECT().Load("custom.yaml", true).Return(domain.Config{}, loadErr)

	_, err := f.app().Run(t.Context(), app.RunOptions{ConfigPath: "custom.yaml", ConfigRequired: true})
	assert.True(t, errors.Is(err, loadErr))
}

func TestApp_Run_InvalidOutputFormat(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultConfig(), nil)

	_, err := f.app().Run(t.Context(), app.RunOptions{OutputFormat: "xml"})
	assert.True(t, errors.Is(err, domain.ErrInvalidOutputFormat))
}

func TestApp_Run_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	store := mocks.NewMockWorkflowStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	listErr := errors.New("permission denied")
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultConfig(), nil)
	store.EXPECT().List(domain.DefaultWorkflowDir).Return(nil, listErr)

	a := app.New(loader, store, nil, log, metrics.NewRecorder(), telemetry.NewNoOpTracer())
	_, err := a.Run(t.Context(), app.RunOptions{})
	assert.True(t, errors.Is(err, listErr))
}

func TestApp_Run_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	store := mocks.NewMockWorkflowStore(ctrl)
	log := mocks.NewMockLogger(ctrl)
	up := mocks.NewMockUpdater(ctrl)

	entity, err := domain.NewEntity("actions/checkout@v2", domain.Position{Line: 4, Column: 15})
	require.NoError(t, err)
	wf := &domain.Workflow{Path: "ci.yml", Entities: []domain.Entity{entity}}

	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultConfig(), nil)
	store.EXPECT().List(gomock.Any()).Return([]string{"ci.yml"}, nil)
	store.EXPECT().Load("ci.yml").Return(wf, nil)
	store.EXPECT().Save(wf).DoAndReturn(func(saved *domain.Workflow) (bool, error) {
		assert.Equal(t, "actions/checkout@v3", saved.Entities[0].UpdatedLine)
		return false, domain.ErrWorkflowChanged
	})
	up.EXPECT().Scheme().Return(domain.SchemeGitHub).AnyTimes()
	up.EXPECT().URL(gomock.Any()).Return("https://api.github.test", nil).AnyTimes()
	up.EXPECT().Versions(gomock.Any(), gomock.Any()).Return(versions("v2", "v3"), nil)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).Times(1)

	var stdout bytes.Buffer
	a := app.New(loader, store, []ports.Updater{up}, log, metrics.NewRecorder(), telemetry.NewNoOpTracer()).
		WithOutput(&stdout, &bytes.Buffer{})

	summary, err := a.Run(t.Context(), app.RunOptions{})
	assert.True(t, errors.Is(err, domain.ErrProcessingFailed))
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "ci.yml: update github://actions/checkout from v2 to v3\n", stdout.String())
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t)
	f.github.EXPECT().Versions(gomock.Any(), domain.NewAction("actions/checkout")).
		Return(versions("v2", "v3", "v4"), nil).Times(1)
	f.hub.EXPECT().Versions(gomock.Any(), gomock.Any()).Return(versions(omnilintTags...), nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrUnrecognizedReference))
	}).Times(1)

	var out bytes.Buffer
	err := f.app().Resolve(t.Context(), []string{
		"actions/checkout@v2",
		"docker://lpenz/omnilint:0.9.0",
		"not-a-reference",
		"actions/checkout@v4",
	}, &out)

	assert.True(t, errors.Is(err, domain.ErrProcessingFailed))
	assert.Equal(t,
		"actions/checkout@v2 -> v4\n"+
			"docker://lpenz/omnilint:0.9.0: up to date\n"+
			"actions/checkout@v4: up to date\n",
		out.String())
}

func TestApp_ConfigureLogging(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().SetJSON(true)
	f.logger.EXPECT().SetVerbose(false)

	f.app().ConfigureLogging(true, false)
}
