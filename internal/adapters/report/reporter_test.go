package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ghwu/internal/adapters/report"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func outdatedEntities(t *testing.T) []domain.Entity {
	t.Helper()
	updates := []struct{ ref, latest string }{
		{ref: "actions/checkout@v2", latest: "v4.1.1"},
		{ref: "docker://lpenz/omnilint:0.4", latest: "0.9.0"},
		{ref: "lpenz/ghworkflow-rust/.github/workflows/rust.yml@0.10", latest: "0.11"},
	}

	entities := make([]domain.Entity, 0, len(updates))
	for i, u := range updates {
		e, err := domain.NewEntity(u.ref, domain.Position{Line: i + 5, Column: 15})
		require.NoError(t, err)
		entities = append(entities, e.WithLatest(domain.MustParseVersion(u.latest)))
	}
	return entities
}

func TestReporter_Golden(t *testing.T) {
	tests := []struct {
		name   string
		format domain.OutputFormat
		dryRun bool
	}{
		{name: "standard", format: domain.OutputStandard},
		{name: "standard_dryrun", format: domain.OutputStandard, dryRun: true},
		{name: "github_warning", format: domain.OutputGitHubWarning},
		{name: "github_warning_dryrun", format: domain.OutputGitHubWarning, dryRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			r := report.New(tt.format, &stdout, &stderr, nil)

			for _, e := range outdatedEntities(t) {
				r.Outdated(".github/workflows/ci.yml", e, tt.dryRun)
			}
			r.Summary()

			g := goldie.New(t)
			g.Assert(t, tt.name+"_stdout", stdout.Bytes())
			g.Assert(t, tt.name+"_stderr", stderr.Bytes())
		})
	}
}

func TestReporter_Failed_GitHubWarning(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := report.New(domain.OutputGitHubWarning, &stdout, &stderr, nil)

	err := &domain.HTTPError{URL: "https://api.github.com/repos/nope/nope/git/matching-refs/tags", Status: 404}
	r.Failed(".github/workflows/ci.yml", domain.NewAction("nope/nope"), err)

	assert.Equal(t,
		"::error file=.github/workflows/ci.yml::github://nope/nope: "+
			"404 Not Found while getting https://api.github.com/repos/nope/nope/git/matching-refs/tags\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReporter_Failed_Standard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cause := errors.New("boom")
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "failed to resolve github://nope/nope")
	}).Times(1)

	var stdout, stderr bytes.Buffer
	r := report.New(domain.OutputStandard, &stdout, &stderr, mockLogger)
	r.Failed("ci.yml", domain.NewAction("nope/nope"), cause)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
