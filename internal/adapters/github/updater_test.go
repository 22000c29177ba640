package github_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ghwu/internal/adapters/github"
	"go.trai.ch/ghwu/internal/core/domain"
)

func versionStrings(vs []domain.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}
	return out
}

func TestParseRefs(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "matching_refs.json"))
	require.NoError(t, err)

	versions, err := github.ParseRefs(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0.1", "0.2", "latest", "v0.4"}, versionStrings(versions))
}

func TestParseRefs_Empty(t *testing.T) {
	versions, err := github.ParseRefs([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, versions)
	assert.Empty(t, versions)
}

func TestParseRefs_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>`},
		{name: "object instead of list", body: `{"message": "Not Found"}`},
		{name: "null", body: `null`},
		{name: "entry not an object", body: `["refs/tags/v1"]`},
		{name: "missing ref", body: `[{"ref": "refs/tags/v1"}, {"node_id": "x"}]`},
		{name: "ref not a string", body: `[{"ref": 1}]`},
		{name: "branch ref", body: `[{"ref": "refs/tags/v1"}, {"ref": "refs/heads/main"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versions, err := github.ParseRefs([]byte(tt.body))
			assert.Nil(t, versions)

			var parseErr *domain.JSONParsingError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.NotEmpty(t, parseErr.Detail)
		})
	}
}

func TestParseRefs_InvalidVersion(t *testing.T) {
	_, err := github.ParseRefs([]byte(`[{"ref": "refs/tags/bad tag"}]`))

	var versionErr *domain.VersionParsingError
	require.True(t, errors.As(err, &versionErr))
	assert.Equal(t, "bad tag", versionErr.Raw)
}

func TestUpdater_URL(t *testing.T) {
	u := github.New(github.WithBaseURL("https://ghe.example.com/api/v3/"))

	url, err := u.URL(domain.NewAction("lpenz/ghworkflow-rust/.github/workflows/rust.yml"))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/repos/lpenz/ghworkflow-rust/git/matching-refs/tags", url)

	image, err := domain.NewImage("alpine")
	require.NoError(t, err)
	_, err = u.URL(image)
	assert.True(t, errors.Is(err, domain.ErrUnknownResourceScheme))
}

func TestUpdater_DefaultsFromEnvironment(t *testing.T) {
	t.Setenv(github.APIURLEnv, "https://ghe.example.com/api/v3")

	url, err := github.New().URL(domain.NewAction("actions/checkout"))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/repos/actions/checkout/git/matching-refs/tags", url)
}

func TestToken(t *testing.T) {
	t.Setenv("PERSONAL_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
	assert.Empty(t, github.Token())

	t.Setenv("GH_TOKEN", "gh")
	assert.Equal(t, "gh", github.Token())

	t.Setenv("GITHUB_TOKEN", "github")
	assert.Equal(t, "github", github.Token())

	t.Setenv("PERSONAL_TOKEN", "personal")
	assert.Equal(t, "personal", github.Token())
}

func TestUpdater_Versions(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "matching_refs.json"))
	require.NoError(t, err)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/repos/lpenz/ghworkflow-rust/git/matching-refs/tags", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "ghwu/")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	u := github.New(github.WithBaseURL(srv.URL), github.WithToken("secret"), github.WithHTTPClient(srv.Client()))

	versions, err := u.Versions(t.Context(), domain.NewAction("lpenz/ghworkflow-rust"))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0.1", "0.2", "latest", "v0.4"}, versionStrings(versions))
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpdater_Versions_Anonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	u := github.New(github.WithBaseURL(srv.URL), github.WithToken(""), github.WithHTTPClient(srv.Client()))

	versions, err := u.Versions(t.Context(), domain.NewAction("actions/checkout"))
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestUpdater_Versions_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	u := github.New(github.WithBaseURL(srv.URL), github.WithHTTPClient(srv.Client()))

	_, err := u.Versions(t.Context(), domain.NewAction("nope/nope"))

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, srv.URL+"/repos/nope/nope/git/matching-refs/tags", httpErr.URL)
}
