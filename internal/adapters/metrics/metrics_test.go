package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ghwu/internal/adapters/metrics"
	"go.trai.ch/ghwu/internal/core/domain"
)

func TestRecorder_Counters(t *testing.T) {
	r := metrics.NewRecorder()

	r.CacheMiss(domain.SchemeGitHub)
	r.Coalesced(domain.SchemeGitHub)
	r.Coalesced(domain.SchemeGitHub)
	r.CacheHit(domain.SchemeGitHub)
	r.CacheHit(domain.SchemeDockerHub)
	r.FetchFailed(domain.SchemeRegistry)
	r.UnknownScheme()

	assert.InDelta(t, 1, testutil.ToFloat64(r.Cache.WithLabelValues("github", metrics.CacheMiss)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.Cache.WithLabelValues("github", metrics.CacheCoalesced)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Cache.WithLabelValues("github", metrics.CacheHit)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Cache.WithLabelValues("dockerhub", metrics.CacheHit)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.FetchErrors.WithLabelValues("registry")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.UnknownSchemes), 0)
}

func TestRecorder_Isolated(t *testing.T) {
	a := metrics.NewRecorder()
	b := metrics.NewRecorder()

	a.UnknownScheme()

	assert.InDelta(t, 1, testutil.ToFloat64(a.UnknownSchemes), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.UnknownSchemes), 0)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.CacheMiss(domain.SchemeDockerHub)
	r.UnknownScheme()

	path := filepath.Join(t.TempDir(), "ghwu.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ghwu_resolver_cache_total{scheme="dockerhub",status="miss"} 1`)
	assert.Contains(t, string(data), "ghwu_resolver_unknown_scheme_total 1")
	assert.NotContains(t, string(data), "ghwu_resolver_fetch_errors_total")
}

func TestRecorder_WriteTextfile_Error(t *testing.T) {
	r := metrics.NewRecorder()

	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "ghwu.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMetricsWriteFailed.Error())
}
