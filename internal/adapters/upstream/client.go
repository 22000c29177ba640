// Package upstream performs the HTTP requests shared by the updaters.
package upstream

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.trai.ch/ghwu/internal/build"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// ClientTimeout bounds a single upstream request.
	ClientTimeout = 30 * time.Second

	// maxBodySize caps the response bodies read from upstreams.
	maxBodySize = 32 << 20
)

// UserAgent identifies ghwu to upstream APIs.
func UserAgent() string {
	return "ghwu/" + build.Version
}

// NewClient returns the HTTP client used when an updater is not given one.
func NewClient() *http.Client {
	return &http.Client{Timeout: ClientTimeout}
}

// Get fetches url and returns its body. Non-2xx responses become *domain.HTTPError.
func Get(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("User-Agent", UserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.HTTPError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return body, nil
}
