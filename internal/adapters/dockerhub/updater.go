// Package dockerhub implements the updater for images hosted on Docker Hub.
package dockerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.trai.ch/ghwu/internal/adapters/upstream"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultAPIURL is the public Docker Hub API.
	DefaultAPIURL = "https://hub.docker.com"

	// APIURLEnv overrides the API base URL.
	APIURLEnv = "DOCKERHUB_API_URL"

	// DefaultMaxPages bounds how many result pages are followed for one repository.
	DefaultMaxPages = 10

	pageSize = 100
)

// Updater implements ports.Updater using the Docker Hub tag listing.
type Updater struct {
	baseURL  string
	maxPages int
	client   *http.Client
	logger   ports.Logger
}

// Option configures an Updater.
type Option func(*Updater)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(u *Updater) {
		u.baseURL = url
	}
}

// WithMaxPages sets how many pages are followed. Values below one mean a single page.
func WithMaxPages(n int) Option {
	return func(u *Updater) {
		u.maxPages = n
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(u *Updater) {
		u.client = client
	}
}

// WithLogger sets the logger told about truncated tag listings.
func WithLogger(logger ports.Logger) Option {
	return func(u *Updater) {
		u.logger = logger
	}
}

// New creates an Updater configured from the environment, then from opts.
func New(opts ...Option) *Updater {
	u := &Updater{
		baseURL:  DefaultAPIURL,
		maxPages: DefaultMaxPages,
	}
	if url := os.Getenv(APIURLEnv); url != "" {
		u.baseURL = url
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.client == nil {
		u.client = upstream.NewClient()
	}
	if u.maxPages < 1 {
		u.maxPages = 1
	}
	u.baseURL = strings.TrimSuffix(u.baseURL, "/")
	return u
}

// Scheme implements ports.Updater.
func (u *Updater) Scheme() domain.Scheme {
	return domain.SchemeDockerHub
}

// URL implements ports.Updater. It returns the first page of the tag listing.
func (u *Updater) URL(resource domain.Resource) (string, error) {
	if resource.Scheme() != domain.SchemeDockerHub {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownResourceScheme, "dockerhub"), "resource", resource.String())
	}
	return fmt.Sprintf("%s/v2/repositories/%s/tags?page_size=%d", u.baseURL, resource.Repository(), pageSize), nil
}

// Versions implements ports.Updater. Pages are followed until there is no next
// link or the page limit is reached.
func (u *Updater) Versions(ctx context.Context, resource domain.Resource) ([]domain.Version, error) {
	url, err := u.URL(resource)
	if err != nil {
		return nil, err
	}

	header := http.Header{"Accept": {"application/json"}}
	versions := []domain.Version{}
	for page := 0; page < u.maxPages && url != ""; page++ {
		body, err := upstream.Get(ctx, u.client, url, header)
		if err != nil {
			return nil, err
		}

		tags, next, err := ParseTags(body)
		if err != nil {
			return nil, err
		}
		versions = append(versions, tags...)
		url = next
	}
	if url != "" && u.logger != nil {
		u.logger.Warn(fmt.Sprintf("%s: stopped after %d pages of tags, newer tags may be missing", resource, u.maxPages))
	}
	return versions, nil
}

type tagEntry struct {
	Name *string `json:"name"`
}

type tagPage struct {
	Next    *string           `json:"next"`
	Results []json.RawMessage `json:"results"`
}

// ParseTags turns one tag listing body into versions, keeping their order, and
// returns the next page URL if any. It accepts the paginated object and the
// legacy top-level array, whose entries must all be objects with a string name.
func ParseTags(body []byte) ([]domain.Version, string, error) {
	trimmed := bytes.TrimSpace(body)

	var entries []json.RawMessage
	var next string
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, "", &domain.JSONParsingError{Detail: "expected a list of tag objects: " + err.Error()}
		}
	} else {
		var page tagPage
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, "", &domain.JSONParsingError{Detail: "expected a tag page object: " + err.Error()}
		}
		if page.Results == nil {
			return nil, "", &domain.JSONParsingError{Detail: "results field not found in tag page"}
		}
		entries = page.Results
		if page.Next != nil {
			next = *page.Next
		}
	}

	versions := make([]domain.Version, 0, len(entries))
	for i, raw := range entries {
		var entry tagEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, "", &domain.JSONParsingError{Detail: fmt.Sprintf("invalid tag object at index %d: %v", i, err)}
		}
		if entry.Name == nil {
			return nil, "", &domain.JSONParsingError{Detail: fmt.Sprintf("name field not found in tag object at index %d", i)}
		}

		v, err := domain.ParseVersion(*entry.Name)
		if err != nil {
			return nil, "", err
		}
		versions = append(versions, v)
	}
	return versions, next, nil
}
