// Package github implements the updater for GitHub actions and reusable workflows.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/ghwu/internal/adapters/upstream"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultAPIURL is the public GitHub REST API.
	DefaultAPIURL = "https://api.github.com"

	// APIURLEnv overrides the API base URL. GitHub Actions sets it on every runner.
	APIURLEnv = "GITHUB_API_URL"

	acceptHeader = "application/vnd.github.v3+json"
)

// tokenEnvVars lists the environment variables checked for a token, in priority order.
var tokenEnvVars = []string{"PERSONAL_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"}

var tagRefPattern = regexp.MustCompile(`^refs/tags/(.+)$`)

// Token returns the first token found in the environment, or "".
func Token() string {
	for _, env := range tokenEnvVars {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// Updater implements ports.Updater using the matching-refs endpoint.
type Updater struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures an Updater.
type Option func(*Updater)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(u *Updater) {
		u.baseURL = url
	}
}

// WithToken sets the bearer token. An empty token sends anonymous requests.
func WithToken(token string) Option {
	return func(u *Updater) {
		u.token = token
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(u *Updater) {
		u.client = client
	}
}

// New creates an Updater configured from the environment, then from opts.
func New(opts ...Option) *Updater {
	u := &Updater{
		baseURL: DefaultAPIURL,
		token:   Token(),
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
	u.baseURL = strings.TrimSuffix(u.baseURL, "/")
	return u
}

// Scheme implements ports.Updater.
func (u *Updater) Scheme() domain.Scheme {
	return domain.SchemeGitHub
}

// URL implements ports.Updater.
func (u *Updater) URL(resource domain.Resource) (string, error) {
	if resource.Scheme() != domain.SchemeGitHub {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownResourceScheme, "github"), "resource", resource.String())
	}
	return fmt.Sprintf("%s/repos/%s/git/matching-refs/tags", u.baseURL, resource.Repository()), nil
}

// Versions implements ports.Updater.
func (u *Updater) Versions(ctx context.Context, resource domain.Resource) ([]domain.Version, error) {
	url, err := u.URL(resource)
	if err != nil {
		return nil, err
	}

	header := http.Header{"Accept": {acceptHeader}}
	if u.token != "" {
		header.Set("Authorization", "Bearer "+u.token)
	}

	body, err := upstream.Get(ctx, u.client, url, header)
	if err != nil {
		return nil, err
	}
	return ParseRefs(body)
}

// ParseRefs turns a matching-refs response into versions, keeping their order.
// Every entry must be an object whose ref is refs/tags/<version>.
func ParseRefs(body []byte) ([]domain.Version, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &domain.JSONParsingError{Detail: "expected a list of ref objects: " + err.Error()}
	}
	if entries == nil {
		return nil, &domain.JSONParsingError{Detail: "expected a list of ref objects, got null"}
	}

	versions := make([]domain.Version, 0, len(entries))
	for i, raw := range entries {
		var entry struct {
			Ref *string `json:"ref"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, &domain.JSONParsingError{Detail: fmt.Sprintf("invalid ref object at index %d: %v", i, err)}
		}
		if entry.Ref == nil {
			return nil, &domain.JSONParsingError{Detail: fmt.Sprintf("ref field not found in ref object at index %d", i)}
		}

		m := tagRefPattern.FindStringSubmatch(*entry.Ref)
		if m == nil {
			return nil, &domain.JSONParsingError{Detail: fmt.Sprintf("ref %q is not a tag", *entry.Ref)}
		}

		v, err := domain.ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}
