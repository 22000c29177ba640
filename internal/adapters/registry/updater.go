// Package registry implements the updater for images hosted on OCI registries
// other than Docker Hub.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"go.trai.ch/ghwu/internal/adapters/upstream"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/zerr"
)

// Updater implements ports.Updater using the distribution tag list endpoint.
type Updater struct {
	keychain  authn.Keychain
	transport http.RoundTripper
}

// Option configures an Updater.
type Option func(*Updater)

// WithKeychain sets where registry credentials come from.
func WithKeychain(kc authn.Keychain) Option {
	return func(u *Updater) {
		u.keychain = kc
	}
}

// WithTransport sets the HTTP transport used to reach registries.
func WithTransport(rt http.RoundTripper) Option {
	return func(u *Updater) {
		u.transport = rt
	}
}

// New creates an Updater using the docker credential keychain.
func New(opts ...Option) *Updater {
	u := &Updater{
		keychain:  authn.DefaultKeychain,
		transport: remote.DefaultTransport,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Scheme implements ports.Updater.
func (u *Updater) Scheme() domain.Scheme {
	return domain.SchemeRegistry
}

// URL implements ports.Updater.
func (u *Updater) URL(resource domain.Resource) (string, error) {
	repo, err := u.repository(resource)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s://%s/v2/%s/tags/list", repo.Scheme(), repo.RegistryStr(), repo.RepositoryStr()), nil
}

// Versions implements ports.Updater.
func (u *Updater) Versions(ctx context.Context, resource domain.Resource) ([]domain.Version, error) {
	repo, err := u.repository(resource)
	if err != nil {
		return nil, err
	}

	tags, err := remote.List(repo,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(u.keychain),
		remote.WithTransport(u.transport),
		remote.WithUserAgent(upstream.UserAgent()),
	)
	if err != nil {
		var terr *transport.Error
		if errors.As(err, &terr) {
			url, _ := u.URL(resource)
			return nil, &domain.HTTPError{URL: url, Status: terr.StatusCode}
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list tags"), "repository", repo.String())
	}

	versions := make([]domain.Version, 0, len(tags))
	for _, tag := range tags {
		v, err := domain.ParseVersion(tag)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (u *Updater) repository(resource domain.Resource) (name.Repository, error) {
	if resource.Scheme() != domain.SchemeRegistry {
		return name.Repository{}, zerr.With(zerr.Wrap(domain.ErrUnknownResourceScheme, "registry"), "resource", resource.String())
	}
	repo, err := name.NewRepository(resource.Path)
	if err != nil {
		return name.Repository{}, zerr.With(zerr.Wrap(domain.ErrUnrecognizedReference, err.Error()), "resource", resource.String())
	}
	return repo, nil
}
