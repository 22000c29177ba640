package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
	"go.trai.ch/zerr"
)

// Kind discriminates the artifact a Resource points at.
type Kind int

const (
	// KindUnknown is the zero Kind. No updater handles it.
	KindUnknown Kind = iota
	// KindImage is a container image referenced as docker://image:tag.
	KindImage
	// KindAction is a GitHub action or reusable workflow referenced as owner/repo@ref.
	KindAction
)

// Scheme names the updater strategy responsible for a Resource.
type Scheme string

const (
	// SchemeDockerHub is served by the Docker Hub tag API.
	SchemeDockerHub Scheme = "dockerhub"
	// SchemeRegistry is served by the OCI distribution tag list of any other registry.
	SchemeRegistry Scheme = "registry"
	// SchemeGitHub is served by the GitHub matching-refs API.
	SchemeGitHub Scheme = "github"
)

const (
	imagePrefix  = "docker://"
	actionPrefix = "github://"
)

var (
	imageRefPattern  = regexp.MustCompile(`^docker://([^:]+):([^:]+)$`)
	actionRefPattern = regexp.MustCompile(`^([^/]+)/([^@]+)@([^@]+)$`)
)

// Resource identifies a versioned artifact independently of its version.
// It is comparable and used as a map key.
type Resource struct {
	Kind Kind
	Path string
}

// NewImage returns the image Resource for ref, normalized the way registries see it:
// Docker Hub images lose their registry ("ubuntu" becomes "library/ubuntu"),
// images on other registries keep "host/repository".
func NewImage(ref string) (Resource, error) {
	repo, err := name.NewRepository(ref)
	if err != nil {
		return Resource{}, zerr.With(zerr.Wrap(ErrUnrecognizedReference, err.Error()), "reference", ref)
	}
	path := repo.RepositoryStr()
	if repo.RegistryStr() != name.DefaultRegistry {
		path = repo.RegistryStr() + "/" + path
	}
	return Resource{Kind: KindImage, Path: path}, nil
}

// NewAction returns the action Resource for an owner/repo[/subpath] path.
func NewAction(path string) Resource {
	return Resource{Kind: KindAction, Path: strings.Trim(path, "/")}
}

// ParseReference splits a workflow reference into its Resource and pinned Version.
func ParseReference(text string) (Resource, Version, error) {
	if m := imageRefPattern.FindStringSubmatch(text); m != nil {
		version, err := ParseVersion(m[2])
		if err != nil {
			return Resource{}, Version{}, err
		}
		resource, err := NewImage(m[1])
		if err != nil {
			return Resource{}, Version{}, err
		}
		return resource, version, nil
	}

	if m := actionRefPattern.FindStringSubmatch(text); m != nil {
		version, err := ParseVersion(m[3])
		if err != nil {
			return Resource{}, Version{}, err
		}
		return NewAction(m[1] + "/" + m[2]), version, nil
	}

	return Resource{}, Version{}, zerr.Wrap(ErrUnrecognizedReference, fmt.Sprintf("parse %q", text))
}

// String renders the resource as docker://path or github://path.
func (r Resource) String() string {
	switch r.Kind {
	case KindImage:
		return imagePrefix + r.Path
	case KindAction:
		return actionPrefix + r.Path
	default:
		return "unknown://" + r.Path
	}
}

// Scheme classifies the resource. Unknown kinds return the empty Scheme.
func (r Resource) Scheme() Scheme {
	switch r.Kind {
	case KindImage:
		if r.Registry() == name.DefaultRegistry {
			return SchemeDockerHub
		}
		return SchemeRegistry
	case KindAction:
		return SchemeGitHub
	default:
		return ""
	}
}

// Registry returns the registry host of an image resource.
func (r Resource) Registry() string {
	if r.Kind != KindImage {
		return ""
	}
	host, _, found := strings.Cut(r.Path, "/")
	if found && looksLikeHost(host) {
		return host
	}
	return name.DefaultRegistry
}

// Repository returns the repository part of the path: the image repository
// without its registry, or owner/repo for actions (any sub-workflow path stripped).
func (r Resource) Repository() string {
	switch r.Kind {
	case KindImage:
		if registry := r.Registry(); registry != name.DefaultRegistry {
			return strings.TrimPrefix(r.Path, registry+"/")
		}
		return r.Path
	case KindAction:
		parts := strings.SplitN(r.Path, "/", 3)
		if len(parts) < 2 {
			return r.Path
		}
		return parts[0] + "/" + parts[1]
	default:
		return r.Path
	}
}

// looksLikeHost mirrors the registry detection of image references:
// a first path component is a host when it has a dot, a port or is localhost.
func looksLikeHost(s string) bool {
	return strings.ContainsAny(s, ".:") || s == "localhost"
}
