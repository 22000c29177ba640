package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ghwu/internal/core/domain"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantKind    domain.Kind
		wantPath    string
		wantVersion string
		wantScheme  domain.Scheme
		wantString  string
	}{
		{
			name:        "docker hub image",
			text:        "docker://lpenz/omnilint:0.4",
			wantKind:    domain.KindImage,
			wantPath:    "lpenz/omnilint",
			wantVersion: "0.4",
			wantScheme:  domain.SchemeDockerHub,
			wantString:  "docker://lpenz/omnilint",
		},
		{
			name:        "official image",
			text:        "docker://alpine:3.18",
			wantKind:    domain.KindImage,
			wantPath:    "library/alpine",
			wantVersion: "3.18",
			wantScheme:  domain.SchemeDockerHub,
			wantString:  "docker://library/alpine",
		},
		{
			name:        "other registry",
			text:        "docker://ghcr.io/lpenz/ghworkflow-rust:0.1",
			wantKind:    domain.KindImage,
			wantPath:    "ghcr.io/lpenz/ghworkflow-rust",
			wantVersion: "0.1",
			wantScheme:  domain.SchemeRegistry,
			wantString:  "docker://ghcr.io/lpenz/ghworkflow-rust",
		},
		{
			name:        "action",
			text:        "actions/checkout@v2",
			wantKind:    domain.KindAction,
			wantPath:    "actions/checkout",
			wantVersion: "v2",
			wantScheme:  domain.SchemeGitHub,
			wantString:  "github://actions/checkout",
		},
		{
			name:        "reusable workflow",
			text:        "lpenz/ghworkflow-rust/.github/workflows/rust.yml@0.10",
			wantKind:    domain.KindAction,
			wantPath:    "lpenz/ghworkflow-rust/.github/workflows/rust.yml",
			wantVersion: "0.10",
			wantScheme:  domain.SchemeGitHub,
			wantString:  "github://lpenz/ghworkflow-rust/.github/workflows/rust.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, version, err := domain.ParseReference(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, resource.Kind)
			assert.Equal(t, tt.wantPath, resource.Path)
			assert.Equal(t, tt.wantVersion, version.String())
			assert.Equal(t, tt.wantScheme, resource.Scheme())
			assert.Equal(t, tt.wantString, resource.String())
		})
	}
}

func TestParseReference_Unrecognized(t *testing.T) {
	for _, text := range []string{
		"./.github/actions/local",
		"docker://alpine",
		"docker://alpine@sha256:0123",
		"checkout",
		"actions/checkout",
	} {
		t.Run(text, func(t *testing.T) {
			_, _, err := domain.ParseReference(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnrecognizedReference))
		})
	}
}

func TestResource_Identity(t *testing.T) {
	a, _, err := domain.ParseReference("docker://ubuntu:22.04")
	require.NoError(t, err)
	b, _, err := domain.ParseReference("docker://library/ubuntu:20.04")
	require.NoError(t, err)
	c, _, err := domain.ParseReference("docker://docker.io/library/ubuntu:latest")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	seen := map[domain.Resource]int{a: 1}
	seen[b]++
	assert.Len(t, seen, 1)
}

func TestResource_Repository(t *testing.T) {
	action := domain.NewAction("lpenz/ghworkflow-rust/.github/workflows/rust.yml")
	assert.Equal(t, "lpenz/ghworkflow-rust", action.Repository())

	image, err := domain.NewImage("ghcr.io/owner/tool")
	require.NoError(t, err)
	assert.Equal(t, "ghcr.io", image.Registry())
	assert.Equal(t, "owner/tool", image.Repository())

	hub, err := domain.NewImage("lpenz/omnilint")
	require.NoError(t, err)
	assert.Equal(t, "index.docker.io", hub.Registry())
	assert.Equal(t, "lpenz/omnilint", hub.Repository())
}

func TestResource_UnknownScheme(t *testing.T) {
	var r domain.Resource
	assert.Equal(t, domain.Scheme(""), r.Scheme())
	assert.Equal(t, "unknown://", r.String())
}
