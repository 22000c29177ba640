// Package config loads the optional ghwu configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path and merges it over the defaults.
func (l *Loader) Load(path string, required bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			l.Logger.Debug("no config file at " + path + ", using defaults")
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return apply(cfg, file, path)
}

func apply(cfg domain.Config, file File, path string) (domain.Config, error) {
	if dir := strings.TrimSpace(file.Workflows); dir != "" {
		cfg.WorkflowDir = dir
	}

	if file.OutputFormat != "" {
		format, err := domain.ParseOutputFormat(file.OutputFormat)
		if err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, path), "output-format", file.OutputFormat)
		}
		cfg.OutputFormat = format
	}

	if file.Concurrency != nil {
		if *file.Concurrency < 0 {
			return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConcurrency, path), "concurrency", *file.Concurrency)
		}
		cfg.Concurrency = *file.Concurrency
	}

	for _, entry := range file.Ignore {
		if entry = strings.TrimSpace(entry); entry != "" {
			cfg.Ignore = append(cfg.Ignore, entry)
		}
	}

	return cfg, nil
}
