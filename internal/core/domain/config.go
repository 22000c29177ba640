package domain

import (
	"runtime"
	"slices"
	"strings"
)

const (
	// DefaultWorkflowDir is where GitHub looks for workflow files.
	DefaultWorkflowDir = ".github/workflows"

	// DefaultConfigFile is the optional configuration file looked up in the working directory.
	DefaultConfigFile = ".ghwu.yaml"

	// FilePerm is the permission used when a rewritten workflow has no existing mode.
	FilePerm = 0o644
)

// OutputFormat selects how outdated entities are reported.
type OutputFormat string

const (
	// OutputStandard prints one human readable line per outdated entity.
	OutputStandard OutputFormat = "standard"
	// OutputGitHubWarning prints GitHub Actions workflow commands.
	OutputGitHubWarning OutputFormat = "github-warning"
)

// ParseOutputFormat validates s. The empty string selects OutputStandard.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputStandard:
		return OutputStandard, nil
	case OutputGitHubWarning:
		return OutputGitHubWarning, nil
	default:
		return "", ErrInvalidOutputFormat
	}
}

// Config is the run configuration after merging the config file and flags.
type Config struct {
	WorkflowDir  string
	OutputFormat OutputFormat
	// Concurrency bounds the number of workflow files processed at once. Zero means one per CPU.
	Concurrency int
	// Ignore lists resources that are never checked, written as "owner/repo" or "docker://image".
	Ignore []string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		WorkflowDir:  DefaultWorkflowDir,
		OutputFormat: OutputStandard,
	}
}

// Workers returns the effective file concurrency.
func (c Config) Workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}

// Ignores reports whether r is listed in the ignore list.
func (c Config) Ignores(r Resource) bool {
	return slices.ContainsFunc(c.Ignore, func(entry string) bool {
		switch r.Kind {
		case KindImage:
			image, ok := strings.CutPrefix(entry, imagePrefix)
			if !ok {
				return false
			}
			ignored, err := NewImage(image)
			return err == nil && ignored == r
		case KindAction:
			return entry == r.Path || entry == r.String() || entry == r.Repository()
		default:
			return false
		}
	})
}
