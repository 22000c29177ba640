// Package report prints outdated entities in the formats understood by
// humans and by GitHub Actions.
package report

import (
	"fmt"
	"io"
	"sync"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter. It is safe for concurrent use; each
// report is written as a single line.
type Reporter struct {
	mu     sync.Mutex
	format domain.OutputFormat
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// New creates a Reporter. Resolution failures are sent to logger in the
// standard format.
func New(format domain.OutputFormat, stdout, stderr io.Writer, logger ports.Logger) *Reporter {
	return &Reporter{
		format: format,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Outdated implements ports.Reporter.
func (r *Reporter) Outdated(file string, entity domain.Entity, dryRun bool) {
	var line string
	switch r.format {
	case domain.OutputGitHubWarning:
		line = fmt.Sprintf("::warning file=%s::update %s from %s to %s",
			file, entity.Resource, entity.Version, entity.Latest)
	default:
		line = fmt.Sprintf("%s: update %s from %s to %s", file, entity.Resource, entity.Version, entity.Latest)
		if dryRun {
			line += " (dryrun)"
		}
	}
	r.println(r.stdout, line)
}

// Failed implements ports.Reporter.
func (r *Reporter) Failed(file string, resource domain.Resource, err error) {
	if r.format == domain.OutputGitHubWarning {
		r.println(r.stdout, fmt.Sprintf("::error file=%s::%s: %v", file, resource, err))
		return
	}

	if r.logger != nil {
		err = zerr.With(zerr.Wrap(err, "failed to resolve "+resource.String()), "file", file)
		r.logger.Error(err)
	}
}

// Summary implements ports.Reporter.
func (r *Reporter) Summary() {
	if r.format == domain.OutputGitHubWarning {
		r.println(r.stdout, "::error ::outdated entities found")
		return
	}
	r.println(r.stderr, "Found oudated entities")
}

func (r *Reporter) println(w io.Writer, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(w, line)
}
