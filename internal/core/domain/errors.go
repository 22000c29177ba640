package domain

import (
	"fmt"
	"net/http"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownResourceScheme is returned when no updater handles the resource's scheme.
	ErrUnknownResourceScheme = zerr.New("updater not found")

	// ErrChannelClosed is returned when the resolver service is no longer reachable.
	ErrChannelClosed = zerr.New("resolver channel closed")

	// ErrUnrecognizedReference is returned when a reference is neither an image nor an action.
	ErrUnrecognizedReference = zerr.New("unrecognized reference")

	// ErrJobsNotFound is returned when a workflow has no top-level jobs mapping.
	ErrJobsNotFound = zerr.New("jobs entry not found")

	// ErrInvalidWorkflow is returned when a workflow node has an unexpected type.
	ErrInvalidWorkflow = zerr.New("invalid workflow")

	// ErrWorkflowChanged is returned when a workflow file changed on disk after it was loaded.
	ErrWorkflowChanged = zerr.New("workflow changed on disk since it was read")

	// ErrWorkflowReadFailed is returned when a workflow file cannot be read.
	ErrWorkflowReadFailed = zerr.New("failed to read workflow")

	// ErrWorkflowWriteFailed is returned when a workflow file cannot be written.
	ErrWorkflowWriteFailed = zerr.New("failed to write workflow")

	// ErrWorkflowDirReadFailed is returned when the workflow directory cannot be listed.
	ErrWorkflowDirReadFailed = zerr.New("failed to list workflow directory")

	// ErrProcessingFailed is returned when at least one workflow could not be processed.
	ErrProcessingFailed = zerr.New("failed to process workflows")

	// ErrOutdatedFound is returned when outdated entities were found and the caller asked to fail on them.
	ErrOutdatedFound = zerr.New("outdated entities found")

	// ErrInvalidOutputFormat is returned for an output format other than standard or github-warning.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'standard' or 'github-warning'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConcurrency is returned when the configured concurrency is negative.
	ErrInvalidConcurrency = zerr.New("concurrency must not be negative")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)

// HTTPError is returned when an upstream responds with a non-2xx status.
type HTTPError struct {
	URL    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s while getting %s", e.Status, http.StatusText(e.Status), e.URL)
}

// JSONParsingError is returned when an upstream body does not have the expected structure.
type JSONParsingError struct {
	Detail string
}

func (e *JSONParsingError) Error() string {
	return e.Detail + " while parsing json"
}

// VersionParsingError is returned when a tag cannot be turned into a Version.
type VersionParsingError struct {
	Raw string
}

func (e *VersionParsingError) Error() string {
	return fmt.Sprintf("unable to parse version in %q", e.Raw)
}
