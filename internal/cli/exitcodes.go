package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/gofasta/internal/configloader"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/runner"
)

// Exit codes for gofasta.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailedFiles indicates at least one input file failed to process.
	ExitFailedFiles = 1

	// ExitUsageError indicates invalid command-line usage, bad
	// configuration, or inputs that do not exist.
	ExitUsageError = 2

	// ExitInternalError indicates an unexpected internal failure.
	ExitInternalError = 3
)

// ErrFilesFailed signals that a run completed but at least one file
// failed. It carries no detail of its own; the reporter has already
// rendered the failures by the time it is returned.
var ErrFilesFailed = errors.New("some files failed")

// ErrUsage marks command-line usage errors such as unknown flags or
// conflicting options.
var ErrUsage = errors.New("usage error")

// ExitCodeForError maps an error returned by Execute to a process
// exit code. A nil error maps to ExitSuccess.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitFailedFiles
	case errors.Is(err, ErrUsage),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, configloader.ErrConfigNotFound),
		errors.Is(err, runner.ErrNoInputs),
		errors.Is(err, fs.ErrNotExist):
		return ExitUsageError
	default:
		return ExitInternalError
	}
}
