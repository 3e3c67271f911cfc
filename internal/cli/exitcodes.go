package cli

import (
	"errors"

	"github.com/yaklabco/logsweep/pkg/fsutil"
	"github.com/yaklabco/logsweep/pkg/runner"
)

// Exit codes for logsweep.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFileErrors indicates the sweep completed but some files errored.
	ExitFileErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinels used to classify command errors for exit codes.
var (
	// ErrUsage marks invalid command-line usage (bad flags or arguments).
	ErrUsage = errors.New("invalid usage")

	// ErrConfigLoad marks configuration discovery or validation failures.
	ErrConfigLoad = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code for a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() {
		return ExitFileErrors
	}
	return ExitSuccess
}

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitFileErrors
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
