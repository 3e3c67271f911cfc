package runner

import "github.com/yaklabco/logsweep/pkg/sweep"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *sweep.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files left alone, with counts per reason.
	FilesSkipped int

	// SkippedByReason breaks FilesSkipped down by skip reason.
	SkippedByReason map[sweep.SkipReason]int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesModified is the number of files whose rewritten content reached
	// disk (or, on a dry run, the number that would be rewritten).
	FilesModified int

	// StatementsChanged is the total number of statements removed or
	// commented out across all files.
	StatementsChanged int

	// StatementsSkipped is the total number of target invocations left
	// alone because they were embedded in larger statements.
	StatementsSkipped int

	// BackupsCreated is the number of sidecar backups written.
	BackupsCreated int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// HasChanges reports whether any file was (or would be) rewritten.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesModified > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		SkippedByReason: make(map[sweep.SkipReason]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
		r.Stats.SkippedByReason[outcome.Result.SkipReason]++
	}

	if outcome.Result.Modified {
		r.Stats.FilesModified++
	}

	if outcome.Result.BackupCreated {
		r.Stats.BackupsCreated++
	}

	r.Stats.StatementsChanged += outcome.Result.StatementsChanged
	r.Stats.StatementsSkipped += outcome.Result.StatementsSkipped
}
