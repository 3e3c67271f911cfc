package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldReason     = "reason"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTarget  = "target"
	FieldComment = "comment"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesModified     = "files_modified"
	FieldStatementsChanged = "statements_changed"
	FieldStatementsSkipped = "statements_skipped"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
