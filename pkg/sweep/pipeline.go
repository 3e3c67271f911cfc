package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/logsweep/internal/logging"
	"github.com/yaklabco/logsweep/pkg/config"
	"github.com/yaklabco/logsweep/pkg/fix"
	"github.com/yaklabco/logsweep/pkg/fsutil"
	"github.com/yaklabco/logsweep/pkg/jsparse"
	"github.com/yaklabco/logsweep/pkg/langdetect"
)

var (
	// ErrParseFailure indicates the file could not be parsed into a usable
	// syntax tree.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a rewritten file could not be written back.
	ErrWriteFailure = errors.New("write failure")

	// ErrFileModified indicates the file changed on disk between reading
	// and writing.
	ErrFileModified = errors.New("file modified during processing")
)

// SkipReason explains why a file passed through the pipeline unmodified.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipNotScript   SkipReason = "not a script file"
	SkipSyntaxError SkipReason = "syntax errors"
	SkipNoMatches   SkipReason = "no matching statements"
)

// PipelineOptions configures per-file processing.
type PipelineOptions struct {
	// TargetName is the diagnostic object to sweep, e.g. "console".
	TargetName string

	// Comment rewrites matched statements as comments instead of
	// removing them.
	Comment bool

	// DryRun computes edits and diffs without touching the file.
	DryRun bool

	// Backups controls sidecar backups before in-place writes.
	Backups fsutil.BackupConfig
}

// OptionsFromConfig derives pipeline options from resolved configuration.
func OptionsFromConfig(cfg *config.Config) PipelineOptions {
	backups := fsutil.DefaultBackupConfig()
	backups.Enabled = cfg.Backups.Enabled && !cfg.NoBackups
	return PipelineOptions{
		TargetName: cfg.EffectiveTargetName(),
		Comment:    cfg.Comment,
		DryRun:     cfg.DryRun,
		Backups:    backups,
	}
}

// PipelineResult captures the outcome of processing one file.
type PipelineResult struct {
	Path string

	// Modified reports whether any edits were produced.
	Modified bool

	// ModifiedContent is the rewritten file content when Modified.
	ModifiedContent []byte

	// Diff is the unified diff between original and rewritten content,
	// populated for dry runs and for verbose reporting.
	Diff *fix.Diff

	// Skipped reports that the file was left alone; SkipReason says why.
	Skipped    bool
	SkipReason SkipReason

	// BackupCreated reports that a sidecar backup was written.
	BackupCreated bool

	// Written reports that the rewritten content reached disk.
	Written bool

	StatementsChanged int
	StatementsSkipped int
}

// ProcessFile runs the full rewrite pipeline for a single file: read and
// hash, parse, scan, plan, apply in memory, then write back atomically
// unless dry-running. A file whose tree contains syntax errors is skipped
// entirely rather than partially rewritten.
func ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	logger := logging.FromContext(ctx)
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}

	dialect, ok := langdetect.DetectDialect(path, content)
	if !ok {
		logger.Debug("skipping non-script file", logging.FieldPath, path)
		result.Skipped = true
		result.SkipReason = SkipNotScript
		return result, nil
	}

	snap, err := jsparse.ParseAs(ctx, path, content, dialect)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w: %v", path, ErrParseFailure, err)
	}
	defer snap.Close()

	if snap.HasSyntaxError() {
		logger.Warn("skipping file with syntax errors",
			logging.FieldPath, path)
		result.Skipped = true
		result.SkipReason = SkipSyntaxError
		return result, nil
	}

	scan := ScanSnapshot(snap, opts.TargetName)
	result.StatementsSkipped = scan.Skipped
	if len(scan.Matches) == 0 {
		result.Skipped = true
		result.SkipReason = SkipNoMatches
		return result, nil
	}

	edits := PlanEdits(content, scan.Matches, opts.Comment)
	prepared, err := fix.PrepareEdits(edits, len(content))
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}

	result.Modified = true
	result.ModifiedContent = fix.ApplyEdits(content, prepared)
	result.StatementsChanged = len(scan.Matches)
	result.Diff = fix.GenerateDiff(path, content, result.ModifiedContent)

	if opts.DryRun {
		return result, nil
	}

	// Refuse to clobber concurrent edits made while we were scanning.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}
	if modified {
		return nil, fmt.Errorf("process %s: %w", path, ErrFileModified)
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backups)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("process %s: %w: %v", path, ErrWriteFailure, err)
	}
	result.Written = true

	logger.Debug("rewrote file",
		logging.FieldPath, path,
		logging.FieldStatementsChanged, result.StatementsChanged)

	return result, nil
}
