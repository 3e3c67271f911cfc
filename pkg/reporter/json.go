package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/logsweep/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path              string `json:"path"`
	Modified          bool   `json:"modified"`
	Written           bool   `json:"written,omitempty"`
	StatementsChanged int    `json:"statementsChanged,omitempty"`
	StatementsSkipped int    `json:"statementsSkipped,omitempty"`
	SkipReason        string `json:"skipReason,omitempty"`
	BackupCreated     bool   `json:"backupCreated,omitempty"`
	Diff              string `json:"diff,omitempty"`
	Error             string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered   int `json:"filesDiscovered"`
	FilesProcessed    int `json:"filesProcessed"`
	FilesModified     int `json:"filesModified"`
	FilesSkipped      int `json:"filesSkipped"`
	FilesErrored      int `json:"filesErrored"`
	StatementsChanged int `json:"statementsChanged"`
	StatementsSkipped int `json:"statementsSkipped"`
	BackupsCreated    int `json:"backupsCreated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesModified, nil
}

// buildOutput converts a runner result into the JSON structure.
func (r *JSONReporter) buildOutput(result *runner.Result) JSONOutput {
	output := JSONOutput{
		Version: "1",
		Files:   []JSONFileResult{},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fr := JSONFileResult{Path: r.displayPath(file.Path)}

		if file.Error != nil {
			fr.Error = file.Error.Error()
			output.Files = append(output.Files, fr)
			continue
		}

		res := file.Result
		if res == nil {
			continue
		}

		fr.Modified = res.Modified
		fr.Written = res.Written
		fr.StatementsChanged = res.StatementsChanged
		fr.StatementsSkipped = res.StatementsSkipped
		fr.SkipReason = string(res.SkipReason)
		fr.BackupCreated = res.BackupCreated
		if res.Diff != nil && res.Diff.HasChanges() {
			fr.Diff = res.Diff.String()
		}

		output.Files = append(output.Files, fr)
	}

	output.Summary = JSONSummary{
		FilesDiscovered:   result.Stats.FilesDiscovered,
		FilesProcessed:    result.Stats.FilesProcessed,
		FilesModified:     result.Stats.FilesModified,
		FilesSkipped:      result.Stats.FilesSkipped,
		FilesErrored:      result.Stats.FilesErrored,
		StatementsChanged: result.Stats.StatementsChanged,
		StatementsSkipped: result.Stats.StatementsSkipped,
		BackupsCreated:    result.Stats.BackupsCreated,
	}

	return output
}

// displayPath makes the path relative to WorkingDir when possible.
func (r *JSONReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
