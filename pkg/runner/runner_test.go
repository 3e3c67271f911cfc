package runner_test

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/yaklabco/logsweep/pkg/config"
	"github.com/yaklabco/logsweep/pkg/runner"
	"github.com/yaklabco/logsweep/pkg/sweep"
)

func TestRun_AggregatesOutcomes(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "a.js", "b.js", "c.js", "d.js")

	r := runner.New()
	r.Process = func(_ context.Context, path string, _ sweep.PipelineOptions) (*sweep.PipelineResult, error) {
		switch filepath.Base(path) {
		case "a.js":
			return &sweep.PipelineResult{
				Path:              path,
				Modified:          true,
				Written:           true,
				BackupCreated:     true,
				StatementsChanged: 3,
				StatementsSkipped: 1,
			}, nil
		case "b.js":
			return &sweep.PipelineResult{
				Path:       path,
				Skipped:    true,
				SkipReason: sweep.SkipNoMatches,
			}, nil
		case "c.js":
			return &sweep.PipelineResult{
				Path:       path,
				Skipped:    true,
				SkipReason: sweep.SkipSyntaxError,
			}, nil
		default:
			return nil, errors.New("boom")
		}
	}

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	stats := result.Stats
	if stats.FilesDiscovered != 4 {
		t.Errorf("FilesDiscovered = %d, want 4", stats.FilesDiscovered)
	}
	if stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", stats.FilesProcessed)
	}
	if stats.FilesErrored != 1 {
		t.Errorf("FilesErrored = %d, want 1", stats.FilesErrored)
	}
	if stats.FilesSkipped != 2 {
		t.Errorf("FilesSkipped = %d, want 2", stats.FilesSkipped)
	}
	if stats.SkippedByReason[sweep.SkipSyntaxError] != 1 {
		t.Errorf("SkippedByReason[syntax] = %d, want 1",
			stats.SkippedByReason[sweep.SkipSyntaxError])
	}
	if stats.FilesModified != 1 {
		t.Errorf("FilesModified = %d, want 1", stats.FilesModified)
	}
	if stats.StatementsChanged != 3 || stats.StatementsSkipped != 1 {
		t.Errorf("StatementsChanged = %d, StatementsSkipped = %d; want 3, 1",
			stats.StatementsChanged, stats.StatementsSkipped)
	}
	if stats.BackupsCreated != 1 {
		t.Errorf("BackupsCreated = %d, want 1", stats.BackupsCreated)
	}

	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !result.HasChanges() {
		t.Error("HasChanges() = false, want true")
	}
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "e.js", "a.js", "c.js", "b.js", "d.js")

	r := runner.New()
	r.Process = func(_ context.Context, path string, _ sweep.PipelineOptions) (*sweep.PipelineResult, error) {
		return &sweep.PipelineResult{Path: path, Skipped: true, SkipReason: sweep.SkipNoMatches}, nil
	}

	opts := runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
		Jobs:       4,
	}

	var first []string
	for run := range 5 {
		result, err := r.Run(context.Background(), opts)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		paths := make([]string, 0, len(result.Files))
		for _, f := range result.Files {
			paths = append(paths, f.Path)
		}
		if !sort.StringsAreSorted(paths) {
			t.Fatalf("run %d: outcomes not sorted: %v", run, paths)
		}
		if first == nil {
			first = paths
			continue
		}
		for i := range paths {
			if paths[i] != first[i] {
				t.Fatalf("run %d: order differs: %v vs %v", run, paths, first)
			}
		}
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	t.Parallel()

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("expected empty result, got %+v", result.Stats)
	}
	if result.HasFailures() || result.HasChanges() {
		t.Error("empty run reported failures or changes")
	}
}

func TestRun_FailFast(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 50)
	for i := range 50 {
		names = append(names, string(rune('a'+i%26))+string(rune('0'+i/26))+".js")
	}
	dir := makeTree(t, names...)

	var processed atomic.Int32
	r := runner.New()
	r.Process = func(_ context.Context, _ string, _ sweep.PipelineOptions) (*sweep.PipelineResult, error) {
		processed.Add(1)
		return nil, errors.New("boom")
	}

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
		Jobs:       1,
		FailFast:   true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	// The first error stops dispatch; with one worker only files already
	// in flight can still land.
	if n := processed.Load(); n >= 50 {
		t.Errorf("processed %d files, want early stop", n)
	}
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "a.js", "b.js")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New()
	r.Process = func(ctx context.Context, path string, _ sweep.PipelineOptions) (*sweep.PipelineResult, error) {
		t.Error("Process called despite cancelled context")
		return nil, ctx.Err()
	}

	_, err := r.Run(ctx, runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err == nil {
		t.Fatal("Run() error = nil, want cancellation error")
	}
}
