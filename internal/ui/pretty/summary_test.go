package pretty_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/logsweep/internal/ui/pretty"
	"github.com/yaklabco/logsweep/pkg/runner"
	"github.com/yaklabco/logsweep/pkg/sweep"
)

func plainStyles() *pretty.Styles {
	return pretty.NewStyles(false)
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stats    runner.Stats
		dryRun   bool
		contains []string
	}{
		{
			name:     "nothing to sweep",
			stats:    runner.Stats{FilesProcessed: 4},
			contains: []string{"Nothing to sweep", "(4 files checked)"},
		},
		{
			name: "singular forms",
			stats: runner.Stats{
				FilesModified:     1,
				StatementsChanged: 1,
			},
			contains: []string{"swept 1 statement in 1 file"},
		},
		{
			name: "plural with embedded calls",
			stats: runner.Stats{
				FilesModified:     3,
				StatementsChanged: 17,
				StatementsSkipped: 2,
			},
			contains: []string{
				"swept 17 statements in 3 files",
				"2 embedded calls left alone",
			},
		},
		{
			name: "dry run wording",
			stats: runner.Stats{
				FilesModified:     2,
				StatementsChanged: 5,
			},
			dryRun:   true,
			contains: []string{"would sweep 5 statements in 2 files"},
		},
		{
			name: "errors are surfaced",
			stats: runner.Stats{
				FilesModified:     1,
				StatementsChanged: 1,
				FilesErrored:      2,
			},
			contains: []string{"2 files errored"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := plainStyles().FormatSummaryOneLine(tt.stats, tt.dryRun)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("summary %q missing %q", got, want)
				}
			}
			if !strings.HasSuffix(got, "\n") {
				t.Error("summary should end with a newline")
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	stats := runner.Stats{
		FilesProcessed:    10,
		FilesModified:     3,
		FilesSkipped:      1,
		SkippedByReason:   map[sweep.SkipReason]int{sweep.SkipSyntaxError: 1},
		StatementsChanged: 12,
		StatementsSkipped: 4,
		BackupsCreated:    3,
	}

	got := plainStyles().FormatSummary(stats, false)

	for _, want := range []string{
		"Summary",
		"Files checked:       10",
		"Files rewritten:     3",
		"Syntax errors:       1",
		"Statements swept:    12",
		"Embedded calls kept: 4",
		"Backups created:     3",
		"Sweep complete",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}

	dry := plainStyles().FormatSummary(stats, true)
	if !strings.Contains(dry, "Files to rewrite:    3") ||
		!strings.Contains(dry, "Dry run, no files written") {
		t.Errorf("dry-run summary wording wrong:\n%s", dry)
	}
}
