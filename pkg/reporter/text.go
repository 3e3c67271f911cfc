package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/logsweep/internal/ui/pretty"
	"github.com/yaklabco/logsweep/pkg/fix"
	"github.com/yaklabco/logsweep/pkg/runner"
	"github.com/yaklabco/logsweep/pkg/sweep"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	bw        *bufio.Writer
	termWidth int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(colorEnabled),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
		termWidth: pretty.TerminalWidth(opts.Writer, 0),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to sweep."))
		}
		return 0, nil
	}

	var modified int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		res := file.Result
		if res == nil {
			continue
		}

		if res.Skipped && res.SkipReason == sweep.SkipSyntaxError {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Warning.Render("skipped (syntax errors)"),
			)
			continue
		}

		if !res.Modified {
			continue
		}

		modified++
		r.writeFileLine(res)

		if (r.opts.ShowDiffs || r.opts.DryRun) && res.Diff != nil {
			r.writeDiff(res.Diff)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.DryRun))
	}

	return modified, nil
}

// writeFileLine writes the one-line status for a rewritten file.
func (r *TextReporter) writeFileLine(res *sweep.PipelineResult) {
	verb := "swept"
	if r.opts.DryRun {
		verb = "would sweep"
	}

	stmtWord := "statements"
	if res.StatementsChanged == 1 {
		stmtWord = "statement"
	}

	line := fmt.Sprintf("%s: %s",
		r.styles.FilePath.Render(r.displayPath(res.Path)),
		fmt.Sprintf("%s %d %s", verb, res.StatementsChanged, stmtWord),
	)
	if res.StatementsSkipped > 0 {
		line += r.styles.Dim.Render(
			fmt.Sprintf(" (%d embedded left alone)", res.StatementsSkipped))
	}
	if res.BackupCreated {
		line += r.styles.Dim.Render(" [backup created]")
	}

	fmt.Fprintln(r.bw, line)
}

// writeDiff outputs a single file's diff with per-line coloring.
// Minified sources produce enormous lines; truncate to the terminal width
// so the diff stays readable.
func (r *TextReporter) writeDiff(diff *fix.Diff) {
	for _, line := range strings.Split(strings.TrimRight(diff.String(), "\n"), "\n") {
		if r.termWidth > 4 && len(line) > r.termWidth {
			line = line[:r.termWidth-3] + "..."
		}
		var styled string
		switch {
		case strings.HasPrefix(line, "@@"):
			styled = r.styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "+"):
			styled = r.styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "-"):
			styled = r.styles.DiffRemove.Render(line)
		default:
			styled = r.styles.DiffContext.Render(line)
		}
		fmt.Fprintln(r.bw, styled)
	}
	fmt.Fprintln(r.bw)
}

// displayPath makes the path relative to WorkingDir when possible.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
