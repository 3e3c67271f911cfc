package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/logsweep/pkg/runner"
	"github.com/yaklabco/logsweep/pkg/sweep"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "swept 17 statements in 3 files (2 embedded calls left alone)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	if stats.StatementsChanged == 0 {
		msg := s.Success.Render("Nothing to sweep") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.StatementsSkipped > 0 {
			msg += s.Dim.Render(fmt.Sprintf(", %d embedded calls left alone", stats.StatementsSkipped))
		}
		return msg + "\n"
	}

	fileWord := wordFiles
	if stats.FilesModified == 1 {
		fileWord = wordFile
	}

	stmtWord := "statements"
	if stats.StatementsChanged == 1 {
		stmtWord = "statement"
	}

	verb := "swept"
	if dryRun {
		verb = "would sweep"
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("%s %d %s in %d %s",
			verb, stats.StatementsChanged, stmtWord, stats.FilesModified, fileWord)),
	}

	if stats.StatementsSkipped > 0 {
		parts = append(parts, s.Dim.Render(
			fmt.Sprintf("%d embedded calls left alone", stats.StatementsSkipped)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(
			fmt.Sprintf("%d files errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesModified > 0 {
		label := "  Files rewritten:     "
		if dryRun {
			label = "  Files to rewrite:    "
		}
		builder.WriteString(label +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	if n := stats.SkippedByReason[sweep.SkipSyntaxError]; n > 0 {
		builder.WriteString("  Syntax errors:       " +
			s.Warning.Render(strconv.Itoa(n)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:       " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Statements swept:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.StatementsChanged)) + "\n")

	if stats.StatementsSkipped > 0 {
		builder.WriteString("  Embedded calls kept: " +
			s.SummaryValue.Render(strconv.Itoa(stats.StatementsSkipped)) + "\n")
	}

	if stats.BackupsCreated > 0 {
		builder.WriteString("  Backups created:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.BackupsCreated)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Sweep finished with errors"))
	case dryRun && stats.FilesModified > 0:
		builder.WriteString(s.Warning.Render("Dry run, no files written"))
	default:
		builder.WriteString(s.Success.Render("Sweep complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
