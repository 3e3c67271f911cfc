package fix

import (
	"fmt"
	"strings"
)

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// DiffLineKind indicates the type of a diff line.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// DiffLine is a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk is one hunk of a unified diff.
type DiffHunk struct {
	OriginalStart int // 1-based
	OriginalCount int
	ModifiedStart int // 1-based
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a unified diff between original and modified content.
type Diff struct {
	Path      string
	Hunks     []DiffHunk
	Additions int
	Deletions int
}

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				builder.WriteString(" ")
			case DiffLineAdd:
				builder.WriteString("+")
			case DiffLineRemove:
				builder.WriteString("-")
			}
			builder.WriteString(line.Content)
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// splitLines splits content into lines, dropping the trailing empty element
// produced by a final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the full op sequence (context, add, remove) via LCS.
func diffOps(orig, mod []string) []DiffLine {
	lcs := longestCommonSubsequence(orig, mod)

	var ops []DiffLine
	oi, mi, li := 0, 0, 0
	for oi < len(orig) || mi < len(mod) {
		switch {
		case li < len(lcs) && oi < len(orig) && mi < len(mod) &&
			orig[oi] == lcs[li] && mod[mi] == lcs[li]:
			ops = append(ops, DiffLine{Kind: DiffLineContext, Content: orig[oi]})
			oi++
			mi++
			li++
		case oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]):
			ops = append(ops, DiffLine{Kind: DiffLineRemove, Content: orig[oi]})
			oi++
		default:
			ops = append(ops, DiffLine{Kind: DiffLineAdd, Content: mod[mi]})
			mi++
		}
	}
	return ops
}

// groupHunks groups ops into hunks with surrounding context.
func groupHunks(ops []DiffLine) []DiffHunk {
	// Locate change regions (runs of non-context ops).
	type span struct{ start, end int }
	var spans []span
	inChange := false
	start := 0
	for i, op := range ops {
		if op.Kind != DiffLineContext {
			if !inChange {
				start = i
				inChange = true
			}
		} else if inChange {
			spans = append(spans, span{start, i})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{start, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	// Merge spans whose context windows touch.
	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start-last.end <= contextLines*2 {
			last.end = s.end
		} else {
			merged = append(merged, s)
		}
	}

	hunks := make([]DiffHunk, 0, len(merged))
	for _, s := range merged {
		lo := max(0, s.start-contextLines)
		hi := min(len(ops), s.end+contextLines)

		hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
		for i := range lo {
			if ops[i].Kind != DiffLineAdd {
				hunk.OriginalStart++
			}
			if ops[i].Kind != DiffLineRemove {
				hunk.ModifiedStart++
			}
		}
		for i := lo; i < hi; i++ {
			hunk.Lines = append(hunk.Lines, ops[i])
			switch ops[i].Kind {
			case DiffLineContext:
				hunk.OriginalCount++
				hunk.ModifiedCount++
			case DiffLineRemove:
				hunk.OriginalCount++
			case DiffLineAdd:
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)
	}
	return hunks
}

// longestCommonSubsequence computes the LCS of two string slices.
func longestCommonSubsequence(orig, mod []string) []string {
	origLen, modLen := len(orig), len(mod)
	if origLen == 0 || modLen == 0 {
		return nil
	}

	dp := make([][]int, origLen+1)
	for idx := range dp {
		dp[idx] = make([]int, modLen+1)
	}
	for row := 1; row <= origLen; row++ {
		for col := 1; col <= modLen; col++ {
			if orig[row-1] == mod[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	lcsLen := dp[origLen][modLen]
	if lcsLen == 0 {
		return nil
	}

	lcs := make([]string, lcsLen)
	row, col, idx := origLen, modLen, lcsLen-1
	for row > 0 && col > 0 {
		switch {
		case orig[row-1] == mod[col-1]:
			lcs[idx] = orig[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}
	return lcs
}
