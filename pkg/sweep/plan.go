package sweep

import (
	"strings"

	"github.com/yaklabco/logsweep/pkg/fix"
)

// PlanEdits converts matches into text edits. In comment mode each matched
// statement is rewritten in place as line comments; otherwise the statement
// is removed together with enough surrounding whitespace that neither a
// blank line nor dangling indentation remains.
func PlanEdits(src []byte, matches []StatementMatch, comment bool) []fix.TextEdit {
	if len(matches) == 0 {
		return nil
	}
	edits := make([]fix.TextEdit, 0, len(matches))
	for _, m := range matches {
		if comment {
			edits = append(edits, commentEdit(src, m))
		} else {
			edits = append(edits, removalEdit(src, m))
		}
	}
	return edits
}

func commentEdit(src []byte, m StatementMatch) fix.TextEdit {
	text := CommentText(string(src[m.Start:m.End]))
	if m.BareBody {
		// Keep the control construct's body slot occupied: an empty
		// statement ahead of the comment, so the next real statement
		// does not silently become the body.
		text = "; " + text
	}
	return fix.Replace(m.Start, m.End, text)
}

// CommentText rewrites a statement's exact text into line comments. Every
// non-blank line gets a "// " prefix immediately after its existing leading
// whitespace, so indentation is preserved; blank lines pass through
// unchanged. Lines are re-joined with whichever newline style appears first
// in the captured text, defaulting to "\n".
func CommentText(text string) string {
	nl := detectNewline(text)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			lines[i] = line
			continue
		}
		indent := leadingIndent(line)
		lines[i] = indent + "// " + line[len(indent):]
	}
	return strings.Join(lines, nl)
}

func removalEdit(src []byte, m StatementMatch) fix.TextEdit {
	if m.BareBody {
		// The statement is the sole body of a control construct; deleting
		// it outright would leave the construct without a body. Replace
		// with an empty statement instead.
		return fix.Replace(m.Start, m.End, ";")
	}
	start, end := expandRemoval(src, m.Start, m.End)
	return fix.Delete(start, end)
}

// expandRemoval widens a removal range over adjacent whitespace so the
// statement's line disappears cleanly:
//
//  1. If the statement is alone on its line and followed by optional
//     horizontal whitespace and a line break, the removal covers the whole
//     line: its leading indentation through the trailing break.
//  2. If it is alone on its line but ends the file without a break, the
//     removal instead extends backward through the leading whitespace and
//     the preceding break, so no blank line is left behind.
//  3. A statement sharing its line with other content is removed exactly,
//     never touching neighbouring bytes.
//
// At most one line break is ever consumed, so unrelated adjacent content
// survives untouched.
func expandRemoval(src []byte, start, end int) (int, int) {
	lineStart, alone := indentStart(src, start)

	if alone {
		if afterBreak, ok := forwardThroughBreak(src, end); ok {
			return lineStart, afterBreak
		}
		if lineStart == 0 {
			return 0, end
		}
		// Consume the preceding break along with the indentation.
		breakStart := lineStart - 1
		if src[breakStart] == '\n' && breakStart > 0 && src[breakStart-1] == '\r' {
			breakStart--
		}
		return breakStart, end
	}

	return start, end
}

// indentStart scans backward from offset over horizontal whitespace.
// It returns the scan position and whether the statement starts its line
// (only whitespace between a line break, or the file start, and offset).
func indentStart(src []byte, offset int) (int, bool) {
	i := offset
	for i > 0 && isHorizontalWS(src[i-1]) {
		i--
	}
	if i == 0 || src[i-1] == '\n' {
		return i, true
	}
	return i, false
}

// forwardThroughBreak scans forward from offset over horizontal whitespace
// and, if a line break follows, returns the position just past it.
func forwardThroughBreak(src []byte, offset int) (int, bool) {
	i := offset
	for i < len(src) && isHorizontalWS(src[i]) {
		i++
	}
	switch {
	case i < len(src) && src[i] == '\n':
		return i + 1, true
	case i+1 < len(src) && src[i] == '\r' && src[i+1] == '\n':
		return i + 2, true
	case i < len(src) && src[i] == '\r':
		return i + 1, true
	default:
		return 0, false
	}
}

func isHorizontalWS(b byte) bool {
	return b == ' ' || b == '\t'
}

// detectNewline returns the newline style of the first line break in text,
// or "\n" if there is none. Line-ending style is a per-segment property;
// a file may mix styles, so only the captured text decides.
func detectNewline(text string) string {
	idx := strings.IndexByte(text, '\n')
	if idx > 0 && text[idx-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func leadingIndent(line string) string {
	i := 0
	for i < len(line) && isHorizontalWS(line[i]) {
		i++
	}
	return line[:i]
}
