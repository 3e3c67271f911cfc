package sweep

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/yaklabco/logsweep/pkg/jsparse"
)

// ScanResult is the outcome of scanning one parsed file.
type ScanResult struct {
	// Matches are the statements eligible for rewriting, ordered by start
	// offset and free of duplicates.
	Matches []StatementMatch

	// Skipped counts invocations of the target that were recognised but
	// left alone because they are embedded in a larger statement.
	Skipped int
}

// ScanSnapshot finds every complete standalone statement in the snapshot
// that invokes the target object. Invocations nested inside larger
// expressions are counted but never matched; shadowed names never match.
func ScanSnapshot(snap *jsparse.FileSnapshot, target string) ScanResult {
	return Scan(snap.Root(), snap.Content, target)
}

// Scan walks the subtree rooted at node and collects statement matches for
// invocations of target.
func Scan(root *sitter.Node, src []byte, target string) ScanResult {
	var res ScanResult
	set := newMatchSet()

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Kind() == "call_expression" {
			if inv, ok := ClassifyInvocation(n, target, src); ok {
				res.Skipped += collect(set, inv)
			}
		}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)

	res.Matches = set.list
	return res
}

// collect resolves an invocation to its statement boundary and records the
// match. It returns 1 when the invocation had to be skipped because its
// enclosing statement is not the bare call.
func collect(set *matchSet, inv Invocation) int {
	stmt := NearestStatement(inv.Call)
	if stmt == nil {
		return 1
	}
	if !ExactStatementCall(stmt, inv.Call) {
		return 1
	}
	m := StatementMatch{
		Start:    int(stmt.StartByte()),
		End:      int(stmt.EndByte()),
		BareBody: BareControlBody(stmt),
	}
	// Two member accesses on the same call collapse to one range; the
	// duplicate is not a skip.
	set.add(m)
	return 0
}
