package sweep

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// isStatementKind reports whether a node kind is a statement-level
// construct. Variable declarations are statements in all but name.
func isStatementKind(kind string) bool {
	switch kind {
	case "statement_block", "lexical_declaration", "variable_declaration":
		return true
	}
	return strings.HasSuffix(kind, "_statement")
}

// NearestStatement returns the closest statement ancestor of a node, or nil
// if none exists (e.g. a call inside a class field initializer).
func NearestStatement(n *sitter.Node) *sitter.Node {
	for anc := n.Parent(); anc != nil; anc = anc.Parent() {
		if isStatementKind(anc.Kind()) {
			return anc
		}
	}
	return nil
}

// ExactStatementCall reports whether stmt is an expression statement whose
// expression, after stripping redundant parentheses, is exactly call. When
// false the call is an operand of a larger expression (assignment, argument,
// condition, returned value) and must not be rewritten: its result may be
// consumed elsewhere.
func ExactStatementCall(stmt, call *sitter.Node) bool {
	if stmt == nil || stmt.Kind() != "expression_statement" {
		return false
	}
	expr := firstExpression(stmt)
	for expr != nil && expr.Kind() == "parenthesized_expression" {
		expr = firstExpression(expr)
	}
	return expr != nil && sameNode(expr, call)
}

// BareControlBody reports whether stmt is the un-braced body of a control
// construct, e.g. `if (cond) target.log(x);`. Such statements are still
// eligible, but removal must leave an empty statement in the slot so the
// construct stays syntactically valid.
func BareControlBody(stmt *sitter.Node) bool {
	parent := stmt.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "if_statement", "else_clause", "while_statement", "do_statement",
		"for_statement", "for_in_statement", "with_statement", "labeled_statement":
		return true
	default:
		return false
	}
}

// firstExpression returns the first named non-comment child.
func firstExpression(n *sitter.Node) *sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child != nil && child.Kind() != "comment" {
			return child
		}
	}
	return nil
}

// sameNode compares nodes by kind and byte range.
func sameNode(a, b *sitter.Node) bool {
	return a.Kind() == b.Kind() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
