package sweep

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Invocation is an eligible call on the target object. Ordinary and
// optional-chained calls are one concept; the chain style is recorded
// rather than classified separately.
type Invocation struct {
	// Call is the call_expression node.
	Call *sitter.Node

	// CalleeIsOptional is true for `target?.method(...)` and
	// `target.method?.(...)` forms.
	CalleeIsOptional bool
}

// ClassifyInvocation decides whether a call expression invokes a method on
// the unshadowed target object. Eligible iff the callee is a (possibly
// optional) member access whose object is the bare identifier target, and
// that identifier resolves to the ambient global rather than any enclosing
// declaration. Pure predicate, no side effects.
func ClassifyInvocation(call *sitter.Node, target string, src []byte) (Invocation, bool) {
	if call == nil || call.Kind() != "call_expression" {
		return Invocation{}, false
	}

	callee := call.ChildByFieldName("function")
	if callee == nil || callee.Kind() != "member_expression" {
		return Invocation{}, false
	}

	obj := callee.ChildByFieldName("object")
	if obj == nil || obj.Kind() != "identifier" || obj.Utf8Text(src) != target {
		return Invocation{}, false
	}

	// A local declaration of the same name means this is user code with an
	// unrelated purpose, never the global diagnostic object.
	if HasBinding(obj, target, src) {
		return Invocation{}, false
	}

	return Invocation{
		Call:             call,
		CalleeIsOptional: hasOptionalChain(callee) || hasOptionalChain(call),
	}, true
}

// hasOptionalChain reports whether a node carries a `?.` token.
func hasOptionalChain(n *sitter.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && child.Kind() == "optional_chain" {
			return true
		}
	}
	return false
}
