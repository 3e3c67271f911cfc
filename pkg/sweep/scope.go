package sweep

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// The grammar renamed "function" to "function_expression" in newer releases;
// both are accepted so the walk works against either.
func isFunctionLike(kind string) bool {
	switch kind {
	case "function_declaration", "function_expression", "function",
		"generator_function", "generator_function_declaration",
		"arrow_function", "method_definition":
		return true
	default:
		return false
	}
}

// HasBinding reports whether name is bound by a lexical declaration in any
// scope enclosing node: function parameters, let/const/var declarations,
// function and class names, import clauses, catch parameters, and loop
// heads. var declarations hoist to the nearest function (or program) scope,
// so function-like scopes are scanned for them in full, without descending
// into nested functions.
func HasBinding(node *sitter.Node, name string, src []byte) bool {
	for scope := node.Parent(); scope != nil; scope = scope.Parent() {
		kind := scope.Kind()
		switch {
		case isFunctionLike(kind):
			if functionScopeBinds(scope, name, src) {
				return true
			}
		case kind == "program":
			if blockBinds(scope, name, src) || hoistedBinds(scope, name, src) {
				return true
			}
		case kind == "statement_block":
			if blockBinds(scope, name, src) {
				return true
			}
		case kind == "for_statement":
			if declarationBinds(scope.ChildByFieldName("initializer"), name, src) {
				return true
			}
		case kind == "for_in_statement":
			if left := scope.ChildByFieldName("left"); left != nil {
				if declarationBinds(left, name, src) || patternBinds(left, name, src) {
					return true
				}
			}
		case kind == "catch_clause":
			if patternBinds(scope.ChildByFieldName("parameter"), name, src) {
				return true
			}
		}
	}
	return false
}

// functionScopeBinds checks a function-like scope: its own name, its
// parameters, and any var/function declarations hoisted from its body.
func functionScopeBinds(fn *sitter.Node, name string, src []byte) bool {
	if n := fn.ChildByFieldName("name"); n != nil && n.Utf8Text(src) == name {
		return true
	}
	if params := fn.ChildByFieldName("parameters"); params != nil && patternBinds(params, name, src) {
		return true
	}
	// Arrow functions with a single bare parameter use the "parameter" field.
	if param := fn.ChildByFieldName("parameter"); param != nil && patternBinds(param, name, src) {
		return true
	}
	return hoistedBinds(fn.ChildByFieldName("body"), name, src)
}

// blockBinds checks declarations that appear as direct statements of a
// block or the program: let/const/var, function, class, and imports.
func blockBinds(block *sitter.Node, name string, src []byte) bool {
	for i := uint(0); i < block.NamedChildCount(); i++ {
		child := block.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "lexical_declaration", "variable_declaration":
			if declarationBinds(child, name, src) {
				return true
			}
		case "function_declaration", "generator_function_declaration", "class_declaration":
			if n := child.ChildByFieldName("name"); n != nil && n.Utf8Text(src) == name {
				return true
			}
		case "import_statement":
			if importBinds(child, name, src) {
				return true
			}
		}
	}
	return false
}

// hoistedBinds scans a subtree for var and function declarations that hoist
// to the enclosing function or program scope. Nested function bodies are
// their own hoisting targets and are not entered.
func hoistedBinds(n *sitter.Node, name string, src []byte) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case "variable_declaration":
		if declarationBinds(n, name, src) {
			return true
		}
	case "function_declaration", "generator_function_declaration":
		if nn := n.ChildByFieldName("name"); nn != nil && nn.Utf8Text(src) == name {
			return true
		}
		return false
	}
	if isFunctionLike(n.Kind()) {
		return false
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if hoistedBinds(n.NamedChild(i), name, src) {
			return true
		}
	}
	return false
}

// declarationBinds checks the declarators of a lexical or var declaration.
func declarationBinds(decl *sitter.Node, name string, src []byte) bool {
	if decl == nil {
		return false
	}
	switch decl.Kind() {
	case "lexical_declaration", "variable_declaration":
		for i := uint(0); i < decl.NamedChildCount(); i++ {
			child := decl.NamedChild(i)
			if child != nil && child.Kind() == "variable_declarator" &&
				patternBinds(child.ChildByFieldName("name"), name, src) {
				return true
			}
		}
	}
	return false
}

// patternBinds reports whether a binding pattern introduces name. It
// recurses through destructuring forms, taking only binding positions:
// default values, property keys, and type annotations never bind.
func patternBinds(pattern *sitter.Node, name string, src []byte) bool {
	if pattern == nil {
		return false
	}
	switch pattern.Kind() {
	case "identifier", "shorthand_property_identifier_pattern":
		return pattern.Utf8Text(src) == name
	case "assignment_pattern", "object_assignment_pattern":
		return patternBinds(pattern.ChildByFieldName("left"), name, src)
	case "pair_pattern":
		return patternBinds(pattern.ChildByFieldName("value"), name, src)
	case "required_parameter", "optional_parameter":
		// TypeScript parameter wrappers.
		return patternBinds(pattern.ChildByFieldName("pattern"), name, src)
	case "formal_parameters", "object_pattern", "array_pattern", "rest_pattern":
		for i := uint(0); i < pattern.NamedChildCount(); i++ {
			if patternBinds(pattern.NamedChild(i), name, src) {
				return true
			}
		}
	}
	return false
}

// importBinds checks the local names introduced by an import statement.
func importBinds(stmt *sitter.Node, name string, src []byte) bool {
	for i := uint(0); i < stmt.NamedChildCount(); i++ {
		clause := stmt.NamedChild(i)
		if clause == nil || clause.Kind() != "import_clause" {
			continue
		}
		if importClauseBinds(clause, name, src) {
			return true
		}
	}
	return false
}

func importClauseBinds(clause *sitter.Node, name string, src []byte) bool {
	for i := uint(0); i < clause.NamedChildCount(); i++ {
		child := clause.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier":
			// Default import.
			if child.Utf8Text(src) == name {
				return true
			}
		case "namespace_import":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				if ns := child.NamedChild(j); ns != nil && ns.Kind() == "identifier" &&
					ns.Utf8Text(src) == name {
					return true
				}
			}
		case "named_imports":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				spec := child.NamedChild(j)
				if spec == nil || spec.Kind() != "import_specifier" {
					continue
				}
				// The local name is the alias when present, the
				// imported name otherwise.
				local := spec.ChildByFieldName("alias")
				if local == nil {
					local = spec.ChildByFieldName("name")
				}
				if local != nil && local.Utf8Text(src) == name {
					return true
				}
			}
		}
	}
	return false
}
