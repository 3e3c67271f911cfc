// Package jsparse wraps tree-sitter parsing of JavaScript and TypeScript
// sources into immutable per-file snapshots.
package jsparse

import (
	"context"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// FileSnapshot is a parsed source file. The snapshot owns its tree; callers
// must Close it when done.
type FileSnapshot struct {
	// Path is the logical file path (for diagnostics; never used for I/O).
	Path string

	// Content is the raw source bytes. Node offsets index into this slice.
	Content []byte

	// Language is the dialect the file was parsed as.
	Language Language

	tree *sitter.Tree
}

// Root returns the root syntax node.
func (s *FileSnapshot) Root() *sitter.Node {
	return s.tree.RootNode()
}

// HasSyntaxError reports whether the parse tree contains error nodes.
// Files with syntax errors are excluded from rewriting entirely.
func (s *FileSnapshot) HasSyntaxError() bool {
	return s.tree.RootNode().HasError()
}

// Close releases the underlying tree-sitter tree.
func (s *FileSnapshot) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// Text returns the source text of a node.
func (s *FileSnapshot) Text(n *sitter.Node) string {
	return n.Utf8Text(s.Content)
}

// Parse parses content as the dialect chosen for path.
//
// A fresh tree-sitter parser is created per call, so Parse is safe for
// concurrent use across worker goroutines.
func Parse(ctx context.Context, path string, content []byte) (*FileSnapshot, error) {
	return ParseAs(ctx, path, content, LanguageForPath(path))
}

// ParseAs parses content as an explicit dialect.
func ParseAs(ctx context.Context, path string, content []byte, lang Language) (*FileSnapshot, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("parse %s: %w", path, ctx.Err())
	default:
	}

	tsLang, err := GetLanguage(lang)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tsLang); err != nil {
		return nil, fmt.Errorf("parse %s: set language: %w", path, err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: tree-sitter returned no tree", path)
	}

	return &FileSnapshot{
		Path:     path,
		Content:  content,
		Language: lang,
		tree:     tree,
	}, nil
}
