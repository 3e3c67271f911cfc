package jsparse

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Language identifies a supported source dialect.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
)

// langMap maps language identifiers to tree-sitter grammar objects.
//
//nolint:gochecknoglobals // Read-only after init.
var langMap = map[Language]*sitter.Language{}

func init() {
	RegisterLanguage(LangJavaScript, sitter.NewLanguage(tree_sitter_javascript.Language()))
	RegisterLanguage(LangTypeScript, sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()))
	RegisterLanguage(LangTSX, sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()))
}

// RegisterLanguage registers a tree-sitter grammar for a language identifier.
func RegisterLanguage(lang Language, tsLang *sitter.Language) {
	langMap[lang] = tsLang
}

// GetLanguage returns the registered tree-sitter grammar for a language.
func GetLanguage(lang Language) (*sitter.Language, error) {
	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}
	return tsLang, nil
}

// LanguageForPath picks the dialect for a file path by extension.
// The JavaScript grammar also covers JSX, so anything that is not
// TypeScript falls back to it.
func LanguageForPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return LangTypeScript
	case ".tsx":
		return LangTSX
	default:
		return LangJavaScript
	}
}
