// Package langdetect guards the rewriter against files whose extension
// lies about their content. It uses go-enry to confirm that a candidate
// file actually contains JavaScript or TypeScript before it is parsed.
package langdetect

import (
	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/logsweep/pkg/jsparse"
)

// scriptLanguages maps go-enry language names onto the dialects the
// parser understands.
var scriptLanguages = map[string]jsparse.Language{
	"JavaScript": jsparse.LangJavaScript,
	"JSX":        jsparse.LangJavaScript,
	"TypeScript": jsparse.LangTypeScript,
	"TSX":        jsparse.LangTSX,
}

// DetectDialect determines the dialect of a file from its name and
// content. It returns false when the file is not JavaScript or
// TypeScript, in which case it must not be rewritten. Binary content
// is always refused regardless of extension.
func DetectDialect(path string, content []byte) (jsparse.Language, bool) {
	if enry.IsBinary(content) {
		return jsparse.LangJavaScript, false
	}

	langs := enry.GetLanguages(path, content)
	for _, lang := range langs {
		if dialect, ok := scriptLanguages[lang]; ok {
			return dialect, true
		}
	}

	// Vendored or generated content is still rewritable when go-enry
	// recognises the language; it is only unknown languages we refuse.
	return jsparse.LangJavaScript, false
}

// IsScriptFile reports whether the file should enter the rewrite
// pipeline at all.
func IsScriptFile(path string, content []byte) bool {
	_, ok := DetectDialect(path, content)
	return ok
}
