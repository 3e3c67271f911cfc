// Package fix provides text edit types and range-safe application logic.
//
// The applier is a pure range-rewrite engine: it has no knowledge of syntax
// and is designed and tested independently of the match logic that produces
// the edits.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text. Empty for pure deletions.
	NewText string
}

// IsDelete returns true if the edit removes text without replacement.
func (e TextEdit) IsDelete() bool {
	return e.NewText == ""
}

// Replace builds an edit that replaces bytes [start, end) with newText.
func Replace(start, end int, newText string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: newText}
}

// Delete builds an edit that deletes bytes [start, end).
func Delete(start, end int) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end}
}
