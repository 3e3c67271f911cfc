package fix

import "bytes"

// ApplyEdits applies a sorted, validated slice of edits to content and
// returns the modified content. Edits must be prepared with PrepareEdits
// before calling.
//
// Application is a single forward pass over the original bytes: each edit
// copies the untouched span before it and then its replacement text, so no
// edit's length change can invalidate the offsets of any other edit. This is
// equivalent to applying edits in descending start order, without rescanning.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
