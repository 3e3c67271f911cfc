package fix_test

import (
	"testing"

	"github.com/yaklabco/logsweep/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "empty edits returns original",
			content: "hello world",
			edits:   nil,
			want:    "hello world",
		},
		{
			name:    "single replacement",
			content: "hello world",
			edits: []fix.TextEdit{
				fix.Replace(0, 5, "hi"),
			},
			want: "hi world",
		},
		{
			name:    "single deletion",
			content: "hello world",
			edits: []fix.TextEdit{
				fix.Delete(5, 11),
			},
			want: "hello",
		},
		{
			name:    "multiple non-overlapping edits",
			content: "hello world",
			edits: []fix.TextEdit{
				fix.Replace(0, 5, "hi"),
				fix.Replace(6, 11, "there"),
			},
			want: "hi there",
		},
		{
			name:    "adjacent edits",
			content: "abcdef",
			edits: []fix.TextEdit{
				fix.Replace(0, 2, "XX"),
				fix.Replace(2, 4, "YY"),
				fix.Replace(4, 6, "ZZ"),
			},
			want: "XXYYZZ",
		},
		{
			name:    "delete all content",
			content: "hello",
			edits: []fix.TextEdit{
				fix.Delete(0, 5),
			},
			want: "",
		},
		{
			name:    "delete whole lines",
			content: "a\nb\nc\n",
			edits: []fix.TextEdit{
				fix.Delete(2, 4),
			},
			want: "a\nc\n",
		},
		{
			name:    "replacement grows content",
			content: "if (x) y();",
			edits: []fix.TextEdit{
				fix.Replace(7, 11, "; // y();"),
			},
			want: "if (x) ; // y();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := fix.ApplyEdits([]byte(tt.content), tt.edits)

			if string(result) != tt.want {
				t.Errorf("ApplyEdits() = %q, want %q", string(result), tt.want)
			}
		})
	}
}

func TestApplyEdits_PreservesInputSlice(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	original := make([]byte, len(content))
	copy(original, content)

	_ = fix.ApplyEdits(content, []fix.TextEdit{fix.Replace(0, 5, "hi")})

	if string(content) != string(original) {
		t.Errorf("input slice mutated: %q, want %q", content, original)
	}
}
