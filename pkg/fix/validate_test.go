package fix_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/logsweep/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		wantErr    bool
	}{
		{
			name:       "no edits",
			edits:      nil,
			contentLen: 10,
			wantErr:    false,
		},
		{
			name:       "valid edit",
			edits:      []fix.TextEdit{fix.Replace(0, 5, "x")},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name:       "edit spanning whole content",
			edits:      []fix.TextEdit{fix.Delete(0, 10)},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name:       "negative start",
			edits:      []fix.TextEdit{{StartOffset: -1, EndOffset: 5}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end before start",
			edits:      []fix.TextEdit{{StartOffset: 5, EndOffset: 3}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end past content",
			edits:      []fix.TextEdit{fix.Delete(0, 11)},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, tt.contentLen)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEdits() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts out-of-order edits", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			fix.Delete(10, 15),
			fix.Delete(0, 5),
		}

		sorted, err := fix.PrepareEdits(edits, 20)
		if err != nil {
			t.Fatalf("PrepareEdits() error = %v", err)
		}

		if sorted[0].StartOffset != 0 || sorted[1].StartOffset != 10 {
			t.Errorf("PrepareEdits() order = %v", sorted)
		}
		// Input order must be preserved.
		if edits[0].StartOffset != 10 {
			t.Error("PrepareEdits() mutated input slice")
		}
	})

	t.Run("detects overlap", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			fix.Delete(0, 6),
			fix.Delete(5, 10),
		}

		_, err := fix.PrepareEdits(edits, 20)

		var conflict *fix.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("PrepareEdits() error = %v, want ConflictError", err)
		}
	})

	t.Run("adjacent edits do not conflict", func(t *testing.T) {
		t.Parallel()

		edits := []fix.TextEdit{
			fix.Delete(0, 5),
			fix.Delete(5, 10),
		}

		if _, err := fix.PrepareEdits(edits, 20); err != nil {
			t.Errorf("PrepareEdits() error = %v", err)
		}
	})
}
