package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarair9/translation-video-generator/internal/types"
)

func TestParse_Valid(t *testing.T) {
	segs, err := Parse([]byte(`[
		{"en": "Hi", "ur": "ہیلو"},
		{"en": "Water", "ur": "پانی", "pause_after": 0.5, "min_duration": 3}
	]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].PauseAfter != 0 || segs[0].MinDuration != 0 {
		t.Fatalf("expected zero defaults, got %+v", segs[0])
	}
	if segs[1].PauseAfter != 0.5 || segs[1].MinDuration != 3 {
		t.Fatalf("overrides not parsed: %+v", segs[1])
	}
}

func TestParse_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty array", `[]`},
		{"not an array", `{"en": "Hi"}`},
		{"broken json", `[{`},
		{"entry missing both languages", `[{"pause_after": 1}]`},
		{"negative pause", `[{"en": "Hi", "ur": "x", "pause_after": -1}]`},
		{"negative min duration", `[{"en": "Hi", "ur": "x", "min_duration": -0.1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			var inputErr *types.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputError, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var inputErr *types.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`[{"en": "Hi", "ur": "ہیلو"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	segs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(segs) != 1 || segs[0].EN != "Hi" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}
