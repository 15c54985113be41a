package ffmpeg

import (
	"strings"
	"testing"
)

func TestParseProbeDuration(t *testing.T) {
	got, err := parseProbeDuration(`{"format": {"duration": "12.345000", "size": "1024"}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 12.345 {
		t.Fatalf("duration = %v, want 12.345", got)
	}
}

func TestParseProbeDuration_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"not json":     "garbage",
		"no duration":  `{"format": {}}`,
		"bad duration": `{"format": {"duration": "n/a"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := parseProbeDuration(in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOffsetMillis(t *testing.T) {
	tests := map[float64]int{
		0:      0,
		1.2:    1200,
		0.0004: 0,
		2.7185: 2719,
	}
	for in, want := range tests {
		if got := offsetMillis(in); got != want {
			t.Fatalf("offsetMillis(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestFmtSeconds(t *testing.T) {
	if got := fmtSeconds(2.4); got != "2.400" {
		t.Fatalf("fmtSeconds(2.4) = %q", got)
	}
	if got := fmtSeconds(0); got != "0.000" {
		t.Fatalf("fmtSeconds(0) = %q", got)
	}
}

func TestEscapeConcatPath(t *testing.T) {
	got := escapeConcatPath("/tmp/it's here/seg.mp4")
	if !strings.Contains(got, `'\''`) {
		t.Fatalf("single quote not escaped: %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	a := New(Options{})
	if a.opts.Width != 1080 || a.opts.Height != 1920 || a.opts.FPS != 24 {
		t.Fatalf("unexpected defaults: %+v", a.opts)
	}
}
