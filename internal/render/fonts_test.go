package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/jarair9/translation-video-generator/internal/types"
)

// writeTestFonts materializes the embedded Go font as both script fonts so
// tests can exercise real face metrics without shipping font binaries.
func writeTestFonts(t *testing.T) (enPath, urPath string) {
	t.Helper()
	dir := t.TempDir()
	enPath = filepath.Join(dir, "en.ttf")
	urPath = filepath.Join(dir, "ur.ttf")
	for _, p := range []string{enPath, urPath} {
		if err := os.WriteFile(p, goregular.TTF, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return enPath, urPath
}

func TestLoadFontSet(t *testing.T) {
	en, ur := writeTestFonts(t)
	fs, err := LoadFontSet(en, ur)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	face := fs.ENFace(54)
	if face == nil {
		t.Fatal("expected a usable face")
	}
	f := newLatinFont(face)
	if f.Width("Hello") <= 0 || f.LineHeight() <= 0 {
		t.Fatalf("degenerate metrics: w=%v h=%v", f.Width("Hello"), f.LineHeight())
	}
}

func TestLoadFontSet_MissingFontFailsLoudly(t *testing.T) {
	en, _ := writeTestFonts(t)
	missing := filepath.Join(t.TempDir(), "nastaliq.ttf")

	_, err := LoadFontSet(en, missing)
	var fontErr *types.FontUnavailableError
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected FontUnavailableError, got %v", err)
	}
	if fontErr.Path != missing {
		t.Fatalf("error should name the requested path, got %q", fontErr.Path)
	}
}

func TestLoadFontSet_GarbageFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFontSet(bad, bad)
	var fontErr *types.FontUnavailableError
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected FontUnavailableError, got %v", err)
	}
}
