package render

import (
	"image/color"
	"testing"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/types"
)

func testRenderer(t *testing.T, w, h int) *Renderer {
	t.Helper()
	en, ur := writeTestFonts(t)
	fs, err := LoadFontSet(en, ur)
	if err != nil {
		t.Fatal(err)
	}
	return NewRenderer(fs, config.DefaultCaptionStyle(), w, h)
}

func TestRender_FixedDimensionsAndOpaque(t *testing.T) {
	const w, h = 270, 480
	r := testRenderer(t, w, h)

	bg, err := PrepareBackground("", w, h)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.Render(bg, types.ScriptSegment{EN: "Hello", UR: "ہیلو"})

	if frame.Bounds().Dx() != w || frame.Bounds().Dy() != h {
		t.Fatalf("frame is %dx%d, want %dx%d", frame.Bounds().Dx(), frame.Bounds().Dy(), w, h)
	}
	for _, pt := range [][2]int{{0, 0}, {w - 1, h - 1}, {w / 2, h / 2}} {
		_, _, _, a := frame.At(pt[0], pt[1]).RGBA()
		if a != 0xffff {
			t.Fatalf("pixel (%d,%d) is not opaque", pt[0], pt[1])
		}
	}
}

func TestRender_CardVisibleOverBackground(t *testing.T) {
	const w, h = 270, 480
	r := testRenderer(t, w, h)

	bg, err := PrepareBackground("", w, h)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.Render(bg, types.ScriptSegment{EN: "Hi", UR: "ہیلو"})

	// The card center sits at BoxYRatio of the frame height; its
	// near-opaque white fill must clearly brighten the dark fallback there.
	cx, cy := w/2, int(float64(h)*config.DefaultCaptionStyle().BoxYRatio)
	fr, fg, fb, _ := frame.At(cx, cy).RGBA()
	br, bgc, bb, _ := bg.At(cx, cy).RGBA()
	if fr <= br || fg <= bgc || fb <= bb {
		t.Fatalf("expected card fill at (%d,%d): frame=%v bg=%v", cx, cy, []uint32{fr, fg, fb}, []uint32{br, bgc, bb})
	}
	// A corner stays pure background.
	cr, cg, cb, _ := frame.At(2, 2).RGBA()
	want := color.NRGBA{R: 15, G: 15, B: 24, A: 255}
	wr, wg, wb, _ := want.RGBA()
	if cr != wr || cg != wg || cb != wb {
		t.Fatalf("corner pixel changed: got %v want %v", []uint32{cr, cg, cb}, []uint32{wr, wg, wb})
	}
}

func TestRender_ResizesMismatchedBackground(t *testing.T) {
	const w, h = 200, 300
	r := testRenderer(t, w, h)

	bg, err := PrepareBackground("", 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.Render(bg, types.ScriptSegment{EN: "resize me", UR: ""})
	if frame.Bounds().Dx() != w || frame.Bounds().Dy() != h {
		t.Fatalf("frame is %dx%d, want %dx%d", frame.Bounds().Dx(), frame.Bounds().Dy(), w, h)
	}
}

func TestRender_EmptySegmentStillProducesFrame(t *testing.T) {
	const w, h = 128, 128
	r := testRenderer(t, w, h)
	bg, err := PrepareBackground("", w, h)
	if err != nil {
		t.Fatal(err)
	}
	frame := r.Render(bg, types.ScriptSegment{})
	if frame.Bounds().Dx() != w || frame.Bounds().Dy() != h {
		t.Fatalf("unexpected bounds: %v", frame.Bounds())
	}
}

func TestShapeRTL_ReversesToVisualOrder(t *testing.T) {
	// Non-Arabic text passes through shaping untouched, so reversal is
	// directly observable.
	if got := shapeRTL("abc"); got != "cba" {
		t.Fatalf("shapeRTL(abc) = %q, want cba", got)
	}
	if got := shapeRTL("سلام"); got == "" || got == "سلام" {
		t.Fatalf("expected shaped+reordered urdu text, got %q", got)
	}
}
