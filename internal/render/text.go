package render

import (
	arabic "github.com/abdullahdiaa/garabic"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceFont adapts a font.Face to layout.Font. The shape hook runs before
// measuring and before drawing so both see the same glyph sequence — Urdu
// widths change once letters take their joined forms.
type faceFont struct {
	face  font.Face
	shape func(string) string
}

func newLatinFont(face font.Face) faceFont {
	return faceFont{face: face, shape: func(s string) string { return s }}
}

func newUrduFont(face font.Face) faceFont {
	return faceFont{face: face, shape: shapeRTL}
}

func (f faceFont) Width(s string) float64 {
	return fixedToPx(font.MeasureString(f.face, f.shape(s)))
}

func (f faceFont) LineHeight() float64 {
	m := f.face.Metrics()
	return fixedToPx(m.Ascent + m.Descent)
}

func (f faceFont) ascent() float64 {
	return fixedToPx(f.face.Metrics().Ascent)
}

// shapeRTL joins Arabic-script letters into their contextual presentation
// forms, then reverses to visual order for a renderer that lays glyphs out
// left to right. Wrapping already happened on the logical string.
func shapeRTL(s string) string {
	r := []rune(arabic.Shape(s))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// fixedToPx converts 26.6 fixed-point font units to pixels.
func fixedToPx(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
