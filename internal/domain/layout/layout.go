// Package layout wraps caption text into lines that fit a pixel budget and
// measures the resulting block. Wrapping works on logical token order for
// both directions; glyph shaping and visual reordering are the renderer's
// job, so the same greedy algorithm serves Latin and Urdu text.
package layout

import "strings"

// Font measures rendered text for one script at a fixed size. Width must
// account for any shaping the renderer will apply to the same string.
type Font interface {
	Width(s string) float64
	LineHeight() float64
}

// WrapLTR wraps left-to-right text on whitespace.
func WrapLTR(text string, f Font, maxWidth float64) []string {
	return wrap(text, f, maxWidth)
}

// WrapRTL wraps right-to-left text. Line breaking is identical to LTR —
// tokens stay in logical order — but kept as a separate entry point because
// callers pair it with an RTL-shaping Font.
func WrapRTL(text string, f Font, maxWidth float64) []string {
	return wrap(text, f, maxWidth)
}

func wrap(text string, f Font, maxWidth float64) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	var lines []string
	cur := tokens[0]
	for _, tok := range tokens[1:] {
		candidate := cur + " " + tok
		if f.Width(candidate) <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		// A single token wider than maxWidth still gets its own line; the
		// next iteration will break immediately after it.
		cur = tok
	}
	return append(lines, cur)
}

// Measure returns the wrapped block's pixel size: width is the widest line,
// height is the sum of line heights with spacing between lines but not after
// the last. Empty input measures zero.
func Measure(lines []string, f Font, lineSpacing float64) (w, h float64) {
	for i, line := range lines {
		if lw := f.Width(line); lw > w {
			w = lw
		}
		h += f.LineHeight()
		if i < len(lines)-1 {
			h += lineSpacing
		}
	}
	return w, h
}
