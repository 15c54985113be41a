// Package render rasterizes one caption frame per segment: a rounded,
// shadowed, semi-opaque card over the background carrying the English block
// above the Urdu block. All drawing happens on a supersampled canvas and is
// Lanczos-downsampled at the end so edges and glyph outlines stay clean.
package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/domain/layout"
	"github.com/jarair9/translation-video-generator/internal/types"
)

// Renderer draws caption frames at a fixed output size. Safe for reuse
// across segments; holds only read-only style and font state.
type Renderer struct {
	fonts  *FontSet
	style  config.CaptionStyle
	width  int
	height int
}

func NewRenderer(fonts *FontSet, style config.CaptionStyle, width, height int) *Renderer {
	return &Renderer{fonts: fonts, style: style, width: width, height: height}
}

// Render composes one frame. The returned image is fully opaque and exactly
// width×height regardless of the background's original size.
func (r *Renderer) Render(bg image.Image, seg types.ScriptSegment) image.Image {
	if bg.Bounds().Dx() != r.width || bg.Bounds().Dy() != r.height {
		bg = imaging.Resize(bg, r.width, r.height, imaging.Lanczos)
	}

	// Every metric below is multiplied by the same factor the canvas is
	// scaled by; a mismatch would misplace text after the downsample.
	scale := config.SupersampleScale
	sw, sh := r.width*scale, r.height*scale
	st := r.style

	enFont := newLatinFont(r.fonts.ENFace(float64(st.ENFontSize * scale)))
	urFont := newUrduFont(r.fonts.URFace(float64(st.URFontSize * scale)))

	maxTextWidth := (float64(r.width)*st.BoxWidthRatio - float64(2*st.BoxPadding)) * float64(scale)
	spacing := float64(st.LineSpacing * scale)

	enLines := layout.WrapLTR(seg.EN, enFont, maxTextWidth)
	urLines := layout.WrapRTL(seg.UR, urFont, maxTextWidth)

	enW, enH := layout.Measure(enLines, enFont, spacing)
	urW, urH := layout.Measure(urLines, urFont, spacing)

	blockGap := float64(st.BlockGap * scale)
	contentW := math.Max(enW, urW)
	contentH := enH + urH
	if enH > 0 && urH > 0 {
		contentH += blockGap
	}

	pad := float64(st.BoxPadding * scale)
	boxW := contentW + 2*pad
	boxH := contentH + 2*pad
	boxLeft := (float64(sw) - boxW) / 2
	boxTop := float64(sh)*st.BoxYRatio - boxH/2
	radius := float64(st.BoxRadius * scale)

	layer := gg.NewContext(sw, sh)

	// Shadow gets its own canvas so the blur can't smear the card fill.
	shadow := gg.NewContext(sw, sh)
	shadow.SetRGBA255(0, 0, 0, 120)
	off := float64(st.ShadowOffset * scale)
	shadow.DrawRoundedRectangle(boxLeft+off, boxTop+off, boxW, boxH, radius)
	shadow.Fill()
	// PIL-style blur radius to gaussian sigma.
	blurred := imaging.Blur(shadow.Image(), float64(st.ShadowBlur*scale)/2)
	layer.DrawImage(blurred, 0, 0)

	layer.SetRGBA255(255, 255, 255, st.BoxOpacity)
	layer.DrawRoundedRectangle(boxLeft, boxTop, boxW, boxH, radius)
	layer.Fill()

	layer.SetRGB(0, 0, 0)
	y := boxTop + pad
	y = drawBlock(layer, enLines, enFont, float64(sw), y, spacing)
	if enH > 0 && urH > 0 {
		y += blockGap
	}
	drawBlock(layer, urLines, urFont, float64(sw), y, spacing)

	card := imaging.Resize(layer.Image(), r.width, r.height, imaging.Lanczos)

	// Flatten against the background: the output carries no alpha.
	out := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(out, out.Bounds(), bg, bg.Bounds().Min, draw.Src)
	draw.Draw(out, out.Bounds(), card, card.Bounds().Min, draw.Over)
	return out
}

// drawBlock draws each line centered independently and returns the y just
// below the block. Shaping runs at draw time on the already-wrapped line.
func drawBlock(dc *gg.Context, lines []string, f faceFont, canvasW, y, spacing float64) float64 {
	dc.SetFontFace(f.face)
	for i, line := range lines {
		w := f.Width(line)
		x := (canvasW - w) / 2
		dc.DrawString(f.shape(line), x, y+f.ascent())
		y += f.LineHeight()
		if i < len(lines)-1 {
			y += spacing
		}
	}
	return y
}
