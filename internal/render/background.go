package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/types"
)

// PrepareBackground loads and cover-crops the background to the fixed output
// size: scale to fill, center crop the overflow. An empty path falls back to
// a solid dark fill; an unreadable file is a fatal *types.ResourceError.
func PrepareBackground(path string, width, height int) (image.Image, error) {
	if path == "" {
		c := config.BackgroundFallback
		return imaging.New(width, height, color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}), nil
	}
	src, err := imaging.Open(path)
	if err != nil {
		return nil, &types.ResourceError{Resource: "background", Path: path, Err: err}
	}
	return imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos), nil
}
