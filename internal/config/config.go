package config

// Output geometry is fixed for every segment in a timeline; the assembler
// re-normalizes to these values as a safety net.
const (
	VideoWidth  = 1080
	VideoHeight = 1920
	FPS         = 24

	// SupersampleScale is the integer factor the card layer is rendered at
	// before the Lanczos downsample. Layout and drawing must share it.
	SupersampleScale = 2

	// SegmentFade is the visual fade in/out at each segment boundary.
	SegmentFade = 0.5
	// AudioFade is the audio mix fade in/out at each segment boundary.
	AudioFade = 0.12

	// DefaultBGMVolume keeps looped music under the voice tracks.
	DefaultBGMVolume = 0.1
)

// BackgroundFallback is the solid fill used when no background image is
// supplied.
var BackgroundFallback = [3]uint8{15, 15, 24}

// CaptionStyle is resolved once at startup and passed down read-only.
// Pixel values are at output scale; the rasterizer multiplies them by the
// supersampling factor itself.
type CaptionStyle struct {
	BoxWidthRatio float64 // card width as a fraction of frame width
	BoxRadius     int     // corner radius, px
	BoxOpacity    int     // card fill alpha, 0..255
	BoxPadding    int     // inner padding, px
	BoxYRatio     float64 // card vertical center as a fraction of frame height
	ShadowOffset  int     // drop shadow offset, px
	ShadowBlur    int     // drop shadow gaussian blur radius, px
	ENFontSize    int     // English font size, px
	URFontSize    int     // Urdu font size, px
	LineSpacing   int     // spacing between lines inside a block, px
	BlockGap      int     // gap between the English and Urdu blocks, px
}

func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		BoxWidthRatio: 0.86,
		BoxRadius:     25,
		BoxOpacity:    242,
		BoxPadding:    30,
		BoxYRatio:     0.4,
		ShadowOffset:  10,
		ShadowBlur:    18,
		ENFontSize:    54,
		URFontSize:    64,
		LineSpacing:   8,
		BlockGap:      26,
	}
}

// Voices are the per-language speech identities handed to the synthesizer.
type Voices struct {
	EN string
	UR string
}

func DefaultVoices() Voices {
	return Voices{
		EN: "en-US-AvaMultilingualNeural",
		UR: "ur-PK-AsadNeural",
	}
}
