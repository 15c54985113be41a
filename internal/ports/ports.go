package ports

import (
	"context"

	"github.com/jarair9/translation-video-generator/internal/types"
)

// SpeechSynth turns text into an audio file at outPath and reports its
// duration. Empty text yields a zero-duration clip without touching disk.
type SpeechSynth interface {
	Synthesize(ctx context.Context, text, voice, outPath string) (types.SpeechClip, error)
}

// AudioProber measures an audio file's duration in seconds.
type AudioProber interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// ScriptGenerator produces {en, ur} pairs for a topic.
type ScriptGenerator interface {
	Generate(ctx context.Context, topic, level string, pairs int, kind string) ([]types.ScriptSegment, error)
}

// VideoTool is the timeline assembly backend. Segment files produced by
// RenderSegment concatenate cleanly because every call uses the same fixed
// fps, size and codecs.
type VideoTool interface {
	// RenderSegment encodes one still frame held for seg.Duration with the
	// segment's audio tracks mixed at their offsets and boundary fades
	// applied to both video and audio.
	RenderSegment(ctx context.Context, seg types.TimedSegment, outPath string) error
	// Concat joins segment files strictly in the given order and normalizes
	// the result to the fixed fps/size.
	Concat(ctx context.Context, segmentPaths []string, outPath string) error
	// MixBackgroundMusic loops musicPath to the video's exact duration,
	// scales its volume, and mixes it additively with the existing audio.
	MixBackgroundMusic(ctx context.Context, videoPath, musicPath string, volume float64, outPath string) error

	AudioProber
}
