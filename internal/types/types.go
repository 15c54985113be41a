package types

// ScriptSegment is one English/Urdu pair in source order. Segments are
// immutable once loaded; their index is their identity through the pipeline.
type ScriptSegment struct {
	EN          string  `json:"en"`
	UR          string  `json:"ur"`
	PauseAfter  float64 `json:"pause_after,omitempty"`
	MinDuration float64 `json:"min_duration,omitempty"`
}

// SpeechClip is a synthesized audio artifact and its measured duration in
// seconds. The pipeline only schedules it; it never rewrites the file.
type SpeechClip struct {
	Path     string
	Duration float64
}

// AudioTrack places a clip at an offset (seconds) inside a segment.
type AudioTrack struct {
	Clip        SpeechClip
	StartOffset float64
}

// TimedSegment is the unit the timeline assembler consumes: one rendered
// frame shown for Duration seconds with the segment's speech tracks mixed
// additively at their offsets.
type TimedSegment struct {
	FramePath string
	Duration  float64
	Tracks    []AudioTrack
}
