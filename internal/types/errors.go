package types

import "fmt"

// InputError marks an unusable input script: empty, malformed, or carrying
// invalid timing fields. Fatal; the pipeline writes no output.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "input: " + e.Reason }

// FontUnavailableError is raised when a required font file cannot be loaded.
// Silently substituting another script's font corrupts output, so this is
// always fatal and always names the requested path.
type FontUnavailableError struct {
	Path string
	Err  error
}

func (e *FontUnavailableError) Error() string {
	return fmt.Sprintf("font unavailable: %s: %v", e.Path, e.Err)
}

func (e *FontUnavailableError) Unwrap() error { return e.Err }

// ResourceError marks an unreadable render resource (e.g. the background
// image). Fatal for the whole render.
type ResourceError struct {
	Resource string
	Path     string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s unreadable: %s: %v", e.Resource, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// SynthesisError identifies which segment and language the speech
// collaborator failed on. Fatal: skipping a segment would desynchronize
// the timeline's index order.
type SynthesisError struct {
	Segment int
	Lang    string
	Err     error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("speech synthesis failed for segment %d (%s): %v", e.Segment, e.Lang, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// BackgroundMusicError is recoverable: the render continues without music.
type BackgroundMusicError struct {
	Path string
	Err  error
}

func (e *BackgroundMusicError) Error() string {
	return fmt.Sprintf("background music %s: %v", e.Path, e.Err)
}

func (e *BackgroundMusicError) Unwrap() error { return e.Err }
