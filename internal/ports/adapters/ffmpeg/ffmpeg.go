// Package ffmpeg assembles the timeline: per-segment encodes from a still
// frame plus scheduled audio tracks, strict-order concatenation, and the
// optional background-music mix. Built on ffmpeg-go filter graphs.
package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/jarair9/translation-video-generator/internal/types"
)

// Options fix the output geometry and boundary fades for every call; all
// segment files must match for the concat demuxer to join them cleanly.
type Options struct {
	Width     int
	Height    int
	FPS       int
	VideoFade float64
	AudioFade float64
}

type Adapter struct {
	opts Options
}

func New(opts Options) *Adapter {
	if opts.Width == 0 {
		opts.Width = 1080
	}
	if opts.Height == 0 {
		opts.Height = 1920
	}
	if opts.FPS == 0 {
		opts.FPS = 24
	}
	return &Adapter{opts: opts}
}

// RenderSegment loops the frame for the segment's duration, mixes its audio
// tracks additively at their offsets, and fades both streams at the
// boundaries.
func (a *Adapter) RenderSegment(ctx context.Context, seg types.TimedSegment, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if seg.Duration <= 0 {
		return fmt.Errorf("segment duration must be > 0, got %v", seg.Duration)
	}

	video := ffmpeg.Input(seg.FramePath, ffmpeg.KwArgs{
		"loop":      1,
		"framerate": a.opts.FPS,
		"t":         fmtSeconds(seg.Duration),
	}).
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", a.opts.Width, a.opts.Height)}).
		Filter("format", ffmpeg.Args{"yuv420p"})
	video = applyFades(video, "fade", seg.Duration, a.opts.VideoFade)

	audio := a.segmentAudio(seg)

	err := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outPath, ffmpeg.KwArgs{
		"c:v":    "libx264",
		"preset": "fast",
		"c:a":    "aac",
		"b:a":    "192k",
		"r":      a.opts.FPS,
		"t":      fmtSeconds(seg.Duration),
	}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg render segment: %w", err)
	}
	return nil
}

func (a *Adapter) segmentAudio(seg types.TimedSegment) *ffmpeg.Stream {
	var tracks []*ffmpeg.Stream
	for _, tr := range seg.Tracks {
		if tr.Clip.Path == "" {
			continue
		}
		s := ffmpeg.Input(tr.Clip.Path).Audio()
		if ms := offsetMillis(tr.StartOffset); ms > 0 {
			s = s.Filter("adelay", ffmpeg.Args{strconv.Itoa(ms)}, ffmpeg.KwArgs{"all": 1})
		}
		tracks = append(tracks, s)
	}

	var mix *ffmpeg.Stream
	switch len(tracks) {
	case 0:
		// Silent segment (both texts empty): exact-length silence so the
		// concat inputs stay uniform.
		return ffmpeg.Input("anullsrc=channel_layout=stereo:sample_rate=44100",
			ffmpeg.KwArgs{"f": "lavfi", "t": fmtSeconds(seg.Duration)}).Audio()
	case 1:
		mix = tracks[0]
	default:
		// Additive overlay; normalize=0 keeps the voices at their own level.
		mix = ffmpeg.Filter(tracks, "amix", nil, ffmpeg.KwArgs{
			"inputs":    len(tracks),
			"duration":  "longest",
			"normalize": 0,
		})
	}
	mix = mix.Filter("apad", nil, ffmpeg.KwArgs{"whole_dur": fmtSeconds(seg.Duration)})
	return applyFades(mix, "afade", seg.Duration, a.opts.AudioFade)
}

// Concat joins segment files in the given order with no gaps and no overlap,
// then normalizes to the fixed fps/size. Per-segment variance should not
// exist by construction; the re-encode is the safety net.
func (a *Adapter) Concat(ctx context.Context, segmentPaths []string, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(segmentPaths) == 0 {
		return fmt.Errorf("concat: no segments")
	}

	listPath := outPath + ".segments.txt"
	var b strings.Builder
	for _, p := range segmentPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("concat: resolve %s: %w", p, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", escapeConcatPath(abs))
	}
	if err := os.WriteFile(listPath, []byte(b.String()), 0o644); err != nil {
		return err
	}
	defer os.Remove(listPath)

	err := ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": 0}).
		Output(outPath, ffmpeg.KwArgs{
			"vf":     fmt.Sprintf("scale=%d:%d", a.opts.Width, a.opts.Height),
			"r":      a.opts.FPS,
			"c:v":    "libx264",
			"preset": "fast",
			"c:a":    "aac",
			"b:a":    "192k",
		}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}
	return nil
}

// MixBackgroundMusic loops the music to the video's exact duration, trims,
// applies the volume multiplier, and mixes it under the existing audio.
func (a *Adapter) MixBackgroundMusic(ctx context.Context, videoPath, musicPath string, volume float64, outPath string) error {
	dur, err := a.ProbeDuration(ctx, videoPath)
	if err != nil {
		return err
	}

	video := ffmpeg.Input(videoPath)
	music := ffmpeg.Input(musicPath, ffmpeg.KwArgs{"stream_loop": -1}).Audio().
		Filter("atrim", nil, ffmpeg.KwArgs{"duration": fmtSeconds(dur)}).
		Filter("volume", ffmpeg.Args{strconv.FormatFloat(volume, 'f', 3, 64)})

	mixed := ffmpeg.Filter([]*ffmpeg.Stream{video.Audio(), music}, "amix", nil, ffmpeg.KwArgs{
		"inputs":    2,
		"duration":  "first",
		"normalize": 0,
	})

	err = ffmpeg.Output([]*ffmpeg.Stream{video.Video(), mixed}, outPath, ffmpeg.KwArgs{
		"c:v": "copy",
		"c:a": "aac",
		"b:a": "192k",
	}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg mix background music: %w", err)
	}
	return nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, path string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(probeJSON string) (float64, error) {
	var probed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probeJSON), &probed); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}
	sec, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probed.Format.Duration, err)
	}
	return sec, nil
}

// applyFades adds in/out fades of the same length at both boundaries,
// shrinking the window when the segment is too short to hold two of them.
func applyFades(s *ffmpeg.Stream, filter string, duration, fade float64) *ffmpeg.Stream {
	if fade <= 0 {
		return s
	}
	if 2*fade > duration {
		fade = duration / 2
	}
	d := fmtSeconds(fade)
	s = s.Filter(filter, ffmpeg.Args{fmt.Sprintf("t=in:st=0:d=%s", d)})
	return s.Filter(filter, ffmpeg.Args{fmt.Sprintf("t=out:st=%s:d=%s", fmtSeconds(duration-fade), d)})
}

func offsetMillis(sec float64) int {
	return int(math.Round(sec * 1000))
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func escapeConcatPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "'", `'\''`)
}
