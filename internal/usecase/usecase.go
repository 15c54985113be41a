// Package usecase orchestrates one render: fan out speech synthesis across
// segments, then schedule, rasterize, and encode each segment in source
// order, concatenate, and mix optional background music.
package usecase

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/domain/timing"
	"github.com/jarair9/translation-video-generator/internal/ports"
	"github.com/jarair9/translation-video-generator/internal/progress"
	"github.com/jarair9/translation-video-generator/internal/render"
	"github.com/jarair9/translation-video-generator/internal/script"
	"github.com/jarair9/translation-video-generator/internal/types"
)

type Deps struct {
	TTS      ports.SpeechSynth
	Video    ports.VideoTool
	Progress progress.Sink
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Progress == nil {
		d.Progress = progress.Nop{}
	}
	return Usecase{d: d}
}

type Input struct {
	Script     []types.ScriptSegment
	Renderer   *render.Renderer
	Background image.Image
	Voices     config.Voices

	// WorkDir holds every intermediate artifact; the caller owns its
	// lifecycle. OutPath must live inside it so the final move is atomic.
	WorkDir string
	OutPath string

	BGMPath   string
	BGMVolume float64

	// Concurrency bounds the speech-synthesis fan-out. Defaults to 3.
	Concurrency int
}

type Result struct {
	Segments      []types.TimedSegment
	TotalDuration float64
	BGMApplied    bool
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	if err := script.Validate(in.Script); err != nil {
		return Result{}, err
	}
	n := len(in.Script)

	clips, err := u.synthesizeAll(ctx, in)
	if err != nil {
		return Result{}, err
	}

	var (
		segPaths []string
		timed    []types.TimedSegment
		total    float64
	)
	for i, seg := range in.Script {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		u.d.Progress.Publish(progress.Event{Stage: "render", Segment: i + 1, Total: n, Message: "rendering segment"})

		en, ur := clips[i][0], clips[i][1]
		sched := timing.Compute(en.Duration, ur.Duration, seg.PauseAfter, seg.MinDuration)

		framePath := filepath.Join(in.WorkDir, fmt.Sprintf("seg_%03d_frame.png", i))
		if err := imaging.Save(in.Renderer.Render(in.Background, seg), framePath); err != nil {
			return Result{}, fmt.Errorf("save frame for segment %d: %w", i, err)
		}

		ts := types.TimedSegment{FramePath: framePath, Duration: sched.Total}
		if en.Path != "" {
			ts.Tracks = append(ts.Tracks, types.AudioTrack{Clip: en, StartOffset: sched.ENStart})
		}
		if ur.Path != "" {
			ts.Tracks = append(ts.Tracks, types.AudioTrack{Clip: ur, StartOffset: sched.URStart})
		}

		segPath := filepath.Join(in.WorkDir, fmt.Sprintf("seg_%03d.mp4", i))
		if err := u.d.Video.RenderSegment(ctx, ts, segPath); err != nil {
			return Result{}, fmt.Errorf("encode segment %d: %w", i, err)
		}

		timed = append(timed, ts)
		segPaths = append(segPaths, segPath)
		total += sched.Total
	}

	u.d.Progress.Publish(progress.Event{Stage: "assemble", Message: fmt.Sprintf("concatenating %d segments", n)})
	timelinePath := filepath.Join(in.WorkDir, "timeline.mp4")
	if err := u.d.Video.Concat(ctx, segPaths, timelinePath); err != nil {
		return Result{}, fmt.Errorf("concat timeline: %w", err)
	}

	bgmApplied := false
	if in.BGMPath != "" {
		u.d.Progress.Publish(progress.Event{Stage: "assemble", Message: "mixing background music"})
		if err := u.d.Video.MixBackgroundMusic(ctx, timelinePath, in.BGMPath, in.BGMVolume, in.OutPath); err != nil {
			// Recoverable by design: the timeline ships without music.
			bgmErr := &types.BackgroundMusicError{Path: in.BGMPath, Err: err}
			u.d.Progress.Publish(progress.Event{Stage: "assemble", Warn: true, Message: "continuing without background music: " + bgmErr.Error()})
		} else {
			bgmApplied = true
		}
	}
	if !bgmApplied {
		if err := os.Rename(timelinePath, in.OutPath); err != nil {
			return Result{}, fmt.Errorf("finalize timeline: %w", err)
		}
	}

	return Result{Segments: timed, TotalDuration: total, BGMApplied: bgmApplied}, nil
}

// synthesizeAll runs both languages' TTS for every segment under a bounded
// worker pool. Results land in a slice indexed by segment so concatenation
// order never depends on completion order; assembly starts only once every
// duration is known.
func (u Usecase) synthesizeAll(ctx context.Context, in Input) ([][2]types.SpeechClip, error) {
	n := len(in.Script)
	clips := make([][2]types.SpeechClip, n)
	errs := make([]error, n)

	conc := in.Concurrency
	if conc <= 0 {
		conc = 3
	}
	sem := make(chan struct{}, conc)
	var wg sync.WaitGroup

	for i, seg := range in.Script {
		wg.Add(1)
		go func(i int, seg types.ScriptSegment) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// Abort before issuing external calls once the caller cancels.
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			u.d.Progress.Publish(progress.Event{Stage: "tts", Segment: i + 1, Total: n, Message: "synthesizing speech"})

			en, err := u.d.TTS.Synthesize(ctx, seg.EN, in.Voices.EN,
				filepath.Join(in.WorkDir, fmt.Sprintf("seg_%03d_en.mp3", i)))
			if err != nil {
				errs[i] = &types.SynthesisError{Segment: i, Lang: "en", Err: err}
				return
			}
			ur, err := u.d.TTS.Synthesize(ctx, seg.UR, in.Voices.UR,
				filepath.Join(in.WorkDir, fmt.Sprintf("seg_%03d_ur.mp3", i)))
			if err != nil {
				errs[i] = &types.SynthesisError{Segment: i, Lang: "ur", Err: err}
				return
			}
			clips[i] = [2]types.SpeechClip{en, ur}
		}(i, seg)
	}
	wg.Wait()

	// First failing segment wins; a failed segment can never be skipped.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return clips, nil
}
