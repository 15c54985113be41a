// Package pipeline validates configuration, wires adapters, and runs one
// full script-to-video render inside a disposable session directory.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/ports/adapters/edgetts"
	"github.com/jarair9/translation-video-generator/internal/ports/adapters/ffmpeg"
	"github.com/jarair9/translation-video-generator/internal/progress"
	"github.com/jarair9/translation-video-generator/internal/render"
	"github.com/jarair9/translation-video-generator/internal/script"
	"github.com/jarair9/translation-video-generator/internal/usecase"
)

type Config struct {
	ScriptPath string
	OutputPath string

	// Explicit per-language font files; there is no discovery fallback.
	ENFontPath string
	URFontPath string

	BackgroundPath string
	BGMPath        string
	BGMVolume      float64

	// CacheDir is the base directory for session artifacts. Defaults to
	// ".cache". KeepTemp leaves the session directory behind for debugging.
	CacheDir string
	KeepTemp bool

	EdgeTTSBin     string
	Voices         config.Voices
	TTSConcurrency int

	Progress progress.Sink
}

func (c Config) Validate() error {
	if c.ScriptPath == "" {
		return errors.New("script path is empty")
	}
	if _, err := os.Stat(c.ScriptPath); err != nil {
		return fmt.Errorf("stat script: %w", err)
	}
	if c.OutputPath == "" {
		return errors.New("output path is empty")
	}
	if c.ENFontPath == "" {
		return errors.New("english font path is required")
	}
	if c.URFontPath == "" {
		return errors.New("urdu font path is required")
	}
	if c.BGMVolume < 0 || c.BGMVolume > 1 {
		return fmt.Errorf("bgm volume must be in [0,1], got %v", c.BGMVolume)
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	sink := cfg.Progress
	if sink == nil {
		sink = progress.Nop{}
	}
	voices := cfg.Voices
	if voices.EN == "" || voices.UR == "" {
		voices = config.DefaultVoices()
	}

	// Resolve every render resource up front; nothing is discovered
	// mid-render.
	segs, err := script.Load(cfg.ScriptPath)
	if err != nil {
		return err
	}
	fonts, err := render.LoadFontSet(cfg.ENFontPath, cfg.URFontPath)
	if err != nil {
		return err
	}
	bg, err := render.PrepareBackground(cfg.BackgroundPath, config.VideoWidth, config.VideoHeight)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg.CacheDir, cfg.KeepTemp)
	if err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	defer sess.Close()

	video := ffmpeg.New(ffmpeg.Options{
		Width:     config.VideoWidth,
		Height:    config.VideoHeight,
		FPS:       config.FPS,
		VideoFade: config.SegmentFade,
		AudioFade: config.AudioFade,
	})
	tts := edgetts.New(cfg.EdgeTTSBin, video)
	renderer := render.NewRenderer(fonts, config.DefaultCaptionStyle(), config.VideoWidth, config.VideoHeight)

	uc := usecase.New(usecase.Deps{TTS: tts, Video: video, Progress: sink})

	finalPath := sess.Path("final.mp4")
	res, err := uc.Run(ctx, usecase.Input{
		Script:      segs,
		Renderer:    renderer,
		Background:  bg,
		Voices:      voices,
		WorkDir:     sess.Dir(),
		OutPath:     finalPath,
		BGMPath:     cfg.BGMPath,
		BGMVolume:   cfg.BGMVolume,
		Concurrency: cfg.TTSConcurrency,
	})
	if err != nil {
		return err
	}

	// The destination path only ever sees a complete file.
	if err := moveFile(finalPath, cfg.OutputPath); err != nil {
		return fmt.Errorf("move output: %w", err)
	}

	sink.Publish(progress.Event{
		Stage:   "done",
		Message: fmt.Sprintf("wrote %s (%d segments, %.2fs)", cfg.OutputPath, len(res.Segments), res.TotalDuration),
	})
	return nil
}
