// Package edgetts synthesizes speech by shelling out to the edge-tts CLI
// and measures the produced clip with an injected prober.
package edgetts

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jarair9/translation-video-generator/internal/ports"
	"github.com/jarair9/translation-video-generator/internal/types"
)

type Adapter struct {
	bin    string
	prober ports.AudioProber
}

func New(binPath string, prober ports.AudioProber) *Adapter {
	if binPath == "" {
		binPath = "edge-tts"
	}
	return &Adapter{bin: binPath, prober: prober}
}

func (a *Adapter) Synthesize(ctx context.Context, text, voice, outPath string) (types.SpeechClip, error) {
	// Empty text is a legal degenerate segment half: no clip, zero duration.
	if strings.TrimSpace(text) == "" {
		return types.SpeechClip{}, nil
	}

	cmd := exec.CommandContext(ctx, a.bin,
		"--voice", voice,
		"--text", text,
		"--write-media", outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return types.SpeechClip{}, fmt.Errorf("edge-tts failed: %w\n%s", err, string(b))
	}

	dur, err := a.prober.ProbeDuration(ctx, outPath)
	if err != nil {
		return types.SpeechClip{}, fmt.Errorf("measure synthesized audio: %w", err)
	}
	return types.SpeechClip{Path: outPath, Duration: dur}, nil
}
