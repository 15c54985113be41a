package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jarair9/translation-video-generator/internal/config"
	"github.com/jarair9/translation-video-generator/internal/pipeline"
	"github.com/jarair9/translation-video-generator/internal/progress"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <script.json>",
		Short: "Render a video from a JSON script of {en, ur} pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0])
		},
	}

	cmd.Flags().StringP("out", "o", "output.mp4", "Output video file path")
	cmd.Flags().StringP("background", "b", "", "Background image path (solid fill if omitted)")
	cmd.Flags().String("english-font", os.Getenv("ENGLISH_FONT"), "Path to the English font file (.ttf/.otf)")
	cmd.Flags().String("urdu-font", os.Getenv("URDU_FONT"), "Path to the Urdu font file (.ttf/.otf)")
	cmd.Flags().String("bgm", "", "Background music file, looped and mixed under the voices")
	cmd.Flags().Float64("bgm-volume", config.DefaultBGMVolume, "Background music volume multiplier")
	cmd.Flags().String("cache", ".cache", "Base directory for temporary render artifacts")
	cmd.Flags().Bool("keep-temp", false, "Do not delete temporary files after rendering")

	// Internal tuning flags
	cmd.Flags().Int("tts-concurrency", 3, "Concurrent speech synthesis calls")
	cmd.Flags().String("edge-tts", "edge-tts", "edge-tts binary")
	_ = cmd.Flags().MarkHidden("tts-concurrency")
	_ = cmd.Flags().MarkHidden("edge-tts")

	return cmd
}

func runRender(cmd *cobra.Command, scriptPath string) error {
	out, _ := cmd.Flags().GetString("out")
	background, _ := cmd.Flags().GetString("background")
	enFont, _ := cmd.Flags().GetString("english-font")
	urFont, _ := cmd.Flags().GetString("urdu-font")
	bgm, _ := cmd.Flags().GetString("bgm")
	bgmVolume, _ := cmd.Flags().GetFloat64("bgm-volume")
	cache, _ := cmd.Flags().GetString("cache")
	keepTemp, _ := cmd.Flags().GetBool("keep-temp")
	ttsConc, _ := cmd.Flags().GetInt("tts-concurrency")
	edgeTTS, _ := cmd.Flags().GetString("edge-tts")

	absScript, err := filepath.Abs(scriptPath)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		ScriptPath:     absScript,
		OutputPath:     out,
		ENFontPath:     enFont,
		URFontPath:     urFont,
		BackgroundPath: background,
		BGMPath:        bgm,
		BGMVolume:      bgmVolume,
		CacheDir:       cache,
		KeepTemp:       keepTemp,
		EdgeTTSBin:     edgeTTS,
		Voices:         config.DefaultVoices(),
		TTSConcurrency: ttsConc,
		Progress:       progress.NewLog(newLogger()),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return pipeline.Run(context.Background(), cfg)
}
