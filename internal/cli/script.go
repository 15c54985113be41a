package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jarair9/translation-video-generator/internal/ports/adapters/gemini"
)

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script <topic>",
		Short: "Generate a bilingual script for a topic with Gemini",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0])
		},
	}

	cmd.Flags().StringP("out", "o", "script.json", "Output script file path")
	cmd.Flags().String("level", "beginner", "Learner level (beginner/intermediate/advanced)")
	cmd.Flags().Int("pairs", 5, "Number of en/ur pairs to generate")
	cmd.Flags().String("type", "sentences", "Script type: sentences or words")
	cmd.Flags().String("model", "", "Gemini model override")

	return cmd
}

func runScript(cmd *cobra.Command, topic string) error {
	out, _ := cmd.Flags().GetString("out")
	level, _ := cmd.Flags().GetString("level")
	pairs, _ := cmd.Flags().GetInt("pairs")
	kind, _ := cmd.Flags().GetString("type")
	model, _ := cmd.Flags().GetString("model")

	gen := gemini.New(os.Getenv("GOOGLE_API_KEY"), model)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	segs, err := gen.Generate(ctx, topic, level, pairs, kind)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(segs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal script: %w", err)
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}

	logger := newLogger()
	logger.Info().Int("pairs", len(segs)).Str("path", out).Msg("script written")
	return nil
}
