package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sublate/internal/pipeline"
	"sublate/internal/services/youtube"
	"sublate/internal/subtitles"
)

func newGenerateCommand(cctx *commandContext) *cobra.Command {
	var videoFlag string
	var languageFlag string
	var modeFlag string
	var outputFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate translated subtitles for a single video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			videoID, err := youtube.ExtractVideoID(videoFlag)
			if err != nil {
				return err
			}

			defaultMode, _ := pipeline.ParseMode(cfg.Translator.OutputMode, pipeline.ModePlain)
			mode, ok := pipeline.ParseMode(modeFlag, defaultMode)
			if !ok {
				return fmt.Errorf("unknown mode %q (expected %q or %q)", modeFlag, pipeline.ModePlain, pipeline.ModeTimed)
			}

			logger, err := buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			pipe, err := buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := pipe.Run(ctx, pipeline.Request{
				VideoID:  videoID,
				Language: languageFlag,
				Mode:     mode,
			})
			if err != nil {
				return err
			}

			var payload []byte
			if jsonFlag {
				payload, err = json.MarshalIndent(struct {
					Subtitles []subtitles.Cue `json:"subtitles"`
					Language  string          `json:"language"`
					Mode      string          `json:"mode"`
					Degraded  bool            `json:"degraded,omitempty"`
				}{
					Subtitles: result.Document.Cues,
					Language:  result.Language.Code,
					Mode:      string(result.Mode),
					Degraded:  result.Degraded,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("encode subtitles: %w", err)
				}
				payload = append(payload, '\n')
			} else {
				payload = []byte(subtitles.Serialize(result.Document))
			}

			if outputFlag != "" {
				if err := os.WriteFile(outputFlag, payload, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s\n", len(result.Document.Cues), outputFlag)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}

	cmd.Flags().StringVarP(&videoFlag, "video", "v", "", "YouTube video URL or ID")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Target language code (for example es, ja, pt-BR)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Translator output mode: plain or timed-document")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit cues as JSON instead of WebVTT")
	_ = cmd.MarkFlagRequired("video")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}
