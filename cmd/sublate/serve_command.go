package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sublate/internal/history"
	"sublate/internal/logging"
	"sublate/internal/server"
)

func newServeCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the subtitle HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			pipe, err := buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg.History.Path)
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer store.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, pipe, store, logger)
			logger.Info("starting server",
				logging.FieldComponent, "serve",
				"bind", cfg.Server.Bind,
				"strategy", cfg.Captions.Strategy,
				"output_mode", cfg.Translator.OutputMode)
			return srv.Run(ctx)
		},
	}
}
