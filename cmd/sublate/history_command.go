package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"sublate/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent subtitle requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Request history is disabled (set history.enabled = true)")
				return nil
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No requests recorded yet")
				return nil
			}

			headers := []string{"When", "Video", "Language", "Mode", "Status", "Cues", "Elapsed"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				status := rec.Status
				if rec.ErrorKind != "" {
					status = fmt.Sprintf("%s (%s)", rec.Status, rec.ErrorKind)
				}
				if rec.Degraded {
					status += " degraded"
				}
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format(time.DateTime),
					rec.VideoID,
					rec.Language,
					rec.Mode,
					status,
					strconv.Itoa(rec.CueCount),
					rec.Elapsed.Round(time.Millisecond).String(),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum rows to display")
	return cmd
}
