// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/callout-bridge/internal/runlog"
	"github.com/pdiddy/callout-bridge/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent rewrite runs",
	Long: `History lists runs recorded in the run-history database, newest first.
With --run, the per-file outcomes of a single run are shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		historyDir := stringSetting(cmd, "history-dir", "history.history_dir", ".callout-bridge")
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetInt64("run")

		store, err := runlog.NewStore(types.HistoryConfig{HistoryDir: historyDir})
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}
		defer store.Close()

		if runID > 0 {
			files, err := store.Files(cmd.Context(), runID)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Printf("no files recorded for run %d\n", runID)
				return nil
			}
			for _, f := range files {
				if f.Err != "" {
					fmt.Printf("%-10s %s (%s)\n", f.Status, f.Path, f.Err)
					continue
				}
				fmt.Printf("%-10s %s\n", f.Status, f.Path)
			}
			return nil
		}

		runs, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}
		for _, r := range runs {
			mode := ""
			if r.DryRun {
				mode = " (dry run)"
			}
			fmt.Printf("run %d  %s  %s%s: %d scanned, %d changed, %d failed\n",
				r.ID, r.StartedAt.Local().Format(time.RFC3339), r.Root, mode,
				r.Scanned, r.Changed, r.Failed)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default from config, 20)")
	historyCmd.Flags().Int64("run", 0, "show per-file outcomes for the given run id")
	historyCmd.Flags().String("history-dir", ".callout-bridge", "directory for the run-history database")

	rootCmd.AddCommand(historyCmd)
}
