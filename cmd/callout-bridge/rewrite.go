// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/callout-bridge/internal/remap"
	"github.com/pdiddy/callout-bridge/internal/rewrite"
	"github.com/pdiddy/callout-bridge/internal/runlog"
	"github.com/pdiddy/callout-bridge/pkg/types"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [dir]",
	Short: "Rewrite admonition blocks under a directory tree",
	Long: `Rewrite walks the given directory (default ".") and converts every
admonition block in matching documents to a fenced directive container,
writing the result back in place. With --dry-run, files are left untouched
and would-be changes are reported instead.

Each run is recorded in the run-history database unless --no-history is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		ext := stringSetting(cmd, "ext", "rewrite.extension", ".md")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		tablePath := stringSetting(cmd, "table", "rewrite.table_path", "")
		noHistory, _ := cmd.Flags().GetBool("no-history")
		historyDir := stringSetting(cmd, "history-dir", "history.history_dir", ".callout-bridge")

		table := remap.Default()
		if tablePath != "" {
			t, err := remap.Load(tablePath)
			if err != nil {
				return err
			}
			table = t
		}

		report := rewrite.RewriteTree(root, ext, table, dryRun, os.Stdout)

		if !noHistory {
			store, err := runlog.NewStore(types.HistoryConfig{HistoryDir: historyDir})
			if err != nil {
				return fmt.Errorf("opening run history: %w", err)
			}
			defer store.Close()

			if _, err := store.Record(cmd.Context(), report); err != nil {
				return fmt.Errorf("recording run: %w", err)
			}
		}

		if report.HasFailures() {
			return fmt.Errorf("%d documents failed", report.Failed())
		}
		return nil
	},
}

// stringSetting resolves a string option: an explicitly set flag wins, then
// a config-file value, then the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func init() {
	rewriteCmd.Flags().String("ext", ".md", "file extension of documents to rewrite")
	rewriteCmd.Flags().Bool("dry-run", false, "report would-be changes without writing files")
	rewriteCmd.Flags().String("table", "", "path to a custom YAML remap table")
	rewriteCmd.Flags().String("history-dir", ".callout-bridge", "directory for the run-history database")
	rewriteCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(rewriteCmd)
}
