// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite drives admonition-to-directive conversion over single
// documents and whole trees.
// Implements: prd004-rewrite (R1-R3);
//
//	docs/ARCHITECTURE § Rewrite Driver.
package rewrite

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/callout-bridge/internal/locate"
	"github.com/pdiddy/callout-bridge/internal/remap"
	"github.com/pdiddy/callout-bridge/internal/transduce"
	"github.com/pdiddy/callout-bridge/pkg/types"
)

// RewriteFile transforms one document in place, printing its status to w.
// Under dryRun the file is left untouched and a would-change line is
// printed instead. Read and write failures are per-file: they mark the
// result failed but never abort a batch.
func RewriteFile(path string, table remap.Table, dryRun bool, w io.Writer) types.FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
		return types.FileResult{Path: path, Status: types.FileFailed, Err: err.Error()}
	}

	original := string(data)
	rewritten := transduce.Transform(original, table)

	if rewritten == original {
		fmt.Fprintf(w, "unchanged: %s\n", path)
		return types.FileResult{Path: path, Status: types.FileUnchanged}
	}

	if dryRun {
		fmt.Fprintf(w, "would change: %s\n", path)
		return types.FileResult{Path: path, Status: types.FileChanged}
	}

	if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
		return types.FileResult{Path: path, Status: types.FileFailed, Err: err.Error()}
	}

	fmt.Fprintf(w, "changed:   %s\n", path)
	return types.FileResult{Path: path, Status: types.FileChanged}
}

// RewriteTree locates every document under root with the given extension,
// rewrites each through RewriteFile, and returns the run report. Per-file
// status lines and a closing summary go to w.
func RewriteTree(root, ext string, table remap.Table, dryRun bool, w io.Writer) types.RunReport {
	report := types.RunReport{
		Root:      root,
		DryRun:    dryRun,
		StartedAt: time.Now().UTC(),
	}

	for _, path := range locate.ListDocuments(root, ext, w) {
		report.Files = append(report.Files, RewriteFile(path, table, dryRun, w))
	}

	verb := "changed"
	if dryRun {
		verb = "would change"
	}
	fmt.Fprintf(w, "\nRewrite summary: %d %s, %d unchanged, %d failed (total: %d)\n",
		report.Changed(), verb, report.Unchanged(), report.Failed(), report.Scanned())
	return report
}
