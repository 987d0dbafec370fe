// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate enumerates documents under a directory tree by extension.
// Implements: prd003-locator (R1).
package locate

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// ListDocuments walks root recursively and returns every regular file whose
// name ends in ext (e.g. ".md"). Result order follows the walk and carries
// no meaning. An unreadable directory is reported on w and its subtree
// skipped; ListDocuments itself never fails.
func ListDocuments(root, ext string, w io.Writer) []string {
	var docs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(w, "warning: skipping %s: %v\n", path, err)
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			docs = append(docs, path)
		}
		return nil
	})
	return docs
}
