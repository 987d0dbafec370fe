package types

import "time"

// FileStatus describes the outcome of rewriting one document.
type FileStatus string

const (
	// FileChanged means the document was modified (or would be, under dry run).
	FileChanged FileStatus = "changed"
	// FileUnchanged means the rewrite produced identical text.
	FileUnchanged FileStatus = "unchanged"
	// FileFailed means the document could not be read or written back.
	FileFailed FileStatus = "failed"
)

// FileResult records the outcome for one document in a run.
type FileResult struct {
	Path   string     `json:"path" yaml:"path"`
	Status FileStatus `json:"status" yaml:"status"`
	Err    string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunReport summarizes one rewrite run over a documentation tree.
type RunReport struct {
	Root      string       `json:"root" yaml:"root"`
	DryRun    bool         `json:"dry_run" yaml:"dry_run"`
	StartedAt time.Time    `json:"started_at" yaml:"started_at"`
	Files     []FileResult `json:"files" yaml:"files"`
}

// Changed returns the number of documents that were (or would be) modified.
func (r RunReport) Changed() int {
	return r.count(FileChanged)
}

// Unchanged returns the number of documents left as they were.
func (r RunReport) Unchanged() int {
	return r.count(FileUnchanged)
}

// Failed returns the number of documents that could not be processed.
func (r RunReport) Failed() int {
	return r.count(FileFailed)
}

// Scanned returns the total number of documents the run looked at.
func (r RunReport) Scanned() int {
	return len(r.Files)
}

// HasFailures reports whether any document failed.
func (r RunReport) HasFailures() bool {
	return r.Failed() > 0
}

func (r RunReport) count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}
