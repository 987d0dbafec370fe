package types

// RewriteConfig holds settings for the rewrite stage.
type RewriteConfig struct {
	// SourceDir is the documentation tree to rewrite (default ".").
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// Extension selects which files are rewritten (default ".md").
	Extension string `json:"extension" yaml:"extension"`

	// DryRun computes rewrites without persisting them.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// TablePath points at a custom YAML remap table. Empty means the
	// built-in mapping.
	TablePath string `json:"table_path,omitempty" yaml:"table_path,omitempty"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// HistoryDir is the directory holding the history database
	// (default ".callout-bridge").
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations for the CLI.
type Config struct {
	Rewrite RewriteConfig `json:"rewrite" yaml:"rewrite"`
	History HistoryConfig `json:"history" yaml:"history"`
}
