// Package config provides configuration management for restamp.
package config

// Default configuration values for restamp.
const (
	// DefaultDirPattern matches the numbered export-part directories of
	// a multi-part iCloud photo export.
	DefaultDirPattern = "iCloudPhotosPart*of*"

	// DefaultCSVPattern matches the sidecar metadata files inside each
	// export-part directory.
	DefaultCSVPattern = "Photo Details*.csv"

	// DefaultErrorPreview is the number of recovered errors echoed in
	// the run summary.
	DefaultErrorPreview = 10
)
