// Package types provides the core data types for the restamp photo
// export tool: catalog entries built from sidecar CSV metadata and the
// per-run statistics surfaced in the summary and reports.
package types

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
)

// Entry describes one photo cataloged from a metadata CSV row.
// An Entry is created only when the referenced file exists on disk at
// ingestion time, and is immutable afterwards.
type Entry struct {
	// Path is the absolute path to the photo file.
	Path string `json:"path"`

	// Name is the file name as listed in the CSV's imgName column.
	Name string `json:"name"`

	// Checksum is the caller-supplied checksum from the CSV. It is an
	// opaque grouping key; restamp never recomputes or verifies it.
	Checksum string `json:"checksum"`

	// Favorite, Hidden and Deleted are the CSV flag columns, where the
	// literal string "yes" means true.
	Favorite bool `json:"favorite"`
	Hidden   bool `json:"hidden"`
	Deleted  bool `json:"deleted"`

	// CapturedAt is the parsed originalCreationDate in UTC, or nil when
	// the CSV value could not be parsed.
	CapturedAt *time.Time `json:"captured_at,omitempty"`

	// ViewCount is the CSV viewCount column.
	ViewCount int `json:"view_count"`

	// Size is the file size in bytes, taken from the file on disk.
	Size int64 `json:"size"`
}

// Ext returns the entry's lowercased file extension including the dot.
func (e *Entry) Ext() string {
	return strings.ToLower(filepath.Ext(e.Name))
}

// HumanSize returns the entry size formatted with binary (IEC) units.
func (e *Entry) HumanSize() string {
	return FormatSize(e.Size)
}

// Stats accumulates counters and recovered errors over one run.
// It is mutated incrementally during ingestion and finalized when the
// summary and reports are produced.
type Stats struct {
	FilesProcessed  int `json:"files_processed"`
	TimestampsFixed int `json:"timestamps_fixed"`
	DuplicateGroups int `json:"duplicate_groups"`
	Favorites       int `json:"favorites"`
	Hidden          int `json:"hidden_files"`
	Deleted         int `json:"deleted_files"`

	// Errors holds every recovered error in the order it occurred.
	// Fatal errors abort the run and never land here.
	Errors []string `json:"errors"`
}

// RecordError appends a recovered error message to the ordered log.
func (s *Stats) RecordError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// ErrorPreview returns up to n leading error messages for the summary.
func (s *Stats) ErrorPreview(n int) []string {
	if n <= 0 || len(s.Errors) <= n {
		return s.Errors
	}
	return s.Errors[:n]
}

// ParseFlag maps a CSV flag column to a bool. Apple's export writes the
// literal "yes" for true; anything else is false.
func ParseFlag(s string) bool {
	return s == "yes"
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units, e.g. "1.5 MiB".
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
