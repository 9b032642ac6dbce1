// Package report produces the JSON summary documents of a run:
// statistics, duplicate groups, favorites and deleted files. Documents
// are written atomically (temp file plus rename) and only outside
// simulate mode; duplicate detection itself always runs so its log
// output stays visible in dry runs.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/restamp/restamp/pkg/restamp/catalog"
	"github.com/restamp/restamp/pkg/restamp/logging"
	"github.com/restamp/restamp/pkg/restamp/types"
)

// Report file names.
const (
	StatisticsFile = "photo_statistics.json"
	DuplicatesFile = "duplicates.json"
	FavoritesFile  = "favorites.json"
	DeletedFile    = "deleted_files.json"
)

// Statistics is the photo_statistics.json document: the run counters
// plus derived breakdowns over the catalog.
type Statistics struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	types.Stats

	// Years maps capture year to entry count.
	Years map[int]int `json:"years"`

	// FileTypes maps lowercased extension to entry count.
	FileTypes map[string]int `json:"file_types"`

	TotalSizeBytes int64   `json:"total_size_bytes"`
	TotalSizeGiB   float64 `json:"total_size_gb"`
	TotalSizeHuman string  `json:"total_size_human"`
}

// Generator writes the report documents for one run.
type Generator struct {
	// Dir is the output directory for the JSON documents.
	Dir string

	// Simulate suppresses all file writes; documents are still built
	// and duplicate groups still logged.
	Simulate bool

	runID  string
	logger *logging.Logger
}

// New returns a Generator writing into dir.
func New(dir string, simulate bool) *Generator {
	return &Generator{
		Dir:      dir,
		Simulate: simulate,
		runID:    uuid.NewString(),
		logger:   logging.Get("report"),
	}
}

// RunID returns the identifier stamped into this run's statistics
// document.
func (g *Generator) RunID() string {
	return g.runID
}

// Generate builds and writes all report documents. The duplicates,
// favorites and deleted documents are written only when non-empty.
// Stats.DuplicateGroups is updated with the detected group count.
func (g *Generator) Generate(cat *catalog.Catalog, stats *types.Stats) error {
	dupes := g.DetectDuplicates(cat)
	stats.DuplicateGroups = len(dupes)

	statsDoc := g.buildStatistics(cat, stats)
	if err := g.writeDoc(StatisticsFile, statsDoc); err != nil {
		return err
	}

	if len(dupes) > 0 {
		if err := g.writeDoc(DuplicatesFile, dupes); err != nil {
			return err
		}
	}

	if favorites := cat.Favorites(); len(favorites) > 0 {
		if err := g.writeDoc(FavoritesFile, favorites); err != nil {
			return err
		}
	}

	if deleted := cat.Deleted(); len(deleted) > 0 {
		if err := g.writeDoc(DeletedFile, deleted); err != nil {
			return err
		}
	}

	if !g.Simulate {
		g.logger.Info("generated reports", "dir", g.Dir, "run_id", g.runID)
	}
	return nil
}

// DetectDuplicates returns the checksum groups with more than one
// member and logs each group. It runs in simulate mode too, so dry
// runs still surface duplicates.
func (g *Generator) DetectDuplicates(cat *catalog.Catalog) map[string][]types.Entry {
	dupes := cat.Duplicates()
	if len(dupes) == 0 {
		return dupes
	}

	g.logger.Info("found duplicate groups", "count", len(dupes))
	for _, checksum := range cat.Checksums() {
		group, ok := dupes[checksum]
		if !ok {
			continue
		}
		g.logger.Info("duplicate group", "checksum", checksum, "files", len(group))
		for _, e := range group {
			g.logger.Debug("duplicate member", "path", e.Path, "size", e.Size)
		}
	}
	return dupes
}

// buildStatistics combines the run counters with catalog breakdowns.
func (g *Generator) buildStatistics(cat *catalog.Catalog, stats *types.Stats) Statistics {
	totalSize := cat.TotalSize()
	return Statistics{
		RunID:          g.runID,
		GeneratedAt:    time.Now().UTC(),
		Stats:          *stats,
		Years:          cat.YearCounts(),
		FileTypes:      cat.ExtCounts(),
		TotalSizeBytes: totalSize,
		TotalSizeGiB:   float64(totalSize) / float64(types.GiB),
		TotalSizeHuman: types.FormatSize(totalSize),
	}
}

// writeDoc marshals doc and writes it atomically into Dir. Simulate
// mode logs the intended write and touches nothing.
func (g *Generator) writeDoc(name string, doc interface{}) error {
	if g.Simulate {
		g.logger.Info("dry run: would write report", "file", name)
		return nil
	}

	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	path := filepath.Join(g.Dir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", name, err)
	}

	g.logger.Debug("wrote report", "path", path)
	return nil
}
