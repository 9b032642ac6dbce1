// Package ingest drives the CSV-to-filesystem reconciliation pass:
// discovering export-part directories, reading the sidecar metadata
// files row by row, repairing file timestamps and filling the run
// catalog.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/restamp/restamp/pkg/restamp/appledate"
	"github.com/restamp/restamp/pkg/restamp/catalog"
	"github.com/restamp/restamp/pkg/restamp/logging"
	"github.com/restamp/restamp/pkg/restamp/timestamp"
	"github.com/restamp/restamp/pkg/restamp/types"
)

// ErrNoMetadata indicates that no metadata files matched the pattern.
var ErrNoMetadata = errors.New("no metadata files found")

// Options configures an ingestion run.
type Options struct {
	// DirPattern is the glob matched against export-part directory names.
	DirPattern string

	// CSVPattern is the glob matched against metadata file names.
	CSVPattern string

	// Simulate disables filesystem mutation.
	Simulate bool
}

// Ingester runs the reconciliation pass and owns its run state.
type Ingester struct {
	opts    Options
	catalog *catalog.Catalog
	stats   *types.Stats
	setter  *timestamp.Setter
	logger  *logging.Logger
}

// New returns an Ingester with an empty catalog and zeroed statistics.
func New(opts Options) *Ingester {
	return &Ingester{
		opts:    opts,
		catalog: catalog.New(),
		stats:   &types.Stats{},
		setter:  timestamp.NewSetter(opts.Simulate),
		logger:  logging.Get("ingest"),
	}
}

// Catalog returns the catalog built so far.
func (ing *Ingester) Catalog() *catalog.Catalog {
	return ing.catalog
}

// Stats returns the run statistics accumulated so far.
func (ing *Ingester) Stats() *types.Stats {
	return ing.stats
}

// ProcessBase discovers export-part directories under base and
// processes the metadata files of each. A part directory without
// metadata files logs a warning and is skipped; it is not fatal.
func (ing *Ingester) ProcessBase(base string) error {
	dirs, err := DiscoverPartDirs(base, ing.opts.DirPattern)
	if err != nil {
		return err
	}
	ing.logger.Info("found export-part directories", "count", len(dirs), "base", base)

	for _, dir := range dirs {
		csvFiles, err := FindMetadataFiles(dir, ing.opts.CSVPattern)
		if err != nil {
			ing.recordError(fmt.Sprintf("searching %s: %v", dir, err))
			continue
		}
		if len(csvFiles) == 0 {
			ing.logger.Warn("no metadata files in directory", "dir", dir)
			continue
		}
		for _, csvFile := range csvFiles {
			ing.ProcessMetadataFile(csvFile)
		}
	}

	return nil
}

// ProcessSingleDir processes one directory's metadata files directly,
// without export-part discovery. It returns ErrNoMetadata when the
// directory contains no matching metadata file.
func (ing *Ingester) ProcessSingleDir(dir string) error {
	csvFiles, err := FindMetadataFiles(dir, ing.opts.CSVPattern)
	if err != nil {
		return err
	}
	if len(csvFiles) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMetadata, dir)
	}

	for _, csvFile := range csvFiles {
		ing.ProcessMetadataFile(csvFile)
	}
	return nil
}

// ProcessMetadataFile reads one metadata CSV and reconciles each row
// against the directory the CSV lives in. Row-level problems are
// logged and recorded; only an unreadable file aborts that file's
// remaining rows.
func (ing *Ingester) ProcessMetadataFile(path string) {
	ing.logger.Info("processing metadata file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		ing.recordError(fmt.Sprintf("opening metadata file %s: %v", path, err))
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated per row against the header

	header, err := r.Read()
	if err != nil {
		ing.recordError(fmt.Sprintf("reading header of %s: %v", path, err))
		return
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"imgName", "fileChecksum", "originalCreationDate"} {
		if _, ok := cols[required]; !ok {
			ing.recordError(fmt.Sprintf("metadata file %s: missing column %q", path, required))
			return
		}
	}

	dir := filepath.Dir(path)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.Reader recovers at the next row for quoting and field
			// count problems; record and keep going.
			ing.recordError(fmt.Sprintf("reading row in %s: %v", path, err))
			continue
		}
		ing.processRow(dir, cols, row)
	}
}

// processRow reconciles one CSV row: resolve the referenced file,
// parse the recorded capture date, repair the file timestamp and
// catalog the entry.
func (ing *Ingester) processRow(dir string, cols map[string]int, row []string) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	imgName := field("imgName")
	if imgName == "" {
		ing.recordError(fmt.Sprintf("row in %s has empty imgName", dir))
		return
	}

	filePath := filepath.Join(dir, imgName)
	info, err := os.Stat(filePath)
	if err != nil {
		ing.logger.Warn("file not found", "path", filePath)
		return
	}

	var capturedAt *time.Time
	if raw := field("originalCreationDate"); raw != "" {
		t, err := appledate.Parse(raw)
		if err != nil {
			ing.logger.Error("failed to parse date", "value", raw, "file", imgName)
			ing.recordError(fmt.Sprintf("parsing date %q for %s: %v", raw, imgName, err))
		} else {
			capturedAt = &t
		}
	}

	viewCount, err := strconv.Atoi(field("viewCount"))
	if err != nil {
		viewCount = 0
	}

	entry := types.Entry{
		Path:       filePath,
		Name:       imgName,
		Checksum:   field("fileChecksum"),
		Favorite:   types.ParseFlag(field("favorite")),
		Hidden:     types.ParseFlag(field("hidden")),
		Deleted:    types.ParseFlag(field("deleted")),
		CapturedAt: capturedAt,
		ViewCount:  viewCount,
		Size:       info.Size(),
	}
	ing.catalog.Add(entry)

	ing.stats.FilesProcessed++
	if entry.Favorite {
		ing.stats.Favorites++
	}
	if entry.Hidden {
		ing.stats.Hidden++
	}
	if entry.Deleted {
		ing.stats.Deleted++
	}

	if capturedAt != nil {
		if err := ing.setter.Set(filePath, *capturedAt); err != nil {
			ing.logger.Error("failed to set timestamp", "path", filePath, "error", err)
			ing.recordError(err.Error())
		} else {
			ing.stats.TimestampsFixed++
		}
	}
}

func (ing *Ingester) recordError(msg string) {
	ing.logger.Error(msg)
	ing.stats.RecordError(msg)
}
