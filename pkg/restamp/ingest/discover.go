package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// DiscoverPartDirs returns the sorted subdirectories of base whose
// names match pattern (an export-part glob such as
// "iCloudPhotosPart*of*").
func DiscoverPartDirs(base, pattern string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading base directory %s: %w", base, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid directory pattern %q: %w", pattern, err)
		}
		if matched {
			dirs = append(dirs, filepath.Join(base, entry.Name()))
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// FindMetadataFiles walks dir and returns the sorted paths of files
// whose base name matches pattern (e.g. "Photo Details*.csv").
// Exports occasionally nest the sidecar CSVs one level down, so the
// whole part directory is walked rather than just its top level.
func FindMetadataFiles(dir, pattern string) ([]string, error) {
	// Validate the pattern up front; fastwalk callbacks run concurrently
	// and a bad pattern should fail once, not per file.
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, fmt.Errorf("invalid metadata pattern %q: %w", pattern, err)
	}

	var (
		mu    sync.Mutex
		files []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			mu.Lock()
			files = append(files, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s for metadata files: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}
