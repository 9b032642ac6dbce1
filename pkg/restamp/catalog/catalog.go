// Package catalog holds the in-memory catalog built during one run:
// every entry ingested from the metadata CSVs plus a checksum-keyed
// multimap used for duplicate detection.
//
// The catalog trusts the checksums supplied by the CSV input. It never
// recomputes or verifies a hash; two entries are "duplicates" exactly
// when the export said they share a checksum.
package catalog

import (
	"sort"

	"github.com/restamp/restamp/pkg/restamp/types"
)

// Catalog is the run-scoped collection of ingested entries.
// It is not safe for concurrent use; ingestion is sequential.
type Catalog struct {
	entries    []types.Entry
	byChecksum map[string][]types.Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		byChecksum: make(map[string][]types.Entry),
	}
}

// Add appends an entry to the flat catalog and the checksum multimap.
func (c *Catalog) Add(e types.Entry) {
	c.entries = append(c.entries, e)
	c.byChecksum[e.Checksum] = append(c.byChecksum[e.Checksum], e)
}

// Entries returns all cataloged entries in ingestion order.
func (c *Catalog) Entries() []types.Entry {
	return c.entries
}

// Len returns the number of cataloged entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Duplicates returns the checksum groups with more than one member,
// keyed by checksum. A catalog with all-unique checksums yields an
// empty map.
func (c *Catalog) Duplicates() map[string][]types.Entry {
	dupes := make(map[string][]types.Entry)
	for checksum, group := range c.byChecksum {
		if len(group) > 1 {
			dupes[checksum] = group
		}
	}
	return dupes
}

// Favorites returns the entries flagged favorite, in ingestion order.
func (c *Catalog) Favorites() []types.Entry {
	return c.filter(func(e types.Entry) bool { return e.Favorite })
}

// Deleted returns the entries flagged deleted, in ingestion order.
func (c *Catalog) Deleted() []types.Entry {
	return c.filter(func(e types.Entry) bool { return e.Deleted })
}

// Hidden returns the entries flagged hidden, in ingestion order.
func (c *Catalog) Hidden() []types.Entry {
	return c.filter(func(e types.Entry) bool { return e.Hidden })
}

func (c *Catalog) filter(keep func(types.Entry) bool) []types.Entry {
	var out []types.Entry
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// YearCounts returns the number of entries per capture year. Entries
// without a capture time are not counted.
func (c *Catalog) YearCounts() map[int]int {
	counts := make(map[int]int)
	for _, e := range c.entries {
		if e.CapturedAt != nil {
			counts[e.CapturedAt.Year()]++
		}
	}
	return counts
}

// ExtCounts returns the number of entries per lowercased file
// extension (including the dot).
func (c *Catalog) ExtCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range c.entries {
		counts[e.Ext()]++
	}
	return counts
}

// TotalSize returns the sum of all entry sizes in bytes.
func (c *Catalog) TotalSize() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.Size
	}
	return total
}

// Checksums returns the sorted list of distinct checksums, mainly for
// deterministic logging.
func (c *Catalog) Checksums() []string {
	keys := make([]string, 0, len(c.byChecksum))
	for k := range c.byChecksum {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
