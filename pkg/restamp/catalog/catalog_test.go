package catalog

import (
	"testing"
	"time"

	"github.com/restamp/restamp/pkg/restamp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name, checksum string) types.Entry {
	return types.Entry{
		Path:     "/photos/" + name,
		Name:     name,
		Checksum: checksum,
		Size:     100,
	}
}

func TestCatalog_Duplicates(t *testing.T) {
	t.Parallel()

	t.Run("all unique yields empty result", func(t *testing.T) {
		t.Parallel()
		c := New()
		c.Add(entry("a.jpg", "s1"))
		c.Add(entry("b.jpg", "s2"))
		c.Add(entry("c.jpg", "s3"))

		assert.Empty(t, c.Duplicates())
	})

	t.Run("one shared checksum yields one group", func(t *testing.T) {
		t.Parallel()
		c := New()
		c.Add(entry("a.jpg", "shared"))
		c.Add(entry("b.jpg", "shared"))
		c.Add(entry("c.jpg", "unique"))

		dupes := c.Duplicates()
		require.Len(t, dupes, 1)
		assert.Len(t, dupes["shared"], 2)
	})

	t.Run("all N entries sharing one checksum yield one group of size N", func(t *testing.T) {
		t.Parallel()
		c := New()
		for _, name := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"} {
			c.Add(entry(name, "same"))
		}

		dupes := c.Duplicates()
		require.Len(t, dupes, 1)
		assert.Len(t, dupes["same"], 5)
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, New().Duplicates())
	})
}

func TestCatalog_FlagFilters(t *testing.T) {
	t.Parallel()

	c := New()
	fav := entry("fav.jpg", "s1")
	fav.Favorite = true
	del := entry("del.jpg", "s2")
	del.Deleted = true
	hid := entry("hid.jpg", "s3")
	hid.Hidden = true
	plain := entry("plain.jpg", "s4")

	c.Add(fav)
	c.Add(del)
	c.Add(hid)
	c.Add(plain)

	require.Len(t, c.Favorites(), 1)
	assert.Equal(t, "fav.jpg", c.Favorites()[0].Name)

	require.Len(t, c.Deleted(), 1)
	assert.Equal(t, "del.jpg", c.Deleted()[0].Name)

	require.Len(t, c.Hidden(), 1)
	assert.Equal(t, "hid.jpg", c.Hidden()[0].Name)

	assert.Equal(t, 4, c.Len())
}

func TestCatalog_YearCounts(t *testing.T) {
	t.Parallel()

	c := New()
	t2020 := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	t2023a := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	t2023b := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	e1 := entry("a.jpg", "s1")
	e1.CapturedAt = &t2020
	e2 := entry("b.jpg", "s2")
	e2.CapturedAt = &t2023a
	e3 := entry("c.jpg", "s3")
	e3.CapturedAt = &t2023b
	e4 := entry("d.jpg", "s4") // no capture time, not counted

	for _, e := range []types.Entry{e1, e2, e3, e4} {
		c.Add(e)
	}

	counts := c.YearCounts()
	assert.Equal(t, map[int]int{2020: 1, 2023: 2}, counts)
}

func TestCatalog_ExtCounts(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(entry("a.JPG", "s1"))
	c.Add(entry("b.jpg", "s2"))
	c.Add(entry("c.mov", "s3"))

	assert.Equal(t, map[string]int{".jpg": 2, ".mov": 1}, c.ExtCounts())
}

func TestCatalog_TotalSize(t *testing.T) {
	t.Parallel()

	c := New()
	e1 := entry("a.jpg", "s1")
	e1.Size = 1000
	e2 := entry("b.jpg", "s2")
	e2.Size = 2500
	c.Add(e1)
	c.Add(e2)

	assert.Equal(t, int64(3500), c.TotalSize())
}

func TestCatalog_Checksums(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(entry("a.jpg", "zz"))
	c.Add(entry("b.jpg", "aa"))
	c.Add(entry("c.jpg", "mm"))

	assert.Equal(t, []string{"aa", "mm", "zz"}, c.Checksums())
}
