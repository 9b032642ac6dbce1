package organize

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/restamp/restamp/pkg/restamp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEntry(t *testing.T, dir, name, content string, capturedAt *time.Time) types.Entry {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return types.Entry{
		Path:       path,
		Name:       name,
		Checksum:   "sum-" + name,
		CapturedAt: capturedAt,
		Size:       int64(len(content)),
	}
}

func TestOrganizer_Run(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()

	sept := time.Date(2023, time.September, 16, 17, 27, 0, 0, time.UTC)
	jan := time.Date(2020, time.January, 2, 8, 0, 0, 0, time.UTC)

	entries := []types.Entry{
		fixtureEntry(t, src, "a.jpg", "aaa", &sept),
		fixtureEntry(t, src, "b.jpg", "bbb", &jan),
		fixtureEntry(t, src, "nodate.jpg", "ccc", nil),
	}

	org := New(out, false)
	copied, errs := org.Run(entries)
	assert.Equal(t, 2, copied)
	assert.Empty(t, errs)

	data, err := os.ReadFile(filepath.Join(out, "2023", "09", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "aaa", string(data))

	data, err = os.ReadFile(filepath.Join(out, "2020", "01", "b.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "bbb", string(data))

	// Entries without a capture time are skipped silently.
	_, err = os.Stat(filepath.Join(out, "nodate.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Sources are copied, never moved.
	for _, e := range entries {
		_, err := os.Stat(e.Path)
		assert.NoError(t, err, "source %s must remain", e.Path)
	}
}

func TestOrganizer_RunIsIdempotent(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	sept := time.Date(2023, time.September, 16, 17, 27, 0, 0, time.UTC)
	entries := []types.Entry{fixtureEntry(t, src, "a.jpg", "same-bytes", &sept)}

	org := New(out, false)
	target := filepath.Join(out, "2023", "09", "a.jpg")

	_, errs := org.Run(entries)
	require.Empty(t, errs)
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	_, errs = org.Run(entries)
	require.Empty(t, errs)
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOrganizer_Simulate(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := t.TempDir()
	sept := time.Date(2023, time.September, 16, 17, 27, 0, 0, time.UTC)
	entries := []types.Entry{fixtureEntry(t, src, "a.jpg", "aaa", &sept)}

	org := New(out, true)
	copied, errs := org.Run(entries)
	assert.Zero(t, copied)
	assert.Empty(t, errs)

	// No directory or file was created under the output root.
	dirEntries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, dirEntries)
}

func TestOrganizer_MissingSourceIsRecovered(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	sept := time.Date(2023, time.September, 16, 17, 27, 0, 0, time.UTC)
	entries := []types.Entry{{
		Path:       filepath.Join(t.TempDir(), "gone.jpg"),
		Name:       "gone.jpg",
		CapturedAt: &sept,
	}}

	org := New(out, false)
	copied, errs := org.Run(entries)
	assert.Zero(t, copied)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "gone.jpg")
}
