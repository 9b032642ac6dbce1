package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlag(t *testing.T) {
	t.Parallel()

	assert.True(t, ParseFlag("yes"))
	assert.False(t, ParseFlag("no"))
	assert.False(t, ParseFlag(""))
	assert.False(t, ParseFlag("YES"))
	assert.False(t, ParseFlag("true"))
	assert.False(t, ParseFlag("yes "))
}

func TestEntry_Ext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"IMG_0001.JPG", ".jpg"},
		{"clip.MOV", ".mov"},
		{"photo.heic", ".heic"},
		{"noext", ""},
	}

	for _, tt := range tests {
		e := Entry{Name: tt.name}
		assert.Equal(t, tt.want, e.Ext(), "name %q", tt.name)
	}
}

func TestStats_RecordError(t *testing.T) {
	t.Parallel()

	var s Stats
	s.RecordError("first")
	s.RecordError("second")
	s.RecordError("third")

	assert.Equal(t, []string{"first", "second", "third"}, s.Errors)
}

func TestStats_ErrorPreview(t *testing.T) {
	t.Parallel()

	var s Stats
	for _, msg := range []string{"a", "b", "c", "d"} {
		s.RecordError(msg)
	}

	assert.Equal(t, []string{"a", "b"}, s.ErrorPreview(2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.ErrorPreview(10))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.ErrorPreview(0))
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "1.0 KiB", FormatSize(KiB))
	assert.Equal(t, "1.5 MiB", FormatSize(MiB+MiB/2))
	assert.Equal(t, "2.0 GiB", FormatSize(2*GiB))
}
