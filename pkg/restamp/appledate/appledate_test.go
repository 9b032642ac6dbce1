package appledate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "afternoon",
			input: "Saturday September 16,2023 5:27 PM GMT",
			want:  time.Date(2023, time.September, 16, 17, 27, 0, 0, time.UTC),
		},
		{
			name:  "morning",
			input: "Monday January 1,2024 9:05 AM GMT",
			want:  time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC),
		},
		{
			name:  "noon",
			input: "Friday July 4,2014 12:00 PM GMT",
			want:  time.Date(2014, time.July, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "midnight",
			input: "Friday July 4,2014 12:00 AM GMT",
			want:  time.Date(2014, time.July, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "padded hour",
			input: "Sunday December 31,2017 05:27 PM GMT",
			want:  time.Date(2017, time.December, 31, 17, 27, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"single token", "Saturday"},
		{"two tokens", "Saturday GMT"},
		{"iso date", "2023-09-16T17:27:00Z"},
		{"missing time", "Saturday September 16,2023 GMT"},
		{"bad month", "Saturday Nonember 16,2023 5:27 PM GMT"},
		{"day out of range", "Saturday September 99,2023 5:27 PM GMT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}
