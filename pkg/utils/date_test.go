package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "iso date",
			input:    "2026-03-05",
			expected: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slash date",
			input:    "05/03/2026",
			expected: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339",
			input:    "2026-03-05T10:30:00Z",
			expected: time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "unsupported layout",
			input:   "March 5, 2026",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 45, 12, 300, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), StartOfDay(at))
	assert.Equal(t, time.Date(2026, time.March, 5, 23, 59, 59, 0, time.UTC), EndOfDay(at))
}
