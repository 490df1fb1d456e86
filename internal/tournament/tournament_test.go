package tournament

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusLive.Valid())
	assert.True(t, StatusUpcoming.Valid())
	assert.True(t, StatusCompleted.Valid())

	assert.False(t, Status("").Valid())
	assert.False(t, Status("live").Valid())
	assert.False(t, Status("CANCELLED").Valid())
}

func TestParseStartTime(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "UTC designator",
			input:    "2025-01-01T00:00:00Z",
			expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "offset is normalized to UTC",
			input:    "2025-01-01T02:30:00+02:00",
			expected: time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			input:    "2025-01-01T00:00:00.25Z",
			expected: time.Date(2025, 1, 1, 0, 0, 0, 250_000_000, time.UTC),
		},
		{
			name:     "no zone",
			input:    "2025-03-04T05:06:07",
			expected: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		},
		{
			name:     "datetime-local without seconds",
			input:    "2025-03-04T05:06",
			expected: time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseStartTime(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
			assert.Equal(t, time.UTC, actual.Location())
		})
	}
}

func TestParseStartTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2025-13-01T00:00:00Z", "01/02/2025"} {
		_, err := ParseStartTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestChangesColumns(t *testing.T) {
	changes := Changes{
		"title":      "Spring Cup",
		"status":     StatusLive,
		"game_name":  "Chess",
		"start_time": time.Now(),
	}

	assert.Equal(t, []string{"game_name", "start_time", "status", "title"}, changes.Columns())
	assert.Empty(t, Changes{}.Columns())
}

func TestIsLive(t *testing.T) {
	assert.True(t, (&Tournament{Status: StatusLive}).IsLive())
	assert.False(t, (&Tournament{Status: StatusUpcoming}).IsLive())
}
