package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEndTime(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"09:00", "10:00"},
		{"13:45", "14:45"},
		{"00:00", "01:00"},
		{"23:00", "00:00"},
		{"23:30", "00:30"},
		{"23:59", "00:59"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := DefaultEndTime(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultEndTime_Invalid(t *testing.T) {
	for _, start := range []string{"", "25:00", "9:0:0", "noon"} {
		_, err := DefaultEndTime(start)
		assert.Error(t, err, "start %q", start)
	}
}

func TestMinStartTime(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 35, 50, 0, time.UTC)

	t.Run("today uses the current clock", func(t *testing.T) {
		today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "14:35", MinStartTime(today, now))
	})

	t.Run("future date opens at midnight", func(t *testing.T) {
		tomorrow := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "00:00", MinStartTime(tomorrow, now))
	})

	t.Run("past date also reports midnight", func(t *testing.T) {
		yesterday := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "00:00", MinStartTime(yesterday, now))
	})
}
