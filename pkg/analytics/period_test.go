package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"7d", "30d", "90d", "month", "all"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, p)

	_, err = ParsePeriod("14d")
	require.Error(t, err)
}

func TestPeriodWindowBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("event exactly on the 7d boundary is inside", func(t *testing.T) {
		boundary := now.AddDate(0, 0, -7)
		assert.True(t, Period7d.Contains(now, boundary))
	})

	t.Run("event one second past the boundary is outside", func(t *testing.T) {
		outside := now.AddDate(0, 0, -7).Add(-time.Second)
		assert.False(t, Period7d.Contains(now, outside))
	})

	t.Run("month starts at the first of the calendar month", func(t *testing.T) {
		start := Period(PeriodMonth).WindowStart(now)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("all is unbounded", func(t *testing.T) {
		ancient := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, PeriodAll.Contains(now, ancient))
		assert.True(t, PeriodAll.WindowStart(now).IsZero())
	})
}
