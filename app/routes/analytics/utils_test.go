package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
)

func TestTrendStart(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), TrendStart(now))

	// January window reaches back into the previous year.
	now = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), TrendStart(now))
}

func TestBuildMonthlyTrend(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	counts := []database.MonthCounts{
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Total: 10, Present: 8},
		{Month: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Total: 4, Present: 1},
	}

	trend := BuildMonthlyTrend(counts, now)
	assert.Len(t, trend, MonthsOfTrend)

	// Oldest month first: Sep 2025 ... Aug 2026.
	assert.Equal(t, 80, trend[11])
	assert.Equal(t, 25, trend[9])
	for i := 0; i < 9; i++ {
		assert.Equal(t, 0, trend[i], "month index %d should be empty", i)
	}
}

func TestBuildMonthlyTrendEmpty(t *testing.T) {
	trend := BuildMonthlyTrend(nil, time.Now())
	assert.Len(t, trend, MonthsOfTrend)
	for _, v := range trend {
		assert.Equal(t, 0, v)
	}
}

func TestTodayWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
	start, end := TodayWindow(now)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), end)

	// Month boundary rolls over cleanly.
	start, end = TodayWindow(time.Date(2026, 1, 31, 5, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), end)
}
