package analytics

import (
	"time"

	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// MonthsOfTrend is how many calendar months the dashboard trend covers,
// current month included.
const MonthsOfTrend = 12

// TrendStart returns the first day of the oldest month in the trend window.
func TrendStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(MonthsOfTrend - 1), 0)
}

// BuildMonthlyTrend turns per-month tallies into the 12-value series the
// dashboard renders, oldest month first. Months without records report 0.
func BuildMonthlyTrend(counts []database.MonthCounts, now time.Time) []int {
	byMonth := make(map[time.Time]database.MonthCounts, len(counts))
	for _, mc := range counts {
		key := time.Date(mc.Month.Year(), mc.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[key] = mc
	}

	start := TrendStart(now)
	trend := make([]int, 0, MonthsOfTrend)
	for i := 0; i < MonthsOfTrend; i++ {
		month := start.AddDate(0, i, 0)
		mc := byMonth[month]
		trend = append(trend, models.Percent(mc.Present, mc.Total))
	}
	return trend
}

// TodayWindow returns [today 00:00, tomorrow 00:00) in UTC.
func TodayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
