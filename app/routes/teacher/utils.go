package teacher

import (
	"time"

	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

const dayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a UTC midnight timestamp. All
// attendance dates are stored at day granularity.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDay(t), nil
}

// TruncateToDay drops the time-of-day component, keeping the UTC calendar
// date.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildSummary tallies a report's records. Empty input yields all-zero
// percentages rather than an error.
func BuildSummary(records []*models.Attendance) models.ReportSummary {
	summary := models.ReportSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.Present:
			summary.Present++
		case models.Absent:
			summary.Absent++
		case models.Late:
			summary.Late++
		}
	}
	summary.PresentPercentage = models.Percent(summary.Present, summary.Total)
	summary.AbsentPercentage = models.Percent(summary.Absent, summary.Total)
	return summary
}
