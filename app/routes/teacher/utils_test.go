package teacher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 3, 15, 23, 45, 12, 999, time.UTC)
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)

	// Already-truncated input is unchanged.
	assert.Equal(t, got, TruncateToDay(got))
}

func TestBuildSummary(t *testing.T) {
	records := []*models.Attendance{
		{Status: models.Present},
		{Status: models.Present},
		{Status: models.Absent},
		{Status: models.Late},
	}

	summary := BuildSummary(records)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 50, summary.PresentPercentage)
	assert.Equal(t, 25, summary.AbsentPercentage)
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.PresentPercentage)
	assert.Equal(t, 0, summary.AbsentPercentage)
}
