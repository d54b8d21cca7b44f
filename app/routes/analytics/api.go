package analytics

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// GetAnalyticsDataAPI assembles the aggregate dashboard from read-only
// queries. It never mutates anything.
func GetAnalyticsDataAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	data := &models.AnalyticsData{}
	var err error

	if data.TotalStudents, err = database.CountActiveUsersByRole(db, models.RoleStudent); err != nil {
		return analyticsError(c, err)
	}
	if data.TotalTeachers, err = database.CountActiveUsersByRole(db, models.RoleTeacher); err != nil {
		return analyticsError(c, err)
	}
	if data.TotalClasses, err = database.CountClasses(db); err != nil {
		return analyticsError(c, err)
	}

	total, present, err := database.CountAttendance(db)
	if err != nil {
		return analyticsError(c, err)
	}
	data.OverallAttendance = models.Percent(present, total)

	now := time.Now().UTC()
	todayStart, tomorrowStart := TodayWindow(now)
	todayTotal, todayPresent, err := database.CountAttendanceBetween(db, todayStart, tomorrowStart)
	if err != nil {
		return analyticsError(c, err)
	}
	data.TodayAttendance = models.Percent(todayPresent, todayTotal)

	if data.SubjectAttendance, err = database.GetSubjectAttendance(db); err != nil {
		return analyticsError(c, err)
	}
	if data.ClassPerformance, err = database.GetClassPerformance(db); err != nil {
		return analyticsError(c, err)
	}

	counts, err := database.GetMonthlyAttendanceCounts(db, TrendStart(now))
	if err != nil {
		return analyticsError(c, err)
	}
	data.MonthlyTrend = BuildMonthlyTrend(counts, now)

	if data.RecentActivity, err = database.GetRecentAttendanceActivity(db, 10); err != nil {
		return analyticsError(c, err)
	}

	return c.JSON(data)
}

func analyticsError(c *fiber.Ctx, err error) error {
	log.Printf("Analytics error: %v", err)
	return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch analytics data"})
}
