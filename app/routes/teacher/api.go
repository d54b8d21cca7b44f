package teacher

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/helpers"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func GetMyClassesAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classes, err := database.GetClassesByTeacher(config.GetDB(), user.ID)
	if err != nil {
		log.Printf("Get teacher classes error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{"success": true, "classes": classes})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	classID := c.Params("classId")

	class, err := database.GetClassByID(config.GetDB(), classID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !user.IsAdmin() && !class.TaughtBy(user.ID) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Access denied to this class"})
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		log.Printf("Get class students error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{"success": true, "students": students})
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	type Request struct {
		ClassID        string            `json:"class_id" validate:"required,uuid"`
		SubjectID      string            `json:"subject_id" validate:"required,uuid"`
		Date           string            `json:"date" validate:"required"`
		AttendanceData map[string]string `json:"attendance_data" validate:"required,min=1"`
	}

	user := c.Locals("user").(*models.User)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	day, err := ParseDay(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
	}

	for studentID, status := range req.AttendanceData {
		if !models.ValidAttendanceStatus(status) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Invalid attendance status %q for student %s", status, studentID),
			})
		}
	}

	db := config.GetDB()

	class, err := database.GetClassByID(db, req.ClassID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !user.IsAdmin() && !class.TeachesSubject(user.ID, req.SubjectID) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Access denied"})
	}

	// Each student's row is written independently: a database failure is
	// logged and skipped, never aborting the rest of the batch.
	written := 0
	for studentID, status := range req.AttendanceData {
		record := &models.Attendance{
			StudentID: studentID,
			ClassID:   req.ClassID,
			SubjectID: req.SubjectID,
			Date:      day,
			Status:    models.AttendanceStatus(status),
			MarkedBy:  user.ID,
		}
		if err := database.UpsertAttendance(db, record); err != nil {
			log.Printf("Mark attendance: student %s: %v", studentID, err)
			continue
		}
		written++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance marked successfully",
		"records": written,
	})
}

func AttendanceReportAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	filters := database.AttendanceFilters{
		ClassID:   c.Query("class_id"),
		SubjectID: c.Query("subject_id"),
	}

	// Teachers only see records they marked; admins see everything.
	if !user.IsAdmin() {
		filters.MarkedBy = user.ID
	}

	if s := c.Query("start_date"); s != "" {
		start, err := ParseDay(s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid start_date. Use YYYY-MM-DD"})
		}
		filters.StartDate = &start
	}
	if s := c.Query("end_date"); s != "" {
		end, err := ParseDay(s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid end_date. Use YYYY-MM-DD"})
		}
		filters.EndDate = &end
	}

	records, err := database.GetAttendanceReport(config.GetDB(), filters)
	if err != nil {
		log.Printf("Attendance report error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance report"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  records,
		"summary": BuildSummary(records),
	})
}
