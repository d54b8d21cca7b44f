package integrations

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/helpers"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// GenerateQRAPI stamps a session payload for a class/subject pair. Clients
// render the payload string as a QR image themselves.
func GenerateQRAPI(c *fiber.Ctx) error {
	type Request struct {
		ClassID   string `json:"class_id" validate:"required,uuid"`
		SubjectID string `json:"subject_id" validate:"required,uuid"`
		Duration  int    `json:"duration"`
	}

	user := c.Locals("user").(*models.User)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()

	class, err := database.GetClassByID(db, req.ClassID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class or subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}
	if _, err := database.GetSubjectByID(db, req.SubjectID); err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class or subject not found"})
	}

	if !user.IsAdmin() && !class.TeachesSubject(user.ID, req.SubjectID) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Access denied"})
	}

	payload := NewQRPayload(req.ClassID, req.SubjectID, user.ID, req.Duration, time.Now())
	qrData, err := payload.Encode()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate QR code"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"qr_data":    qrData,
		"expires_in": payload.Duration,
	})
}

// MarkQRAttendanceAPI records a student as present from a scanned payload.
// Unlike roster marking this path never overwrites an existing record.
func MarkQRAttendanceAPI(c *fiber.Ctx) error {
	type Request struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		QRData    string `json:"qr_data" validate:"required"`
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	payload, err := DecodeQRPayload(req.QRData)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid QR code data"})
	}
	if payload.Expired(time.Now()) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "QR code has expired"})
	}

	db := config.GetDB()

	student, err := database.GetUserByID(db, req.StudentID)
	if err != nil || student.Role != models.RoleStudent || !student.IsActive {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found or not active"})
	}

	inClass, err := database.StudentInClass(db, req.StudentID, payload.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}
	if !inClass {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Student not in this class"})
	}

	today := time.Now().UTC()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	exists, err := database.AttendanceExists(db, req.StudentID, payload.SubjectID, day)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Attendance already marked for today"})
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		ClassID:   payload.ClassID,
		SubjectID: payload.SubjectID,
		Date:      day,
		Status:    models.Present,
		MarkedBy:  payload.TeacherID,
	}
	if err := database.InsertAttendance(db, record); err != nil {
		if err == database.ErrDuplicateRecord {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Attendance already marked for today"})
		}
		log.Printf("QR mark attendance error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to mark attendance"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Attendance marked successfully via QR code"})
}

// ExportDataAPI lists identities for external systems.
func ExportDataAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	classes, err := database.GetAllClasses(db)
	if err != nil {
		return exportError(c, err)
	}
	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return exportError(c, err)
	}
	students, err := database.GetActiveUsersByRole(db, models.RoleStudent)
	if err != nil {
		return exportError(c, err)
	}
	teachers, err := database.GetActiveUsersByRole(db, models.RoleTeacher)
	if err != nil {
		return exportError(c, err)
	}

	return c.JSON(fiber.Map{
		"classes":  classes,
		"subjects": subjects,
		"students": students,
		"teachers": teachers,
	})
}

func exportError(c *fiber.Ctx, err error) error {
	log.Printf("Export data error: %v", err)
	return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch data"})
}
