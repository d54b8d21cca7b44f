package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/helpers"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func GetPendingUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetPendingUsers(config.GetDB())
	if err != nil {
		log.Printf("Get pending users error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch pending users"})
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}

func ApproveUserAPI(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := database.SetUserActive(config.GetDB(), req.UserID, true)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		log.Printf("Approve user error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to approve user"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

func RejectUserAPI(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.DeleteUser(config.GetDB(), req.UserID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		log.Printf("Reject user error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to reject user"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User rejected successfully"})
}

func CreateClassAPI(c *fiber.Ctx) error {
	type Request struct {
		ClassName string `json:"class_name" validate:"required"`
		Section   string `json:"section" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	class := &models.Class{
		Name:    req.ClassName,
		Section: req.Section,
		Grade:   DeriveGrade(req.ClassName),
	}

	if err := database.CreateClass(config.GetDB(), class); err != nil {
		if err == database.ErrDuplicateClass {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class already exists"})
		}
		log.Printf("Create class error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create class"})
	}

	return c.JSON(fiber.Map{"success": true, "class": class})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type Request struct {
		SubjectName string `json:"subject_name" validate:"required"`
		SubjectCode string `json:"subject_code" validate:"required"`
		Description string `json:"description"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	subject := &models.Subject{
		Name:        req.SubjectName,
		Code:        req.SubjectCode,
		Description: req.Description,
	}

	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		if err == database.ErrDuplicateSubject {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Subject already exists"})
		}
		log.Printf("Create subject error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create subject"})
	}

	return c.JSON(fiber.Map{"success": true, "subject": subject})
}

func AssignStudentAPI(c *fiber.Ctx) error {
	type Request struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	err := database.AssignStudentToClass(config.GetDB(), req.StudentID, req.ClassID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student or class not found"})
		}
		log.Printf("Assign student error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to assign student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student assigned to class successfully"})
}

func UnassignStudentAPI(c *fiber.Ctx) error {
	type Request struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.UnassignStudent(config.GetDB(), req.StudentID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		log.Printf("Unassign student error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to unassign student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student unassigned successfully"})
}

func AssignTeacherAPI(c *fiber.Ctx) error {
	type Request struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
		SubjectID string `json:"subject_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()

	teacher, err := database.GetUserByID(db, req.TeacherID)
	if err != nil || teacher.Role != models.RoleTeacher {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
	}
	if _, err := database.GetClassByID(db, req.ClassID); err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
	}
	if _, err := database.GetSubjectByID(db, req.SubjectID); err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Subject not found"})
	}

	if err := database.AssignTeacherToClass(db, req.TeacherID, req.ClassID, req.SubjectID); err != nil {
		log.Printf("Assign teacher error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to assign teacher"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Teacher assigned successfully"})
}

func UnassignTeacherAPI(c *fiber.Ctx) error {
	type Request struct {
		ClassID   string `json:"class_id" validate:"required,uuid"`
		SubjectID string `json:"subject_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.UnassignTeacher(config.GetDB(), req.ClassID, req.SubjectID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		log.Printf("Unassign teacher error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to unassign teacher"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Teacher unassigned successfully"})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	if err := database.DeleteClass(config.GetDB(), classID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
		}
		log.Printf("Delete class error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Class deleted successfully"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	subjectID := c.Params("id")

	if err := database.DeleteSubject(config.GetDB(), subjectID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Subject not found"})
		}
		log.Printf("Delete subject error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete subject"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subject deleted successfully"})
}

func GetAllUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		log.Printf("Get users error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch users"})
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}

func GetAllClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		log.Printf("Get classes error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"success": true, "classes": classes})
}

func GetAllSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		log.Printf("Get subjects error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"success": true, "subjects": subjects})
}

func GetAllStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetActiveUsersByRole(config.GetDB(), models.RoleStudent)
	if err != nil {
		log.Printf("Get students error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"success": true, "students": students})
}

func GetAllTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetActiveUsersByRole(config.GetDB(), models.RoleTeacher)
	if err != nil {
		log.Printf("Get teachers error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"success": true, "teachers": teachers})
}
