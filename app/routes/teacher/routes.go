package teacher

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
)

func SetupTeacherRoutes(app *fiber.App) {
	teacher := app.Group("/api/teacher",
		auth.AuthMiddleware,
		auth.RequireRole(models.RoleTeacher, models.RoleAdmin),
	)

	teacher.Get("/classes", GetMyClassesAPI)
	teacher.Get("/classes/:classId/students", GetClassStudentsAPI)
	teacher.Post("/attendance/mark", MarkAttendanceAPI)
	teacher.Get("/attendance/report", AttendanceReportAPI)
}
