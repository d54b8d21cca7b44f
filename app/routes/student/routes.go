package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/api/student",
		auth.AuthMiddleware,
		auth.RequireRole(models.RoleStudent),
	)

	student.Get("/attendance", GetMyAttendanceAPI)
	student.Get("/classes", GetMyClassesAPI)
}
