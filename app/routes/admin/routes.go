package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))

	admin.Get("/pending-users", GetPendingUsersAPI)
	admin.Post("/approve-user", ApproveUserAPI)
	admin.Post("/reject-user", RejectUserAPI)

	admin.Post("/create-class", CreateClassAPI)
	admin.Post("/create-subject", CreateSubjectAPI)

	admin.Post("/assign-student", AssignStudentAPI)
	admin.Post("/unassign-student", UnassignStudentAPI)
	admin.Post("/assign-teacher", AssignTeacherAPI)
	admin.Post("/unassign-teacher", UnassignTeacherAPI)

	admin.Delete("/classes/:id", DeleteClassAPI)
	admin.Delete("/subjects/:id", DeleteSubjectAPI)

	admin.Get("/users", GetAllUsersAPI)
	admin.Get("/classes", GetAllClassesAPI)
	admin.Get("/subjects", GetAllSubjectsAPI)
	admin.Get("/students", GetAllStudentsAPI)
	admin.Get("/teachers", GetAllTeachersAPI)
}
