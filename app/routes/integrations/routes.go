package integrations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
)

func SetupIntegrationsRoutes(app *fiber.App) {
	integrations := app.Group("/api/integrations", auth.AuthMiddleware)

	integrations.Post("/qr/generate",
		auth.RequireRole(models.RoleTeacher, models.RoleAdmin), GenerateQRAPI)
	integrations.Post("/qr/mark", MarkQRAttendanceAPI)
	integrations.Get("/export",
		auth.RequireRole(models.RoleAdmin), ExportDataAPI)
}
