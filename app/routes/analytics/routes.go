package analytics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analytics := app.Group("/api/analytics", auth.AuthMiddleware)

	analytics.Get("/data", GetAnalyticsDataAPI)
}
