package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/admin"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/analytics"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/auth"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/integrations"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/student"
	"github.com/waseemakhtar47/a-m-s-1/app/routes/teacher"
)

// apiErrorHandler renders every error as JSON. The service has no web UI.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database and Redis connections
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup admin routes
	admin.SetupAdminRoutes(app)

	// Setup teacher routes
	teacher.SetupTeacherRoutes(app)

	// Setup student routes
	student.SetupStudentRoutes(app)

	// Setup analytics routes
	analytics.SetupAnalyticsRoutes(app)

	// Setup integrations routes
	integrations.SetupIntegrationsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
