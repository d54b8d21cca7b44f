package student

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// GetMyAttendanceAPI returns the caller's own history, newest first.
func GetMyAttendanceAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	attendance, err := database.GetAttendanceByStudent(config.GetDB(), user.ID)
	if err != nil {
		log.Printf("Get student attendance error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": attendance})
}

func GetMyClassesAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classes, err := database.GetClassesByStudent(config.GetDB(), user.ID)
	if err != nil {
		log.Printf("Get student classes error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{"success": true, "classes": classes})
}
