package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", RegisterAPI)
	auth.Post("/login", LoginAPI)
	auth.Post("/otp/email", SendEmailOTPAPI)
	auth.Post("/otp/sms", SendSMSOTPAPI)
	auth.Post("/otp/verify", VerifyOTPAPI)
	auth.Post("/reset-password", ResetPasswordAPI)

	auth.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the bearer token and loads the full user record
// for the request.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if header := c.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token, authorization denied"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	if !user.IsActive && user.Role != models.RoleAdmin {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Account not activated"})
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Access denied"})
	}
}
