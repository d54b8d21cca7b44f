package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/helpers"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
	"github.com/waseemakhtar47/a-m-s-1/app/services"
)

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"phone" validate:"required"`
		Password  string `json:"password" validate:"required,min=3"`
		Role      string `json:"role" validate:"required,oneof=student teacher admin"`
		StudentID string `json:"student_id"`
		TeacherID string `json:"teacher_id"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()
	role := models.Role(req.Role)

	// Only the first registered user may be an admin.
	if role == models.RoleAdmin {
		count, err := database.CountAdmins(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
		}
		if count > 0 {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Admin registration is only allowed for the first user",
			})
		}
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      role,
		IsActive:  role == models.RoleAdmin,
	}
	if req.StudentID != "" {
		user.StudentID = &req.StudentID
	}
	if req.TeacherID != "" {
		user.TeacherID = &req.TeacherID
	}

	if err := database.CreateUser(db, user); err != nil {
		if err == database.ErrDuplicateUser {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		log.Printf("Register error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Server error during registration"})
	}

	message := "Registration successful. Wait for admin approval."
	var token string
	if role == models.RoleAdmin {
		message = "Admin registered successfully"
		var err error
		if token, err = GenerateJWT(user.ID, user.Role); err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": message,
		"token":   token,
		"user": fiber.Map{
			"id":        user.ID,
			"name":      user.FullName(),
			"email":     user.Email,
			"role":      user.Role,
			"is_active": user.IsActive,
		},
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		EmailOrPhone string `json:"email_or_phone" validate:"required"`
		Password     string `json:"password" validate:"required"`
		Role         string `json:"role" validate:"required,oneof=student teacher admin"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := database.GetUserByContact(config.GetDB(), req.EmailOrPhone, models.Role(req.Role))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	if !user.IsActive && user.Role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   "Account not activated. Please wait for admin approval.",
		})
	}

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":         user.ID,
			"name":       user.FullName(),
			"email":      user.Email,
			"phone":      user.Phone,
			"role":       user.Role,
			"student_id": user.StudentID,
			"teacher_id": user.TeacherID,
			"class_id":   user.ClassID,
			"is_active":  user.IsActive,
		},
	})
}

func MeAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(fiber.Map{"success": true, "user": user})
}

func SendEmailOTPAPI(c *fiber.Ctx) error {
	type Request struct {
		Email string `json:"email" validate:"required,email"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return sendOTP(c, req.Email)
}

func SendSMSOTPAPI(c *fiber.Ctx) error {
	type Request struct {
		Phone string `json:"phone" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return sendOTP(c, req.Phone)
}

// sendOTP issues a reset code for a known contact. Delivery is an external
// concern; the code is logged for development.
func sendOTP(c *fiber.Ctx, contact string) error {
	if _, err := database.GetUserByEmailOrPhone(config.GetDB(), contact); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	store := services.NewOTPStore(config.GetRedis())
	code, err := store.Issue(c.Context(), contact)
	if err != nil {
		log.Printf("Issue OTP error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to send OTP"})
	}

	log.Printf("OTP for %s: %s", contact, code)

	return c.JSON(fiber.Map{"success": true, "message": "OTP sent successfully"})
}

func VerifyOTPAPI(c *fiber.Ctx) error {
	type Request struct {
		Contact string `json:"contact" validate:"required"`
		OTP     string `json:"otp" validate:"required,len=6"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	store := services.NewOTPStore(config.GetRedis())
	if err := store.Verify(c.Context(), req.Contact, req.OTP); err != nil {
		switch err {
		case services.ErrOTPNotFound, services.ErrOTPInvalid:
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		default:
			log.Printf("Verify OTP error: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to verify OTP"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "OTP verified successfully"})
}

func ResetPasswordAPI(c *fiber.Ctx) error {
	type Request struct {
		Contact     string `json:"contact" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=3"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := helpers.ValidateStruct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	store := services.NewOTPStore(config.GetRedis())
	verified, err := store.IsVerified(c.Context(), req.Contact)
	if err != nil {
		log.Printf("Reset password error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to reset password"})
	}
	if !verified {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "OTP not verified"})
	}

	db := config.GetDB()
	user, err := database.GetUserByEmailOrPhone(db, req.Contact)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if err := database.UpdateUserPassword(db, user.ID, req.NewPassword); err != nil {
		log.Printf("Reset password error: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to reset password"})
	}

	if err := store.Clear(c.Context(), req.Contact); err != nil {
		log.Printf("Clear OTP error: %v", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password reset successfully"})
}
