package main

import (
	"flag"
	"fmt"

	"github.com/waseemakhtar47/a-m-s-1/app/config"
	"github.com/waseemakhtar47/a-m-s-1/app/database"
	"github.com/waseemakhtar47/a-m-s-1/app/models"
)

// Seeds an administrator account so the service can be bootstrapped
// without going through the registration endpoint.
func main() {
	firstName := flag.String("first-name", "System", "administrator first name")
	lastName := flag.String("last-name", "Admin", "administrator last name")
	email := flag.String("email", "", "administrator email (required)")
	phone := flag.String("phone", "", "administrator phone")
	password := flag.String("password", "", "administrator password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first-name ...] [-last-name ...] [-phone ...]")
		return
	}

	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Phone:     *phone,
		Password:  *password,
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.FullName(), user.Email)
}
