package main

import (
	"flag"
	"fmt"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"
)

func main() {
	email := flag.String("email", "", "email of the new user")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", models.RoleAdmin, "role to assign (ADMIN, CLUB, TEACHER, PARENT)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email ... -password ... [-first ...] [-last ...] [-role ADMIN]")
		return
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) role=%s\n", user.FirstName, user.LastName, user.Email, *role)
}
