package main

import (
	"fmt"

	"aquaclub/app/config"
	"aquaclub/app/database"
)

func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		return
	}

	fmt.Println("Migrations applied successfully")
}
