package records

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupRecordsRoutes mounts the historical record endpoints.
func SetupRecordsRoutes(app *fiber.App) {
	api := app.Group("/api/records")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetRecordsAPI)
	api.Get("/best", GetBestTimeAPI)
	api.Get("/latest", GetLatestRecordAPI)

	// Parents log times for their own children; staff for anyone.
	api.Post("/", auth.RoleMiddleware(
		models.RoleClub, models.RoleAdmin, models.RoleTeacher, models.RoleParent,
	), CreateRecordAPI)
}
