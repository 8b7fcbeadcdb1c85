package lanes

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupLanesRoutes mounts the lane and heat endpoints.
func SetupLanesRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	// Reads are open to every authenticated role, including parents
	// following their children's heats.
	read := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin, models.RoleTeacher, models.RoleParent)
	api.Get("/lanes", read, GetLanesAPI)
	api.Get("/lanes/:laneId", read, GetLaneAPI)

	// Writes are restricted to staff.
	write := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin, models.RoleTeacher)
	api.Post("/lanes/:laneId/time", write, RecordTimeAPI)
	api.Post("/lanes/:laneId/swimmer", write, AssignSwimmerAPI)
	api.Post("/heats/:heatId/save-times", write, SaveHeatTimesAPI)
}
