package swimmers

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupSwimmersRoutes sets up swimmer management routes
func SetupSwimmersRoutes(app *fiber.App) {
	api := app.Group("/api/swimmers")
	api.Use(auth.AuthMiddleware)

	staff := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin, models.RoleTeacher)
	api.Get("/", staff, GetSwimmersAPI)
	api.Get("/:id", GetSwimmerAPI)
	api.Post("/", staff, CreateSwimmerAPI)
	api.Put("/:id", staff, UpdateSwimmerAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleClub, models.RoleAdmin), DeactivateSwimmerAPI)
}
