package clubs

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupClubsRoutes sets up club management routes
func SetupClubsRoutes(app *fiber.App) {
	api := app.Group("/api/clubs")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClubsAPI)
	api.Get("/:id", GetClubAPI)

	admin := auth.RoleMiddleware(models.RoleAdmin)
	api.Post("/", admin, CreateClubAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleClub), UpdateClubAPI)
	api.Delete("/:id", admin, DeactivateClubAPI)

	teachers := app.Group("/api/teachers")
	teachers.Use(auth.AuthMiddleware)
	teachers.Get("/", auth.RoleMiddleware(models.RoleClub, models.RoleAdmin, models.RoleTeacher), GetTeachersAPI)
}
