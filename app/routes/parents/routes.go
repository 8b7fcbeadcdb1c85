package parents

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupParentsRoutes sets up parent-child relation routes
func SetupParentsRoutes(app *fiber.App) {
	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)

	api.Get("/children", auth.RoleMiddleware(models.RoleParent), GetMyChildrenAPI)

	staff := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin)
	api.Post("/children", staff, LinkChildAPI)
	api.Delete("/children", staff, UnlinkChildAPI)
}
