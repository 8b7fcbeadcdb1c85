package dashboard

import (
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the landing page and its stats API
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, renderDashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

func statsScope(user *models.User) string {
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		return *user.ClubID
	}
	return ""
}

func renderDashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	stats, err := database.GetDashboardStats(config.GetDB(), statsScope(user))
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		stats = &database.DashboardStats{}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - AquaClub",
		"CurrentPage": "dashboard",
		"User":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Stats":       stats,
	})
}

// GetStatsAPI returns the dashboard counts for the principal's scope.
func GetStatsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	stats, err := database.GetDashboardStats(config.GetDB(), statsScope(user))
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
