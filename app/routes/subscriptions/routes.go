package subscriptions

import (
	"aquaclub/app/models"
	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupSubscriptionsRoutes sets up plan, subscription and payment routes
func SetupSubscriptionsRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	staff := auth.RoleMiddleware(models.RoleClub, models.RoleAdmin)

	api.Get("/plans", GetPlansAPI)
	api.Post("/plans", staff, CreatePlanAPI)

	api.Get("/subscriptions", GetSubscriptionsAPI)
	api.Post("/subscriptions", auth.RoleMiddleware(
		models.RoleClub, models.RoleAdmin, models.RoleParent,
	), SubscribeAPI)
	api.Delete("/subscriptions/:id", staff, CancelSubscriptionAPI)

	api.Get("/payments", GetPaymentsAPI)
	api.Post("/payments", staff, CreatePaymentAPI)
	api.Post("/payments/:id/complete", staff, CompletePaymentAPI)
}
