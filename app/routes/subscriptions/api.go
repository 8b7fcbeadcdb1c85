package subscriptions

import (
	"database/sql"
	"errors"
	"log"

	"aquaclub/app/config"
	"aquaclub/app/database"
	"aquaclub/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetPlansAPI(c *fiber.Ctx) error {
	clubID := c.Query("clubId")
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		clubID = *user.ClubID
	}
	if clubID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "clubId query parameter is required"})
	}

	plans, err := database.GetPlansByClub(config.GetDB(), clubID)
	if err != nil {
		log.Printf("Failed to fetch plans for club %s: %v", clubID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch plans"})
	}
	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}
	return c.JSON(fiber.Map{"plans": plans})
}

func CreatePlanAPI(c *fiber.Ctx) error {
	plan := new(models.SubscriptionPlan)
	if err := c.BodyParser(plan); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleClub) && user.ClubID != nil {
		plan.ClubID = *user.ClubID
	}
	if plan.ClubID == "" || plan.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "club_id and name are required"})
	}
	if plan.PriceCents < 0 || plan.PeriodMonths < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "price must not be negative and period must be at least one month"})
	}

	if err := database.CreatePlan(config.GetDB(), plan); err != nil {
		log.Printf("Failed to create plan: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create plan"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Plan created successfully", "plan": plan})
}

func SubscribeAPI(c *fiber.Ctx) error {
	type SubscribeRequest struct {
		SwimmerID string `json:"swimmer_id"`
		PlanID    string `json:"plan_id"`
	}

	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.SwimmerID == "" || req.PlanID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "swimmer_id and plan_id are required"})
	}

	// A parent may only subscribe their own children.
	user := c.Locals("user").(*models.User)
	if user.HasRole(models.RoleParent) && !user.HasRole(models.RoleAdmin) {
		ok, err := database.IsParentOfSwimmer(config.GetDB(), user.ID, req.SwimmerID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to verify swimmer"})
		}
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "Swimmer is not linked to your account"})
		}
	}

	sub, err := database.Subscribe(config.GetDB(), req.SwimmerID, req.PlanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Plan not found"})
		}
		log.Printf("Failed to subscribe swimmer %s: %v", req.SwimmerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subscription"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":      "Subscription created successfully",
		"subscription": sub,
	})
}

func GetSubscriptionsAPI(c *fiber.Ctx) error {
	swimmerID := c.Query("swimmerId")
	if swimmerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "swimmerId query parameter is required"})
	}

	subs, err := database.GetSubscriptionsBySwimmer(config.GetDB(), swimmerID)
	if err != nil {
		log.Printf("Failed to fetch subscriptions for swimmer %s: %v", swimmerID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subscriptions"})
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	return c.JSON(fiber.Map{"subscriptions": subs})
}

func CancelSubscriptionAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.CancelSubscription(config.GetDB(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Active subscription not found"})
		}
		log.Printf("Failed to cancel subscription %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to cancel subscription"})
	}
	return c.JSON(fiber.Map{"message": "Subscription cancelled"})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		SubscriptionID string `json:"subscription_id"`
		AmountCents    *int64 `json:"amount_cents"`
		Currency       string `json:"currency"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.SubscriptionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subscription_id is required"})
	}
	if req.AmountCents == nil || *req.AmountCents <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "amount_cents must be a positive number"})
	}
	if req.Currency == "" {
		req.Currency = "PEN"
	}

	payment := &models.Payment{
		SubscriptionID: req.SubscriptionID,
		AmountCents:    *req.AmountCents,
		Currency:       req.Currency,
		Status:         models.PaymentPending,
	}
	if err := database.CreatePayment(config.GetDB(), payment); err != nil {
		log.Printf("Failed to create payment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment created", "payment": payment})
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	subscriptionID := c.Query("subscriptionId")
	if subscriptionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subscriptionId query parameter is required"})
	}

	payments, err := database.GetPaymentsBySubscription(config.GetDB(), subscriptionID)
	if err != nil {
		log.Printf("Failed to fetch payments for subscription %s: %v", subscriptionID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return c.JSON(fiber.Map{"payments": payments})
}

// CompletePaymentAPI finalizes a pending payment after the money arrived
// through whatever channel the club uses.
func CompletePaymentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.MarkPaymentCompleted(config.GetDB(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Pending payment not found"})
		}
		log.Printf("Failed to complete payment %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment completed"})
}
