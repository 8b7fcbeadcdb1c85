package models

import "time"

// SubscriptionPlan is a club's recurring fee offering.
type SubscriptionPlan struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"club_id"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	PeriodMonths int       `json:"period_months"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Subscription struct {
	ID        string             `json:"id"`
	SwimmerID string             `json:"swimmer_id"`
	PlanID    string             `json:"plan_id"`
	PlanName  string             `json:"plan_name,omitempty"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt time.Time          `json:"started_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	CreatedAt time.Time          `json:"created_at"`
}

// Payment is the relational side of a payment; the gateway integration that
// produced it lives outside this application.
type Payment struct {
	ID             string        `json:"id"`
	SubscriptionID string        `json:"subscription_id"`
	AmountCents    int64         `json:"amount_cents"`
	Currency       string        `json:"currency"`
	Status         PaymentStatus `json:"status"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
