package database

import (
	"database/sql"
	"time"

	"aquaclub/app/models"
)

func CreatePlan(db *sql.DB, plan *models.SubscriptionPlan) error {
	query := `
		INSERT INTO subscription_plans (club_id, name, price_cents, period_months)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	return db.QueryRow(query, plan.ClubID, plan.Name, plan.PriceCents, plan.PeriodMonths).
		Scan(&plan.ID, &plan.IsActive, &plan.CreatedAt)
}

func GetPlansByClub(db *sql.DB, clubID string) ([]models.SubscriptionPlan, error) {
	query := `
		SELECT id, club_id, name, price_cents, period_months, is_active, created_at
		FROM subscription_plans
		WHERE club_id = $1 AND is_active = true
		ORDER BY price_cents
	`
	rows, err := db.Query(query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.SubscriptionPlan
	for rows.Next() {
		var p models.SubscriptionPlan
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Name, &p.PriceCents, &p.PeriodMonths, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Subscribe creates an active subscription for a swimmer; expiry is derived
// from the plan's period.
func Subscribe(db *sql.DB, swimmerID, planID string) (*models.Subscription, error) {
	var periodMonths int
	if err := db.QueryRow(`SELECT period_months FROM subscription_plans WHERE id = $1 AND is_active = true`, planID).
		Scan(&periodMonths); err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		SwimmerID: swimmerID,
		PlanID:    planID,
		Status:    models.SubscriptionActive,
		StartedAt: time.Now(),
	}
	sub.ExpiresAt = sub.StartedAt.AddDate(0, periodMonths, 0)

	query := `
		INSERT INTO subscriptions (swimmer_id, plan_id, status, started_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := db.QueryRow(query, sub.SwimmerID, sub.PlanID, sub.Status, sub.StartedAt, sub.ExpiresAt).
		Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func GetSubscriptionsBySwimmer(db *sql.DB, swimmerID string) ([]models.Subscription, error) {
	query := `
		SELECT s.id, s.swimmer_id, s.plan_id, p.name, s.status, s.started_at, s.expires_at, s.created_at
		FROM subscriptions s
		JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.swimmer_id = $1
		ORDER BY s.started_at DESC
	`
	rows, err := db.Query(query, swimmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var s models.Subscription
		if err := rows.Scan(&s.ID, &s.SwimmerID, &s.PlanID, &s.PlanName, &s.Status, &s.StartedAt, &s.ExpiresAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func CancelSubscription(db *sql.DB, id string) error {
	query := `UPDATE subscriptions SET status = 'cancelled' WHERE id = $1 AND status = 'active'`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ExpireSubscriptions marks overdue active subscriptions as expired and
// returns how many rows changed. Run periodically at startup or by cron.
func ExpireSubscriptions(db *sql.DB) (int64, error) {
	query := `UPDATE subscriptions SET status = 'expired' WHERE status = 'active' AND expires_at < NOW()`
	result, err := db.Exec(query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func CreatePayment(db *sql.DB, payment *models.Payment) error {
	query := `
		INSERT INTO payments (subscription_id, amount_cents, currency, status, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return db.QueryRow(query,
		payment.SubscriptionID, payment.AmountCents, payment.Currency, payment.Status, payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func GetPaymentsBySubscription(db *sql.DB, subscriptionID string) ([]models.Payment, error) {
	query := `
		SELECT id, subscription_id, amount_cents, currency, status, paid_at, created_at
		FROM payments
		WHERE subscription_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.SubscriptionID, &p.AmountCents, &p.Currency, &p.Status, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// MarkPaymentCompleted finalizes a pending payment.
func MarkPaymentCompleted(db *sql.DB, id string) error {
	query := `UPDATE payments SET status = 'completed', paid_at = NOW() WHERE id = $1 AND status = 'pending'`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
