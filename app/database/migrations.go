package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates. All
// statements are idempotent so this is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			club_id UUID,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS clubs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS swimmers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			club_id UUID NOT NULL REFERENCES clubs(id),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender TEXT NOT NULL DEFAULT 'other',
			birth_date DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS parent_swimmers (
			parent_id UUID NOT NULL REFERENCES users(id),
			swimmer_id UUID NOT NULL REFERENCES swimmers(id),
			relationship TEXT NOT NULL DEFAULT 'guardian',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (parent_id, swimmer_id)
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			club_id UUID NOT NULL REFERENCES clubs(id),
			title TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT 'freestyle',
			distance_meters INT NOT NULL DEFAULT 0,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			category_distances TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS heat_lanes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id),
			heat_number INT NOT NULL,
			lane_number INT NOT NULL,
			swimmer_id UUID REFERENCES swimmers(id),
			coach_id UUID REFERENCES users(id),
			final_time BIGINT CHECK (final_time IS NULL OR final_time >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, heat_number, lane_number)
		)`,

		`CREATE TABLE IF NOT EXISTS records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			swimmer_id UUID NOT NULL REFERENCES swimmers(id),
			style TEXT NOT NULL,
			distance_meters INT NOT NULL DEFAULT 0,
			final_time BIGINT NOT NULL CHECK (final_time >= 0),
			competition TEXT NOT NULL DEFAULT '',
			is_internal BOOLEAN NOT NULL DEFAULT false,
			achieved_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS subscription_plans (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			club_id UUID NOT NULL REFERENCES clubs(id),
			name TEXT NOT NULL,
			price_cents BIGINT NOT NULL DEFAULT 0,
			period_months INT NOT NULL DEFAULT 1,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS subscriptions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			swimmer_id UUID NOT NULL REFERENCES swimmers(id),
			plan_id UUID NOT NULL REFERENCES subscription_plans(id),
			status TEXT NOT NULL DEFAULT 'active',
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subscription_id UUID NOT NULL REFERENCES subscriptions(id),
			amount_cents BIGINT NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'PEN',
			status TEXT NOT NULL DEFAULT 'pending',
			paid_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_heat_lanes_event ON heat_lanes(event_id, heat_number, lane_number)`,
		`CREATE INDEX IF NOT EXISTS idx_records_swimmer_style ON records(swimmer_id, style)`,
		`CREATE INDEX IF NOT EXISTS idx_parent_swimmers_parent ON parent_swimmers(parent_id) WHERE is_active`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func seedRoles(db *sql.DB) error {
	query := `
		INSERT INTO roles (name)
		VALUES ('ADMIN'), ('CLUB'), ('TEACHER'), ('PARENT')
		ON CONFLICT (name) DO NOTHING
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to seed roles: %v", err)
	}
	return err
}
