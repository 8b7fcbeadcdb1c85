package models

import "time"

type Swimmer struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	ClubName  string    `json:"club_name,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParentSwimmer links a parent account to a swimmer. Deactivated links
// (is_active=false) are hidden from "my children" queries but never deleted,
// so historical records stay attributable.
type ParentSwimmer struct {
	ParentID     string           `json:"parent_id"`
	SwimmerID    string           `json:"swimmer_id"`
	Relationship RelationshipType `json:"relationship"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}
