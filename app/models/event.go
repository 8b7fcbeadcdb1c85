package models

import "time"

// Event represents a scheduled competition or training meet.
// CategoryDistances is an opaque JSON blob maintained by the club UI; among
// other things it may embed the lane-to-coach assignment for the event.
type Event struct {
	ID                string    `json:"id"`
	ClubID            string    `json:"club_id"`
	Title             string    `json:"title"`
	Style             Stroke    `json:"style"`
	DistanceMeters    int       `json:"distance_meters"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Location          string    `json:"location"`
	CategoryDistances string    `json:"category_distances,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LaneCoach is one resolved lane-to-coach assignment for an event.
type LaneCoach struct {
	Lane      int    `json:"lane"`
	CoachID   string `json:"coachId"`
	CoachName string `json:"coachName"`
}
