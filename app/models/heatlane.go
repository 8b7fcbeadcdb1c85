package models

import "time"

// HeatLane is one lane in one heat of an event. FinalTime is nil until a
// time is recorded for the lane; once set it is a non-negative number of
// milliseconds and there is no endpoint that clears it.
type HeatLane struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	HeatNumber int       `json:"heat_number"`
	LaneNumber int       `json:"lane_number"`
	SwimmerID  *string   `json:"swimmer_id,omitempty"`
	CoachID    *string   `json:"coach_id,omitempty"`
	FinalTime  *int64    `json:"final_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Display fields joined from swimmers and users; not columns of heat_lanes.
	SwimmerFirstName string     `json:"swimmer_first_name,omitempty"`
	SwimmerLastName  string     `json:"swimmer_last_name,omitempty"`
	SwimmerGender    Gender     `json:"swimmer_gender,omitempty"`
	SwimmerBirthDate *time.Time `json:"swimmer_birth_date,omitempty"`
	CoachName        string     `json:"coach_name,omitempty"`
	CoachEmail       string     `json:"coach_email,omitempty"`
}
