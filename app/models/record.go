package models

import "time"

// Record is a historical finalized time for a swimmer. FinalTime is
// milliseconds; lower is better. IsInternal marks times swum at the club's
// own competitions as opposed to external meets.
type Record struct {
	ID             string    `json:"id"`
	SwimmerID      string    `json:"swimmer_id"`
	Style          Stroke    `json:"style"`
	DistanceMeters int       `json:"distance_meters"`
	FinalTime      int64     `json:"final_time"`
	Competition    string    `json:"competition"`
	IsInternal     bool      `json:"is_internal"`
	AchievedAt     time.Time `json:"achieved_at"`
	CreatedAt      time.Time `json:"created_at"`
}
