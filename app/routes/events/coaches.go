package events

import (
	"database/sql"
	"encoding/json"
	"log"

	"aquaclub/app/database"
	"aquaclub/app/models"
)

// CoachNamePlaceholder is shown for lane assignments whose coach id no
// longer resolves to a user. The assignment blob is denormalized JSON, so
// a dangling id is possible and must not break the heat sheet.
const CoachNamePlaceholder = "Sin nombre"

type laneCoachConfig struct {
	Lane    int    `json:"lane"`
	CoachID string `json:"coachId"`
}

type categoryDistancesConfig struct {
	LaneCoaches []laneCoachConfig `json:"laneCoaches"`
}

// parseLaneCoaches extracts the lane-coach assignments from an event's
// category_distances blob. Parsing is soft-fail: malformed JSON or a
// missing laneCoaches field yields an empty slice, never an error.
func parseLaneCoaches(raw string) []laneCoachConfig {
	if raw == "" {
		return nil
	}
	var cfg categoryDistancesConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("Ignoring malformed lane-coach config: %v", err)
		return nil
	}
	return cfg.LaneCoaches
}

// ResolveLaneCoaches reads the event's lane-coach assignments and resolves
// coach display names. Every failure path degrades to an empty list; an
// unknown coach id resolves to the placeholder name.
func ResolveLaneCoaches(db *sql.DB, eventID string) []models.LaneCoach {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Failed to load event %s for lane coaches: %v", eventID, err)
		}
		return []models.LaneCoach{}
	}

	assignments := parseLaneCoaches(event.CategoryDistances)
	if len(assignments) == 0 {
		return []models.LaneCoach{}
	}

	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if a.CoachID != "" {
			ids = append(ids, a.CoachID)
		}
	}

	coaches, err := database.GetCoachesByIDs(db, ids)
	if err != nil {
		log.Printf("Failed to resolve coach names for event %s: %v", eventID, err)
		return []models.LaneCoach{}
	}

	return mapLaneCoaches(assignments, coaches)
}

// mapLaneCoaches joins assignments with the resolved coach users. A coach
// id with no matching user keeps its lane entry and gets the placeholder
// name instead of failing.
func mapLaneCoaches(assignments []laneCoachConfig, coaches map[string]*models.User) []models.LaneCoach {
	resolved := make([]models.LaneCoach, 0, len(assignments))
	for _, a := range assignments {
		name := CoachNamePlaceholder
		if coach, ok := coaches[a.CoachID]; ok {
			name = coach.FirstName + " " + coach.LastName
		}
		resolved = append(resolved, models.LaneCoach{
			Lane:      a.Lane,
			CoachID:   a.CoachID,
			CoachName: name,
		})
	}
	return resolved
}
