package database

import (
	"database/sql"
	"fmt"

	"aquaclub/app/models"
)

// GetLanesByEvent returns every lane of an event joined with swimmer and
// coach display data, ordered by heat number then lane number.
func GetLanesByEvent(db *sql.DB, eventID string) ([]models.HeatLane, error) {
	query := `
		SELECT hl.id, hl.event_id, hl.heat_number, hl.lane_number,
			   hl.swimmer_id, hl.coach_id, hl.final_time, hl.created_at, hl.updated_at,
			   COALESCE(s.first_name, ''), COALESCE(s.last_name, ''),
			   COALESCE(s.gender, ''), s.birth_date,
			   COALESCE(u.first_name || ' ' || u.last_name, ''), COALESCE(u.email, '')
		FROM heat_lanes hl
		LEFT JOIN swimmers s ON s.id = hl.swimmer_id
		LEFT JOIN users u ON u.id = hl.coach_id
		WHERE hl.event_id = $1
		ORDER BY hl.heat_number ASC, hl.lane_number ASC
	`
	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lanes []models.HeatLane
	for rows.Next() {
		var l models.HeatLane
		var gender string
		if err := rows.Scan(
			&l.ID, &l.EventID, &l.HeatNumber, &l.LaneNumber,
			&l.SwimmerID, &l.CoachID, &l.FinalTime, &l.CreatedAt, &l.UpdatedAt,
			&l.SwimmerFirstName, &l.SwimmerLastName,
			&gender, &l.SwimmerBirthDate,
			&l.CoachName, &l.CoachEmail,
		); err != nil {
			return nil, err
		}
		l.SwimmerGender = models.Gender(gender)
		lanes = append(lanes, l)
	}
	return lanes, rows.Err()
}

// GetLaneByID returns one lane with its swimmer identity fields, or
// sql.ErrNoRows when the lane does not exist.
func GetLaneByID(db *sql.DB, laneID string) (*models.HeatLane, error) {
	query := `
		SELECT hl.id, hl.event_id, hl.heat_number, hl.lane_number,
			   hl.swimmer_id, hl.coach_id, hl.final_time, hl.created_at, hl.updated_at,
			   COALESCE(s.first_name, ''), COALESCE(s.last_name, ''),
			   COALESCE(s.gender, ''), s.birth_date
		FROM heat_lanes hl
		LEFT JOIN swimmers s ON s.id = hl.swimmer_id
		WHERE hl.id = $1
	`
	var l models.HeatLane
	var gender string
	err := db.QueryRow(query, laneID).Scan(
		&l.ID, &l.EventID, &l.HeatNumber, &l.LaneNumber,
		&l.SwimmerID, &l.CoachID, &l.FinalTime, &l.CreatedAt, &l.UpdatedAt,
		&l.SwimmerFirstName, &l.SwimmerLastName,
		&gender, &l.SwimmerBirthDate,
	)
	if err != nil {
		return nil, err
	}
	l.SwimmerGender = models.Gender(gender)
	return &l, nil
}

// UpdateLaneTime records the finalized time for one lane.
func UpdateLaneTime(db *sql.DB, laneID string, finalTime int64) error {
	query := `UPDATE heat_lanes SET final_time = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, finalTime, laneID)
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

// LaneTime is one entry of a batch heat save.
type LaneTime struct {
	LaneID    string
	FinalTime int64
}

// SaveHeatTimes applies a batch of lane time updates inside one transaction.
// Either every lane is updated or none are; an unknown lane id fails the
// whole batch.
func SaveHeatTimes(db *sql.DB, times []LaneTime) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE heat_lanes SET final_time = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range times {
		result, err := stmt.Exec(t.FinalTime, t.LaneID)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("lane %s not found", t.LaneID)
		}
	}

	return tx.Commit()
}

// CreateHeatLanes sets up the lane grid for an event: heats x lanes rows,
// all without swimmers or times. Existing rows are left untouched.
func CreateHeatLanes(db *sql.DB, eventID string, heats, lanesPerHeat int) error {
	query := `
		INSERT INTO heat_lanes (event_id, heat_number, lane_number)
		SELECT $1, h, l
		FROM generate_series(1, $2) AS h, generate_series(1, $3) AS l
		ON CONFLICT (event_id, heat_number, lane_number) DO NOTHING
	`
	_, err := db.Exec(query, eventID, heats, lanesPerHeat)
	return err
}

// AssignSwimmerToLane puts a swimmer (or nil to clear) into a lane.
func AssignSwimmerToLane(db *sql.DB, laneID string, swimmerID *string) error {
	query := `UPDATE heat_lanes SET swimmer_id = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, swimmerID, laneID)
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
