package database

import (
	"database/sql"

	"aquaclub/app/models"
)

// CreateRecord stores a finalized historical time for a swimmer.
func CreateRecord(db *sql.DB, record *models.Record) error {
	query := `
		INSERT INTO records (swimmer_id, style, distance_meters, final_time, competition, is_internal, achieved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return db.QueryRow(query,
		record.SwimmerID, record.Style, record.DistanceMeters,
		record.FinalTime, record.Competition, record.IsInternal, record.AchievedAt,
	).Scan(&record.ID, &record.CreatedAt)
}

// GetRecordsBySwimmer lists a swimmer's records, newest first. style is an
// optional filter.
func GetRecordsBySwimmer(db *sql.DB, swimmerID string, style string) ([]models.Record, error) {
	query := `
		SELECT id, swimmer_id, style, distance_meters, final_time, competition, is_internal, achieved_at, created_at
		FROM records
		WHERE swimmer_id = $1
	`
	args := []interface{}{swimmerID}
	if style != "" {
		query += ` AND style = $2`
		args = append(args, style)
	}
	query += ` ORDER BY achieved_at DESC, created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(
			&r.ID, &r.SwimmerID, &r.Style, &r.DistanceMeters,
			&r.FinalTime, &r.Competition, &r.IsInternal, &r.AchievedAt, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetBestRecord returns the swimmer's minimum recorded time for a style.
// Ties on final_time resolve to the earliest achieved record, then by id,
// so the result is deterministic. sql.ErrNoRows when no record exists.
func GetBestRecord(db *sql.DB, swimmerID string, style string) (*models.Record, error) {
	query := `
		SELECT id, swimmer_id, style, distance_meters, final_time, competition, is_internal, achieved_at, created_at
		FROM records
		WHERE swimmer_id = $1 AND style = $2
		ORDER BY final_time ASC, achieved_at ASC, id ASC
		LIMIT 1
	`
	var r models.Record
	err := db.QueryRow(query, swimmerID, style).Scan(
		&r.ID, &r.SwimmerID, &r.Style, &r.DistanceMeters,
		&r.FinalTime, &r.Competition, &r.IsInternal, &r.AchievedAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetLatestRecord returns the most recently created record for a swimmer,
// optionally restricted to internal competitions.
func GetLatestRecord(db *sql.DB, swimmerID string, internalOnly bool) (*models.Record, error) {
	query := `
		SELECT id, swimmer_id, style, distance_meters, final_time, competition, is_internal, achieved_at, created_at
		FROM records
		WHERE swimmer_id = $1
	`
	if internalOnly {
		query += ` AND is_internal = true`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT 1`

	var r models.Record
	err := db.QueryRow(query, swimmerID).Scan(
		&r.ID, &r.SwimmerID, &r.Style, &r.DistanceMeters,
		&r.FinalTime, &r.Competition, &r.IsInternal, &r.AchievedAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetLatestRecordForParent returns the most recently created record across
// all of a parent's active children.
func GetLatestRecordForParent(db *sql.DB, parentID string, internalOnly bool) (*models.Record, error) {
	query := `
		SELECT r.id, r.swimmer_id, r.style, r.distance_meters, r.final_time, r.competition, r.is_internal, r.achieved_at, r.created_at
		FROM records r
		JOIN parent_swimmers ps ON ps.swimmer_id = r.swimmer_id
		WHERE ps.parent_id = $1 AND ps.is_active = true
	`
	if internalOnly {
		query += ` AND r.is_internal = true`
	}
	query += ` ORDER BY r.created_at DESC, r.id DESC LIMIT 1`

	var r models.Record
	err := db.QueryRow(query, parentID).Scan(
		&r.ID, &r.SwimmerID, &r.Style, &r.DistanceMeters,
		&r.FinalTime, &r.Competition, &r.IsInternal, &r.AchievedAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
