package database

import (
	"database/sql"

	"aquaclub/app/models"
)

// CreateEvent adds a new event to the database
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (club_id, title, style, distance_meters, start_date, end_date, location, category_distances)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		event.ClubID,
		event.Title,
		event.Style,
		event.DistanceMeters,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.CategoryDistances,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetEvents retrieves events ordered by start_date; clubID narrows the list
// to one club when non-empty.
func GetEvents(db *sql.DB, clubID string) ([]models.Event, error) {
	query := `
		SELECT id, club_id, title, style, distance_meters, start_date, end_date, location, category_distances, created_at, updated_at
		FROM events
	`
	args := []interface{}{}
	if clubID != "" {
		query += ` WHERE club_id = $1`
		args = append(args, clubID)
	}
	query += ` ORDER BY start_date ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.ClubID, &e.Title, &e.Style, &e.DistanceMeters,
			&e.StartDate, &e.EndDate, &e.Location, &e.CategoryDistances,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEventByID returns one event or sql.ErrNoRows.
func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	query := `
		SELECT id, club_id, title, style, distance_meters, start_date, end_date, location, category_distances, created_at, updated_at
		FROM events WHERE id = $1
	`
	var e models.Event
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.ClubID, &e.Title, &e.Style, &e.DistanceMeters,
		&e.StartDate, &e.EndDate, &e.Location, &e.CategoryDistances,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent updates an existing event
func UpdateEvent(db *sql.DB, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, style = $2, distance_meters = $3, start_date = $4,
			end_date = $5, location = $6, category_distances = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := db.Exec(query,
		event.Title, event.Style, event.DistanceMeters, event.StartDate,
		event.EndDate, event.Location, event.CategoryDistances, event.ID,
	)
	return err
}

// DeleteEvent deletes an event by ID
func DeleteEvent(db *sql.DB, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
