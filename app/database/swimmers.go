package database

import (
	"database/sql"

	"aquaclub/app/models"
)

func CreateSwimmer(db *sql.DB, swimmer *models.Swimmer) error {
	swimmer.ID = newID()
	query := `
		INSERT INTO swimmers (id, club_id, first_name, last_name, gender, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING is_active, created_at, updated_at
	`
	return db.QueryRow(query,
		swimmer.ID, swimmer.ClubID, swimmer.FirstName, swimmer.LastName,
		swimmer.Gender, swimmer.BirthDate,
	).Scan(&swimmer.IsActive, &swimmer.CreatedAt, &swimmer.UpdatedAt)
}

func GetSwimmerByID(db *sql.DB, id string) (*models.Swimmer, error) {
	query := `
		SELECT s.id, s.club_id, COALESCE(c.name, ''), s.first_name, s.last_name,
			   s.gender, s.birth_date, s.is_active, s.created_at, s.updated_at
		FROM swimmers s
		LEFT JOIN clubs c ON c.id = s.club_id
		WHERE s.id = $1
	`
	var s models.Swimmer
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.ClubID, &s.ClubName, &s.FirstName, &s.LastName,
		&s.Gender, &s.BirthDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSwimmersByClub lists a club's active swimmers ordered by name.
func GetSwimmersByClub(db *sql.DB, clubID string) ([]models.Swimmer, error) {
	query := `
		SELECT id, club_id, first_name, last_name, gender, birth_date, is_active, created_at, updated_at
		FROM swimmers
		WHERE club_id = $1 AND is_active = true
		ORDER BY first_name, last_name
	`
	rows, err := db.Query(query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swimmers []models.Swimmer
	for rows.Next() {
		var s models.Swimmer
		if err := rows.Scan(
			&s.ID, &s.ClubID, &s.FirstName, &s.LastName,
			&s.Gender, &s.BirthDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		swimmers = append(swimmers, s)
	}
	return swimmers, rows.Err()
}

func UpdateSwimmer(db *sql.DB, swimmer *models.Swimmer) error {
	query := `
		UPDATE swimmers
		SET first_name = $1, last_name = $2, gender = $3, birth_date = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := db.Exec(query,
		swimmer.FirstName, swimmer.LastName, swimmer.Gender, swimmer.BirthDate, swimmer.ID,
	)
	return err
}

// DeactivateSwimmer soft-deletes a swimmer; lane and record history stays.
func DeactivateSwimmer(db *sql.DB, id string) error {
	query := `UPDATE swimmers SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// GetChildrenByParent returns the swimmers linked to a parent through an
// active parent_swimmers row. Deactivated links are excluded here but the
// rows themselves are kept for history.
func GetChildrenByParent(db *sql.DB, parentID string) ([]models.Swimmer, error) {
	query := `
		SELECT s.id, s.club_id, COALESCE(c.name, ''), s.first_name, s.last_name,
			   s.gender, s.birth_date, s.is_active, s.created_at, s.updated_at
		FROM swimmers s
		JOIN parent_swimmers ps ON ps.swimmer_id = s.id
		LEFT JOIN clubs c ON c.id = s.club_id
		WHERE ps.parent_id = $1 AND ps.is_active = true
		ORDER BY s.first_name, s.last_name
	`
	rows, err := db.Query(query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swimmers []models.Swimmer
	for rows.Next() {
		var s models.Swimmer
		if err := rows.Scan(
			&s.ID, &s.ClubID, &s.ClubName, &s.FirstName, &s.LastName,
			&s.Gender, &s.BirthDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		swimmers = append(swimmers, s)
	}
	return swimmers, rows.Err()
}

// LinkParentSwimmer creates or reactivates a parent-swimmer relation.
func LinkParentSwimmer(db *sql.DB, parentID, swimmerID string, relationship models.RelationshipType) error {
	query := `
		INSERT INTO parent_swimmers (parent_id, swimmer_id, relationship, is_active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (parent_id, swimmer_id)
		DO UPDATE SET is_active = true, relationship = EXCLUDED.relationship
	`
	_, err := db.Exec(query, parentID, swimmerID, relationship)
	return err
}

// UnlinkParentSwimmer deactivates the relation without deleting it.
func UnlinkParentSwimmer(db *sql.DB, parentID, swimmerID string) error {
	query := `
		UPDATE parent_swimmers SET is_active = false
		WHERE parent_id = $1 AND swimmer_id = $2
	`
	result, err := db.Exec(query, parentID, swimmerID)
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

// IsParentOfSwimmer reports whether an active link exists.
func IsParentOfSwimmer(db *sql.DB, parentID, swimmerID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM parent_swimmers
			WHERE parent_id = $1 AND swimmer_id = $2 AND is_active = true
		)
	`
	var ok bool
	err := db.QueryRow(query, parentID, swimmerID).Scan(&ok)
	return ok, err
}
