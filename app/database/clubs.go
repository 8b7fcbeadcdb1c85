package database

import (
	"database/sql"

	"aquaclub/app/models"
)

func CreateClub(db *sql.DB, club *models.Club) error {
	query := `
		INSERT INTO clubs (name, city)
		VALUES ($1, $2)
		RETURNING id, is_active, created_at, updated_at
	`
	return db.QueryRow(query, club.Name, club.City).
		Scan(&club.ID, &club.IsActive, &club.CreatedAt, &club.UpdatedAt)
}

func GetClubs(db *sql.DB) ([]models.Club, error) {
	query := `
		SELECT id, name, city, is_active, created_at, updated_at
		FROM clubs
		WHERE is_active = true
		ORDER BY name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.City, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func GetClubByID(db *sql.DB, id string) (*models.Club, error) {
	query := `SELECT id, name, city, is_active, created_at, updated_at FROM clubs WHERE id = $1`
	var c models.Club
	err := db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.City, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func UpdateClub(db *sql.DB, club *models.Club) error {
	query := `UPDATE clubs SET name = $1, city = $2, updated_at = NOW() WHERE id = $3`
	_, err := db.Exec(query, club.Name, club.City, club.ID)
	return err
}

// DeactivateClub soft-deletes a club; its swimmers and events remain.
func DeactivateClub(db *sql.DB, id string) error {
	query := `UPDATE clubs SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
