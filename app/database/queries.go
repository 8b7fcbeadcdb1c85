package database

import (
	"database/sql"

	"aquaclub/app/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// newID generates an entity id app-side so callers hold the id before the
// insert round trip completes.
func newID() string {
	return uuid.NewString()
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, club_id, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.ClubID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	roles, err := GetUserRoles(db, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, club_id, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.ClubID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	roles, err := GetUserRoles(db, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name FROM roles r
			  JOIN user_roles ur ON ur.role_id = r.id
			  WHERE ur.user_id = $1
			  ORDER BY r.name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// CreateUser inserts a user with a hashed password and assigns the given roles.
func CreateUser(db *sql.DB, user *models.User, roleNames ...string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	user.ID = newID()
	query := `
		INSERT INTO users (id, email, password, first_name, last_name, phone, club_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING is_active, created_at, updated_at
	`
	err = db.QueryRow(query,
		user.ID, user.Email, hashed, user.FirstName, user.LastName, user.Phone, user.ClubID,
	).Scan(&user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	for _, name := range roleNames {
		if err := AssignRole(db, user.ID, name); err != nil {
			return err
		}
	}
	return nil
}

func AssignRole(db *sql.DB, userID, roleName string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT DO NOTHING
	`
	_, err := db.Exec(query, userID, roleName)
	return err
}

func UpdateUserPassword(db *sql.DB, userID, newPassword string) error {
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err = db.Exec(query, hashed, userID)
	return err
}

// GetCoachesByIDs returns coach display names keyed by user id. Missing ids
// are simply absent from the map.
func GetCoachesByIDs(db *sql.DB, ids []string) (map[string]*models.User, error) {
	coaches := make(map[string]*models.User)
	if len(ids) == 0 {
		return coaches, nil
	}

	// id is cast to text so a dangling non-uuid id in the config blob can
	// never make the query itself fail.
	query := `SELECT id, email, first_name, last_name FROM users WHERE id::text = ANY($1)`
	rows, err := db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, err
		}
		coaches[u.ID] = u
	}
	return coaches, rows.Err()
}

// GetTeachers returns active users holding the TEACHER role.
func GetTeachers(db *sql.DB, clubID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE r.name = 'TEACHER' AND u.is_active = true
	`
	args := []interface{}{}
	if clubID != "" {
		query += ` AND u.club_id = $1`
		args = append(args, clubID)
	}
	query += ` ORDER BY u.first_name, u.last_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
