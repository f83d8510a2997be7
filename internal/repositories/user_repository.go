package repositories

import (
	"database/sql"

	"campusmarket/internal/config"
	"campusmarket/internal/domain"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// GetByEmail loads a user and their password hash for login checks.
// sql.ErrNoRows passes through so callers can keep the "wrong email
// or password" response indistinguishable.
func (r UserRepository) GetByEmail(email string) (domain.User, string, error) {
	var (
		u    domain.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, email, campus_id, display_name, password_hash, role
		FROM users
		WHERE email = ?`, email).Scan(
		&u.ID,
		&u.Email,
		&u.CampusID,
		&u.DisplayName,
		&hash,
		&u.Role,
	)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, hash, nil
}

// GetByID loads a user's public identity.
func (r UserRepository) GetByID(id int64) (domain.User, error) {
	var u domain.User
	err := r.db().QueryRow(`
		SELECT id, email, campus_id, display_name, role
		FROM users
		WHERE id = ?`, id).Scan(
		&u.ID,
		&u.Email,
		&u.CampusID,
		&u.DisplayName,
		&u.Role,
	)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Exists reports whether a user with the given email or campus id is
// already registered.
func (r UserRepository) Exists(email, campusID string) (bool, error) {
	var one int
	err := r.db().QueryRow(
		`SELECT 1 FROM users WHERE email = ? OR campus_id = ? LIMIT 1`,
		email, campusID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new registered user and returns its id.
func (r UserRepository) Create(email, campusID, displayName, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (email, campus_id, display_name, password_hash, role)
		VALUES (?, ?, ?, ?, 'user')`,
		email, campusID, displayName, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
