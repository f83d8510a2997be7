package repositories

import (
	"database/sql"

	"campusmarket/internal/config"
	"campusmarket/internal/domain"
)

// CategoryRepository reads the category reference data. Categories
// are never created or destroyed through this service.
type CategoryRepository struct {
	DB *sql.DB
}

func (r CategoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// NameOf resolves a category's display name. A missing category is
// not an error; it resolves to the empty string.
func (r CategoryRepository) NameOf(id int64) (string, error) {
	if id <= 0 {
		return "", nil
	}
	var name string
	err := r.db().QueryRow(`SELECT name FROM categories WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// List returns every category for facet selection.
func (r CategoryRepository) List() ([]domain.Category, error) {
	rows, err := r.db().Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
