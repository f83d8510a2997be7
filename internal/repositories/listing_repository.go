package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"campusmarket/internal/config"
	"campusmarket/internal/domain"
)

// ListingRepository wraps all catalog-store access. Every call reads
// or writes through the database; no listing state survives between
// operations.
type ListingRepository struct {
	DB *sql.DB
}

func (r ListingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const searchColumns = `
		l.id,
		l.name,
		COALESCE(l.description,''),
		CAST(l.price AS CHAR),
		l.category_id,
		COALESCE(c.name,''),
		l.seller_id,
		COALESCE(u.display_name,''),
		COALESCE(l.item_condition,''),
		l.status`

// Search executes a plan and returns rows already decorated with the
// category and seller display names. A category deleted between write
// and read resolves to an empty name instead of failing the set.
func (r ListingRepository) Search(plan SearchPlan, limit, offset int) ([]domain.SearchRow, error) {
	query := `SELECT` + searchColumns + `
		FROM listings l
		LEFT JOIN categories c ON l.category_id = c.id
		LEFT JOIN users u ON l.seller_id = u.id` +
		plan.WhereClause() +
		` ORDER BY ` + plan.OrderBy + ` LIMIT ? OFFSET ?`

	args := append(append([]any{}, plan.Args...), limit, offset)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SearchRow{}
	for rows.Next() {
		var row domain.SearchRow
		var status string
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Description,
			&row.Price,
			&row.CategoryID,
			&row.CategoryName,
			&row.SellerID,
			&row.SellerName,
			&row.Condition,
			&status,
		); err != nil {
			return nil, err
		}
		row.Status = domain.ListingStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

// Count runs the count twin of a plan: same predicates, no paging.
func (r ListingRepository) Count(plan SearchPlan) (int, error) {
	var total int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM listings l`+plan.WhereClause(), plan.Args...).Scan(&total)
	return total, err
}

// Suggestions returns names of public listings matching a partial
// keyword over name or description.
func (r ListingRepository) Suggestions(keyword string, limit int) ([]string, error) {
	plan := BuildSuggestionPlan(keyword)
	args := append(append([]any{}, plan.Args...), limit)

	rows, err := r.db().Query(
		`SELECT l.name FROM listings l`+plan.WhereClause()+` ORDER BY `+plan.OrderBy+` LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SellerListings loads the seller dashboard rows. Price is cast to
// CHAR in SQL so the decimal reaches the caller as exact text.
func (r ListingRepository) SellerListings(sellerID int64) ([]domain.SellerListing, error) {
	rows, err := r.db().Query(`
		SELECT l.id, l.name, l.status, COALESCE(c.name,''), CAST(l.price AS CHAR)
		FROM listings l
		LEFT JOIN categories c ON l.category_id = c.id
		WHERE l.seller_id = ?
		ORDER BY l.id DESC`, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SellerListing{}
	for rows.Next() {
		var sl domain.SellerListing
		var status string
		if err := rows.Scan(&sl.ID, &sl.Name, &status, &sl.CategoryName, &sl.Price); err != nil {
			return nil, err
		}
		sl.Status = domain.ListingStatus(status)
		out = append(out, sl)
	}
	return out, rows.Err()
}

// ModerationListings loads every listing with its seller's email in a
// single query; bucketing happens in the dashboard service.
func (r ListingRepository) ModerationListings() ([]domain.ModerationRow, error) {
	rows, err := r.db().Query(`
		SELECT
			l.id,
			l.name,
			COALESCE(l.description,''),
			CAST(l.price AS CHAR),
			l.category_id,
			l.seller_id,
			COALESCE(l.item_condition,''),
			l.status,
			COALESCE(u.email,'')
		FROM listings l
		INNER JOIN users u ON l.seller_id = u.id
		ORDER BY l.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ModerationRow{}
	for rows.Next() {
		var m domain.ModerationRow
		var status string
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Description,
			&m.Price,
			&m.CategoryID,
			&m.SellerID,
			&m.Condition,
			&status,
			&m.SellerEmail,
		); err != nil {
			return nil, err
		}
		m.Status = domain.ListingStatus(status)
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateStatus performs the single conditional write of a lifecycle
// transition: the row changes only while its current status is one of
// the expected source states. Concurrent transitions on the same row
// therefore resolve to exactly one winner. Returns whether a row
// changed.
func (r ListingRepository) UpdateStatus(id int64, from []domain.ListingStatus, to domain.ListingStatus) (bool, error) {
	if id <= 0 || len(from) == 0 || !to.Valid() {
		return false, fmt.Errorf("invalid status transition request")
	}

	ph := strings.TrimSuffix(strings.Repeat("?,", len(from)), ",")
	args := []any{string(to), id}
	for _, s := range from {
		args = append(args, string(s))
	}

	res, err := r.db().Exec(`UPDATE listings SET status = ? WHERE id = ? AND status IN (`+ph+`)`, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a listing in the Unapproved state and returns its id.
func (r ListingRepository) Create(l domain.Listing) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO listings (name, description, price, category_id, item_condition, seller_id, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.Name,
		l.Description,
		l.Price,
		l.CategoryID,
		l.Condition,
		l.SellerID,
		string(domain.StatusUnapproved),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
