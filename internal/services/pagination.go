package services

import (
	"errors"

	"campusmarket/internal/domain"
)

// Page is a valid limit/offset pair plus page counters.
type Page struct {
	Limit   int
	Offset  int
	Current int
	Total   int
}

// ErrPageOutOfRange signals that the requested page cannot be served
// and the caller should fall back to the default view instead of
// rendering an empty page.
var ErrPageOutOfRange = errors.New("page out of range")

// Paginate converts a total row count and a 1-indexed requested page
// into limit/offset. Total pages is ceil(total/limit), zero when no
// rows match. Requests outside [1, totalPages] are rejected outright,
// so a computed offset is never negative.
func Paginate(total, page, limit int) (Page, error) {
	if limit <= 0 {
		return Page{}, domain.ValidationError{Field: "limit", Msg: "must be positive"}
	}
	if total < 0 {
		return Page{}, domain.ValidationError{Field: "total", Msg: "must not be negative"}
	}

	totalPages := (total + limit - 1) / limit
	if page < 1 || page > totalPages {
		return Page{Total: totalPages}, ErrPageOutOfRange
	}

	return Page{
		Limit:   limit,
		Offset:  (page - 1) * limit,
		Current: page,
		Total:   totalPages,
	}, nil
}
