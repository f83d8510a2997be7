package services

import (
	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"
)

// DashboardService builds the two read views over the catalog: the
// seller's own listings and the administrator's moderation overview.
type DashboardService struct {
	Listings  repositories.ListingRepository
	RequestID string
}

// ModerationDashboard partitions every listing into the publicly
// visible bucket (Active, Ended) and the hidden one (everything
// else). One query feeds both buckets.
type ModerationDashboard struct {
	Public []domain.ModerationRow `json:"public"`
	Hidden []domain.ModerationRow `json:"hidden"`
}

// SellerListings returns the current user's listings with category
// names and exact decimal price text.
func (s DashboardService) SellerListings(sellerID int64) ([]domain.SellerListing, error) {
	if sellerID <= 0 {
		return nil, domain.ValidationError{Field: "seller", Msg: "missing user id"}
	}
	rows, err := s.Listings.SellerListings(sellerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "seller dashboard query failed", Err: err}
	}
	return rows, nil
}

// Moderation returns the full moderation overview.
func (s DashboardService) Moderation() (ModerationDashboard, error) {
	rows, err := s.Listings.ModerationListings()
	if err != nil {
		return ModerationDashboard{}, domain.InternalError{Msg: "moderation dashboard query failed", Err: err}
	}
	return partitionByVisibility(rows), nil
}

// partitionByVisibility buckets rows purely on status; every row
// lands in exactly one bucket.
func partitionByVisibility(rows []domain.ModerationRow) ModerationDashboard {
	d := ModerationDashboard{
		Public: []domain.ModerationRow{},
		Hidden: []domain.ModerationRow{},
	}
	for _, row := range rows {
		if row.Status.PubliclyVisible() {
			d.Public = append(d.Public, row)
		} else {
			d.Hidden = append(d.Hidden, row)
		}
	}
	return d
}
