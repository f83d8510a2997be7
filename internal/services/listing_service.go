package services

import (
	"fmt"
	"strings"

	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"
	"campusmarket/internal/utils"
)

// conditions a seller may pick for an item.
var conditions = map[string]bool{
	"New":  true,
	"Used": true,
}

// ListingService handles seller-side listing creation. New listings
// always start Unapproved and wait for moderation.
type ListingService struct {
	Listings   repositories.ListingRepository
	Categories repositories.CategoryRepository
	RequestID  string
}

type NewListing struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  int64  `json:"categoryId"`
	Condition   string `json:"condition"`
}

func (s ListingService) Create(sellerID int64, in NewListing) (domain.Listing, error) {
	if sellerID <= 0 {
		return domain.Listing{}, domain.ValidationError{Field: "seller", Msg: "missing user id"}
	}

	name := utils.NormalizeSpace(in.Name)
	if name == "" {
		return domain.Listing{}, domain.ValidationError{Field: "name", Msg: "required"}
	}

	price, err := utils.NormalizeMoney(in.Price)
	if err != nil {
		return domain.Listing{}, domain.ValidationError{Field: "price", Msg: "must be a non-negative amount", Err: err}
	}

	cond := strings.TrimSpace(in.Condition)
	if !conditions[cond] {
		return domain.Listing{}, domain.ValidationError{Field: "condition", Msg: "must be New or Used"}
	}

	if in.CategoryID <= 0 {
		return domain.Listing{}, domain.ValidationError{Field: "category", Msg: "required"}
	}
	categoryName, err := s.Categories.NameOf(in.CategoryID)
	if err != nil {
		return domain.Listing{}, domain.InternalError{Msg: "category lookup failed", Err: err}
	}
	if categoryName == "" {
		return domain.Listing{}, domain.ValidationError{Field: "category", Msg: "unknown category"}
	}

	listing := domain.Listing{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		CategoryID:  in.CategoryID,
		Condition:   cond,
		SellerID:    sellerID,
		Status:      domain.StatusUnapproved,
	}

	id, err := s.Listings.Create(listing)
	if err != nil {
		return domain.Listing{}, domain.InternalError{Msg: "listing insert failed", Err: err}
	}
	listing.ID = id

	utils.LogEvent(s.RequestID, "listing", "create", fmt.Sprintf("listing_id=%d seller_id=%d", id, sellerID))
	return listing, nil
}
