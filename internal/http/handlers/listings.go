package handlers

import (
	"net/http"

	"campusmarket/internal/http/middleware"
	"campusmarket/internal/repositories"
	"campusmarket/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateListing handles POST /api/listings. The new listing starts
// Unapproved and becomes visible only after moderation.
func CreateListing(c *gin.Context) {
	var in services.NewListing
	if !BindJSONOrError(c, &in) {
		return
	}

	svc := services.ListingService{
		Listings:   repositories.ListingRepository{},
		Categories: repositories.CategoryRepository{},
		RequestID:  middleware.GetRequestID(c),
	}

	listing, err := svc.Create(middleware.CurrentUserID(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}
