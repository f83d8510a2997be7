package handlers

import (
	"net/http"
	"strconv"

	"campusmarket/internal/domain"
	"campusmarket/internal/http/middleware"
	"campusmarket/internal/repositories"
	"campusmarket/internal/services"

	"github.com/gin-gonic/gin"
)

// notification collects the single flash message a moderation action
// produces, to be surfaced by the caller's presentation layer.
type notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (n *notification) Success(msg string) { n.Kind, n.Message = "success", msg }
func (n *notification) Error(msg string)   { n.Kind, n.Message = "error", msg }

// POST /api/admin/listings/:id/approve
func ApproveListing(c *gin.Context) {
	runModeration(c, func(svc services.ModerationService, id int64) error {
		return svc.Approve(id)
	})
}

// POST /api/admin/listings/:id/disapprove
func DisapproveListing(c *gin.Context) {
	runModeration(c, func(svc services.ModerationService, id int64) error {
		return svc.Disapprove(id)
	})
}

// POST /api/admin/listings/:id/remove
func RemoveListing(c *gin.Context) {
	runModeration(c, func(svc services.ModerationService, id int64) error {
		return svc.Remove(id)
	})
}

func runModeration(c *gin.Context, action func(services.ModerationService, int64) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_listing_id", "listing id must be a positive integer", err)
		return
	}

	notes := &notification{}
	svc := services.ModerationService{
		Listings:  repositories.ListingRepository{},
		Notifier:  notes,
		RequestID: middleware.GetRequestID(c),
	}

	err = action(svc, id)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"notification": notes,
			"redirect":     "/admin/dashboard",
		})
		return
	}

	status := http.StatusInternalServerError
	if domain.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"notification": notes,
		"redirect":     "/user/dashboard",
	})
}
