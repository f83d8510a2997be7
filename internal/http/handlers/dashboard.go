package handlers

import (
	"net/http"

	"campusmarket/internal/http/middleware"
	"campusmarket/internal/repositories"
	"campusmarket/internal/services"

	"github.com/gin-gonic/gin"
)

// MyListings handles GET /api/users/me/listings: the seller dashboard.
func MyListings(c *gin.Context) {
	svc := services.DashboardService{
		Listings:  repositories.ListingRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	rows, err := svc.SellerListings(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// MyListingsReport handles GET /api/users/me/listings/report and
// returns the seller's listings as an inline PDF.
func MyListingsReport(c *gin.Context) {
	uid := middleware.CurrentUserID(c)

	userRepo := repositories.UserRepository{}
	user, err := userRepo.GetByID(uid)
	if err != nil {
		respondError(c, http.StatusNotFound, "user_not_found", "user not found", err)
		return
	}

	svc := services.ReportService{
		Listings:  repositories.ListingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.SellerListingsPDF(uid, user.DisplayName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// AdminDashboard handles GET /api/admin/dashboard: all listings split
// into the public bucket and the hidden one.
func AdminDashboard(c *gin.Context) {
	svc := services.DashboardService{
		Listings:  repositories.ListingRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	dash, err := svc.Moderation()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
