package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	intconfig "campusmarket/internal/config"
	"campusmarket/internal/domain"
	"campusmarket/internal/http/middleware"
	"campusmarket/internal/repositories"
	"campusmarket/internal/services"
	"campusmarket/internal/utils"

	"github.com/gin-gonic/gin"
)

// Search handles GET /api/search?k=&c=&price_min=&price_max=&cond=&sort=&page=.
// An out-of-range page redirects to the home view instead of serving
// an empty result.
func Search(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := domain.SearchRequest{
			Keyword:   c.Query("k"),
			Condition: strings.TrimSpace(c.Query("cond")),
			Sort:      strings.TrimSpace(c.Query("sort")),
			Page:      1,
		}

		if v := strings.TrimSpace(c.Query("c")); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				respondError(c, http.StatusBadRequest, "invalid_category", "category must be a positive id", err)
				return
			}
			req.CategoryID = id
		}
		if v := strings.TrimSpace(c.Query("page")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.Redirect(http.StatusSeeOther, "/")
				return
			}
			req.Page = n
		}
		if v := strings.TrimSpace(c.Query("price_min")); v != "" {
			amount, err := utils.NormalizeMoney(v)
			if err != nil {
				respondError(c, http.StatusBadRequest, "invalid_price", "price_min must be a non-negative amount", err)
				return
			}
			req.PriceMin = amount
		}
		if v := strings.TrimSpace(c.Query("price_max")); v != "" {
			amount, err := utils.NormalizeMoney(v)
			if err != nil {
				respondError(c, http.StatusBadRequest, "invalid_price", "price_max must be a non-negative amount", err)
				return
			}
			req.PriceMax = amount
		}

		svc := services.SearchService{
			Listings:   repositories.ListingRepository{},
			Categories: repositories.CategoryRepository{},
			PageLimit:  env.PageLimit,
			RequestID:  middleware.GetRequestID(c),
		}

		result, err := svc.Search(req)
		if errors.Is(err, services.ErrPageOutOfRange) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// Suggestions handles GET /api/search/suggestions?key= and returns a
// flat list of matching listing names.
func Suggestions(c *gin.Context) {
	svc := services.SearchService{
		Listings:  repositories.ListingRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	names, err := svc.Suggestions(c.Query("key"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// Categories handles GET /api/categories for facet selection.
func Categories(c *gin.Context) {
	repo := repositories.CategoryRepository{}
	cats, err := repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "category query failed", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}
