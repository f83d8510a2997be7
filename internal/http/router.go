package api

import (
	"log"
	stdhttp "net/http"

	intconfig "campusmarket/internal/config"
	h "campusmarket/internal/http/handlers"
	"campusmarket/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig(env)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Public catalog
		search := api.Group("/search")
		search.GET("", h.Search(env))
		search.GET("/suggestions", h.Suggestions)
		api.GET("/categories", h.Categories)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))
		auth.POST("/register", h.Register)

		// Registered users
		authed := api.Group("", middleware.Auth([]byte(env.JWTSecret)))
		authed.POST("/listings", h.CreateListing)
		me := authed.Group("/users/me")
		me.GET("/listings", h.MyListings)
		me.GET("/listings/report", h.MyListingsReport)

		// Moderation
		admin := authed.Group("/admin", middleware.RequireRoles("admin"))
		admin.GET("/dashboard", h.AdminDashboard)
		admin.POST("/listings/:id/approve", h.ApproveListing)
		admin.POST("/listings/:id/disapprove", h.DisapproveListing)
		admin.POST("/listings/:id/remove", h.RemoveListing)
	}

	return r
}

func corsConfig(env intconfig.Env) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = env.CORSOrigins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cfg
}
