package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sparkmatch/sparkmatch-backend/internal/delivery/http/handler"
	"github.com/sparkmatch/sparkmatch-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	handler.RegisterValidations()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.PUT("/me/preferences", r.profileHandler.UpdatePreferences)
				profile.POST("/me/photos", r.profileHandler.UploadPhoto)
				profile.DELETE("/me/photos/:photo_id", r.profileHandler.DeletePhoto)
			}

			// Feed routes
			feed := protected.Group("/feed")
			{
				feed.GET("/candidates", r.feedHandler.Candidates)
			}

			// Swipe + match routes
			protected.POST("/swipes", r.swipeHandler.RecordSwipe)
			protected.GET("/matches", r.swipeHandler.ListMatches)
		}
	}

	return router
}
