package routes

import (
	"streaming-app/internal/api/adminauth"
	adsapi "streaming-app/internal/api/ads"
	catalogapi "streaming-app/internal/api/catalog"
	contentapi "streaming-app/internal/api/content"
	upcomingapi "streaming-app/internal/api/upcoming"
	viewsapi "streaming-app/internal/api/views"
	"streaming-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Admin authentication
	api.POST("/admin/login", adminauth.Login)
	api.POST("/admin/check-blocked", adminauth.CheckBlocked)

	// Public catalog reads
	api.GET("/content", catalogapi.GetAllContent)
	api.GET("/content/feature/:tag", catalogapi.GetContentByFeature)
	api.GET("/content/genre/:genre", catalogapi.GetContentByGenre)
	api.GET("/content/:id", catalogapi.GetContentByID)

	// Upcoming announcements (public read)
	api.GET("/upcoming", upcomingapi.ListUpcoming)

	// View counting
	api.POST("/views/movie/:contentId", viewsapi.IncrementMovieViews)
	api.POST("/views/episode/:episodeId", viewsapi.IncrementEpisodeViews)
	api.POST("/views/show/:episodeId", viewsapi.IncrementEpisodeViews)
	api.GET("/views/:contentType/:contentId", viewsapi.GetViews)
	api.GET("/platform-stats", viewsapi.GetPlatformStats)

	// Advertisement intake (public write, sanitized + rate limited per IP)
	public := api.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/advertisement-requests", adsapi.CreateRequest)

	// Admin routes
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.POST("/content", contentapi.CreateContent)
	admin.PUT("/content/:id", contentapi.UpdateContent)
	admin.DELETE("/content/:id", contentapi.DeleteContent)

	admin.POST("/upcoming", upcomingapi.CreateUpcoming)
	admin.PUT("/upcoming/:id", upcomingapi.UpdateUpcoming)
	admin.DELETE("/upcoming/:id", upcomingapi.DeleteUpcoming)
	admin.POST("/upcoming/cleanup", upcomingapi.CleanupExpired)

	admin.GET("/advertisement-requests", adsapi.ListRequests)
	admin.DELETE("/advertisement-requests/:id", adsapi.DeleteRequest)
}
