// Package server exposes the dithering pipeline over HTTP for browser-based
// tools and devices that pull pre-dithered screens.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/halftonelab/halftone/internal/config"
	"github.com/halftonelab/halftone/internal/database"
	"github.com/halftonelab/halftone/internal/dither"
	"github.com/halftonelab/halftone/internal/version"
)

// Server wires the HTTP surface to the dithering pipeline and the optional
// job history.
type Server struct {
	settings config.Settings
	jobs     *database.JobService
}

// New creates a server. jobs may be nil when history is disabled.
func New(settings config.Settings, jobs *database.JobService) *Server {
	return &Server{settings: settings, jobs: jobs}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID())

	// Permissive CORS: the render endpoint is meant to be callable from
	// browser-based device simulators.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	rateLimiter := NewRateLimiter(s.settings.RateLimitPerSecond, s.settings.RateLimitBurst)

	api := router.Group("/api")
	{
		api.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.GET("/version", func(c *gin.Context) {
			c.JSON(http.StatusOK, version.Get())
		})
		api.GET("/kernels", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"kernels": dither.Names()})
		})
		api.GET("/jobs", s.jobsHandler)
		api.POST("/render",
			rateLimiter.Middleware(),
			RequestSizeLimit(int64(s.settings.MaxUploadKB)*1024),
			s.renderHandler,
		)
	}

	return router
}
