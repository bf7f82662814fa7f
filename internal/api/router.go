package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/config"
	"github.com/walkwithme/backend-go/internal/handler"
	"github.com/walkwithme/backend-go/internal/middleware"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Route   *handler.RouteHandler
	Geocode *handler.GeocodeHandler
	Trails  *handler.TrailsHandler
	Export  *handler.ExportHandler
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Walk With Me API is running",
		})
	})

	// API routes
	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/route", h.Route.GetRoute)
		apiGroup.GET("/autocomplete", h.Geocode.Autocomplete)
		apiGroup.GET("/reverse_geocode", h.Geocode.ReverseGeocode)
		apiGroup.GET("/trails", h.Trails.GetTrails)
		apiGroup.GET("/export_gpx", h.Export.ExportGPX)
	}

	return r
}
