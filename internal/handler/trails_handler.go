package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/trails"
	"github.com/walkwithme/backend-go/pkg/response"
)

// TrailsHandler handles HTTP requests for nearby trail discovery
type TrailsHandler struct {
	service *trails.Service
}

// NewTrailsHandler creates a new trails handler
func NewTrailsHandler(service *trails.Service) *TrailsHandler {
	return &TrailsHandler{service: service}
}

// GetTrails handles GET /api/v1/trails?start=lat,lon&radius=...&limit=...
func (h *TrailsHandler) GetTrails(c *gin.Context) {
	start, err := models.ParseCoordinate(c.Query("start"))
	if err != nil {
		response.BadRequest(c, "Invalid start coordinate. Use \"lat,lon\".")
		return
	}

	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "2000"), 64)
	if err != nil || radius <= 0 {
		radius = 2000
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	found, err := h.service.FindNearby(c.Request.Context(), start.Lat, start.Lon, radius, limit)
	if err != nil {
		response.InternalError(c, "Trail discovery failed")
		return
	}
	if len(found) == 0 {
		response.NotFound(c, "No trails found nearby")
		return
	}

	response.Success(c, found)
}
