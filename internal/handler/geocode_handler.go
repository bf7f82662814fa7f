package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/geocode"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/pkg/response"
)

// GeocodeHandler handles HTTP requests for autocomplete and reverse geocoding
type GeocodeHandler struct {
	client *geocode.Client
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{client: client}
}

// Autocomplete handles GET /api/v1/autocomplete?q=...&user_lat=...&user_lon=...&limit=...
func (h *GeocodeHandler) Autocomplete(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing query parameter q")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "7"))
	if err != nil || limit <= 0 {
		limit = 7
	}

	var userLat, userLon *float64
	if latStr, lonStr := c.Query("user_lat"), c.Query("user_lon"); latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			userLat, userLon = &lat, &lon
		}
	}

	suggestions := h.client.Autocomplete(c.Request.Context(), query, userLat, userLon, limit)
	response.Success(c, suggestions)
}

// ReverseGeocode handles GET /api/v1/reverse_geocode?coords=lat,lon
func (h *GeocodeHandler) ReverseGeocode(c *gin.Context) {
	coord, err := models.ParseCoordinate(c.Query("coords"))
	if err != nil {
		response.BadRequest(c, "Invalid coordinate format. Use \"lat,lon\".")
		return
	}

	address, err := h.client.ReverseGeocode(c.Request.Context(), coord.Lat, coord.Lon)
	if err != nil {
		response.NotFound(c, "No address found")
		return
	}

	response.Success(c, gin.H{"address": address})
}
