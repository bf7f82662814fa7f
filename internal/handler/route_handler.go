package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/routing"
	"github.com/walkwithme/backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for route computation
type RouteHandler struct {
	planner *routing.Planner
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(planner *routing.Planner) *RouteHandler {
	return &RouteHandler{planner: planner}
}

// GetRoute handles GET /api/v1/route?start=lat,lon&end=lat,lon&mode=...&duration=...
func (h *RouteHandler) GetRoute(c *gin.Context) {
	start, err := models.ParseCoordinate(c.Query("start"))
	if err != nil {
		response.BadRequest(c, "Invalid start coordinate. Use \"lat,lon\".")
		return
	}

	var end *models.Coordinate
	if endStr := c.Query("end"); endStr != "" {
		parsed, err := models.ParseCoordinate(endStr)
		if err != nil {
			response.BadRequest(c, "Invalid end coordinate. Use \"lat,lon\".")
			return
		}
		end = &parsed
	}

	// Mode is validated before any core call
	mode := models.Mode(c.DefaultQuery("mode", string(models.ModeShortest)))
	if !models.ValidMode(mode) {
		response.BadRequest(c, "Invalid mode. Choose from shortest, safe, scenic, explore, elevation, best, loop.")
		return
	}
	if mode.RequiresEnd() && end == nil {
		response.BadRequest(c, "Mode "+string(mode)+" requires an end coordinate.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "20"))
	if err != nil || duration <= 0 {
		duration = routing.DefaultLoopDuration
	}

	result, err := h.planner.ComputeRoute(c.Request.Context(), start, end, mode, duration)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	response.Success(c, result)
}

// writeRouteError maps the routing error taxonomy onto HTTP statuses.
func writeRouteError(c *gin.Context, err error) {
	var routeErr *routing.RouteError
	if !errors.As(err, &routeErr) {
		response.InternalError(c, "Routing failed: "+err.Error())
		return
	}

	switch routeErr.Kind {
	case routing.KindInvalidMode, routing.KindEmptyInput:
		response.ErrorWithHints(c, 400, routeErr.Message, routeErr.Hints)
	case routing.KindNetworkNotFound, routing.KindSnapFailed,
		routing.KindNoPathFound, routing.KindLoopFailed:
		response.ErrorWithHints(c, 404, routeErr.Message, routeErr.Hints)
	default:
		response.InternalError(c, routeErr.Message)
	}
}
