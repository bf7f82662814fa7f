package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/gpxexport"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/routing"
	"github.com/walkwithme/backend-go/pkg/response"
)

// ExportHandler handles HTTP requests for GPX export
type ExportHandler struct {
	planner *routing.Planner
}

// NewExportHandler creates a new export handler
func NewExportHandler(planner *routing.Planner) *ExportHandler {
	return &ExportHandler{planner: planner}
}

// ExportGPX handles GET /api/v1/export_gpx?start=lat,lon&end=lat,lon&mode=...
func (h *ExportHandler) ExportGPX(c *gin.Context) {
	start, err := models.ParseCoordinate(c.Query("start"))
	if err != nil {
		response.BadRequest(c, "Invalid start coordinate. Use \"lat,lon\".")
		return
	}
	end, err := models.ParseCoordinate(c.Query("end"))
	if err != nil {
		response.BadRequest(c, "Invalid end coordinate. Use \"lat,lon\".")
		return
	}

	mode := models.Mode(c.DefaultQuery("mode", string(models.ModeShortest)))
	if !models.ValidMode(mode) || mode == models.ModeLoop {
		response.BadRequest(c, "Invalid mode for GPX export.")
		return
	}

	result, err := h.planner.ComputeRoute(c.Request.Context(), start, &end, mode, routing.DefaultLoopDuration)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	doc, err := gpxexport.Build(result.Coordinates)
	if err != nil {
		response.InternalError(c, "GPX export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="route.gpx"`)
	c.Data(200, "application/gpx+xml", doc)
}
