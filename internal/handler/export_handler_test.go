package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/walkwithme/backend-go/internal/routing"
)

func exportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := routing.NewPlanner(&stubLoader{g: testGraph()}, stubElevation{}, stubWeather{}, stubDaylight{})
	h := NewExportHandler(planner)

	r := gin.New()
	r.GET("/api/v1/export_gpx", h.ExportGPX)
	return r
}

func TestExportGPX(t *testing.T) {
	r := exportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export_gpx?start=40.730,-73.997&end=40.735,-73.985", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/gpx+xml" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "route.gpx") {
		t.Errorf("content disposition = %q", cd)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<gpx") || !strings.Contains(body, "<trkpt") {
		t.Errorf("body is not a GPX track:\n%s", body)
	}
}

func TestExportGPXRejectsLoop(t *testing.T) {
	r := exportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export_gpx?start=40.730,-73.997&end=40.735,-73.985&mode=loop", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExportGPXRequiresEnd(t *testing.T) {
	r := exportRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export_gpx?start=40.730,-73.997", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
