package gpxexport

import (
	"github.com/pkg/errors"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/walkwithme/backend-go/internal/models"
)

// Build serializes a route's coordinates into a GPX track document.
func Build(coords []models.Coordinate) ([]byte, error) {
	if len(coords) == 0 {
		return nil, errors.New("no coordinates to export")
	}

	points := make([]gpx.GPXPoint, len(coords))
	for i, c := range coords {
		points[i] = gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  c.Lat,
				Longitude: c.Lon,
			},
		}
	}

	doc := &gpx.GPX{
		Creator: "WalkWithMe/1.0",
		Tracks: []gpx.GPXTrack{
			{
				Name: "Walk With Me route",
				Segments: []gpx.GPXTrackSegment{
					{Points: points},
				},
			},
		},
	}

	out, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, errors.Wrap(err, "gpx serialization failed")
	}
	return out, nil
}
