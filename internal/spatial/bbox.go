package spatial

// Degree approximations used when buffering a bounding box by a distance in
// meters. Only valid at mid latitudes, which is where the service operates.
const (
	MetersPerDegreeLat = 111111.0
	MetersPerDegreeLon = 85000.0
)

// BoundingBox is a geographic rectangle in degrees.
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// BoundingBoxAround builds the box covering both points, expanded on every
// side by bufferM meters.
func BoundingBoxAround(lat1, lon1, lat2, lon2, bufferM float64) BoundingBox {
	latBuffer := bufferM / MetersPerDegreeLat
	lonBuffer := bufferM / MetersPerDegreeLon

	return BoundingBox{
		North: max(lat1, lat2) + latBuffer,
		South: min(lat1, lat2) - latBuffer,
		East:  max(lon1, lon2) + lonBuffer,
		West:  min(lon1, lon2) - lonBuffer,
	}
}
