package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// Earth radii
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// HaversineDistance calculates the great-circle distance between two points
// in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// RouteLengthKm returns the great-circle length of a route polyline in
// kilometers. Ingestion emits two-point legs, but longer lines are summed
// segment by segment.
func RouteLengthKm(line []models.Coordinate) float64 {
	if len(line) < 2 {
		return 0
	}

	var meters float64
	for i := 1; i < len(line); i++ {
		meters += HaversineDistance(line[i-1].Lat, line[i-1].Lon, line[i].Lat, line[i].Lon)
	}
	return meters / 1000.0
}
