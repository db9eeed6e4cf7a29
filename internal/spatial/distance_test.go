package spatial

import (
	"math"
	"testing"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{name: "same point", lat1: 52.52, lon1: 13.405, lat2: 52.52, lon2: 13.405, want: 0, tolerance: 0.001},
		{name: "berlin to lisbon", lat1: 52.3667, lon1: 13.5033, lat2: 38.7813, lon2: -9.1359, want: 2313000, tolerance: 25000},
		{name: "one degree at equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, want: 111195, tolerance: 200},
		{name: "pole to pole", lat1: 90, lon1: 0, lat2: -90, lon2: 0, want: math.Pi * EarthRadiusMeters, tolerance: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("got %.0f m, want %.0f ± %.0f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestRouteLengthKm(t *testing.T) {
	if got := RouteLengthKm(nil); got != 0 {
		t.Errorf("empty line = %v, want 0", got)
	}
	if got := RouteLengthKm([]models.Coordinate{{Lat: 1, Lon: 1}}); got != 0 {
		t.Errorf("single point = %v, want 0", got)
	}

	// a three-point line sums its two legs
	line := []models.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}
	got := RouteLengthKm(line)
	leg := HaversineDistance(0, 0, 0, 1) / 1000
	if math.Abs(got-2*leg) > 1e-9 {
		t.Errorf("got %v km, want %v", got, 2*leg)
	}
}
