package stats

import (
	"math"
	"testing"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

func TestYearly(t *testing.T) {
	groups := []models.TripGroup{
		{
			TripGroupKey: "T1", Year: 2023,
			Start: "2023-03-10T07:00:00Z", End: "2023-03-14T07:00:00Z",
			Events: []models.Event{
				{Category: "Flight", SegmentCount: 2},
				{Category: "Hotel", SegmentCount: 0},
			},
		},
		{
			TripGroupKey: "T2",
			Start: "2023-08-01T00:00:00Z", End: "2023-08-03T00:00:00Z",
			Events: []models.Event{{Category: "Train", SegmentCount: 1}},
		},
		{
			TripGroupKey: "T3", Year: 2024,
			Start: "2024-05-01T00:00:00Z", End: "2024-05-02T00:00:00Z",
			Events: []models.Event{{Category: "Flight", SegmentCount: 3}},
		},
		// no year and no parseable dates: contributes nothing
		{TripGroupKey: "T4", Start: "unknown"},
	}

	features := []models.Feature{
		{
			Kind: models.GeometryRoute,
			Line: []models.Coordinate{{Lat: 52.3667, Lon: 13.5033}, {Lat: 38.7813, Lon: -9.1359}},
			Props: models.FeatureProps{Year: 2023},
		},
		{
			Kind:  models.GeometryStop,
			Point: models.Coordinate{Lat: 38.78, Lon: -9.13},
			Props: models.FeatureProps{Year: 2023},
		},
	}

	years := Yearly(groups, features)
	if len(years) != 2 {
		t.Fatalf("got %d years, want 2", len(years))
	}

	y23, y24 := years[0], years[1]
	if y23.Year != 2023 || y24.Year != 2024 {
		t.Fatalf("years not ascending: %v", years)
	}

	if y23.Trips != 2 {
		t.Errorf("2023 trips = %d, want 2 (start date supplies the missing year)", y23.Trips)
	}
	if y23.Segments != 3 {
		t.Errorf("2023 segments = %d, want 3", y23.Segments)
	}
	// Berlin to Lisbon is roughly 2300 km great-circle
	if y23.DistanceKm < 2200 || y23.DistanceKm > 2450 {
		t.Errorf("2023 distance = %.0f km, outside the plausible range", y23.DistanceKm)
	}
	// trip lengths 4 days and 2 days
	if math.Abs(y23.AvgTripDays-3.0) > 1e-9 {
		t.Errorf("2023 avg trip days = %v, want 3", y23.AvgTripDays)
	}
	if math.Abs(y23.MedianTripDays-3.0) > 1e-9 {
		t.Errorf("2023 median trip days = %v, want 3", y23.MedianTripDays)
	}
	if math.Abs(y23.LongestTrip-4.0) > 1e-9 {
		t.Errorf("2023 longest trip = %v, want 4", y23.LongestTrip)
	}

	if y24.Trips != 1 || y24.Segments != 3 {
		t.Errorf("2024 rollup: %+v", y24)
	}
	if y24.DistanceKm != 0 {
		t.Errorf("2024 distance = %v, no routes carry that year", y24.DistanceKm)
	}
}

func TestTopDestinations(t *testing.T) {
	route := func(to string) models.Feature {
		return models.Feature{
			Kind:  models.GeometryRoute,
			Props: models.FeatureProps{ToLabel: to},
		}
	}

	features := []models.Feature{
		route("Lisbon (LIS)"),
		route("Lisbon (LIS)"),
		route("Tokyo (HND)"),
		route("Berlin (BER)"),
		route("Tokyo (HND)"),
		route(""), // unlabeled arrivals are skipped
		{Kind: models.GeometryStop, Props: models.FeatureProps{ToLabel: "Lisbon (LIS)"}},
	}

	dests := TopDestinations(features, 2)
	if len(dests) != 2 {
		t.Fatalf("limit not applied: %d entries", len(dests))
	}
	if dests[0].Label != "Lisbon (LIS)" || dests[0].Arrivals != 2 {
		t.Errorf("top entry = %+v", dests[0])
	}
	if dests[1].Label != "Tokyo (HND)" {
		t.Errorf("second entry = %+v (ties break alphabetically)", dests[1])
	}

	all := TopDestinations(features, 0)
	if len(all) != 3 {
		t.Errorf("zero limit should return everything, got %d", len(all))
	}
}
