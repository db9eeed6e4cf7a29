package view

import (
	"strings"
	"testing"

	"github.com/jengzang/travelmap-backend-go/internal/geodata"
	"github.com/jengzang/travelmap-backend-go/internal/models"
)

func testDocuments() *geodata.Documents {
	features := []models.Feature{
		{
			Kind: models.GeometryRoute,
			Line: []models.Coordinate{{Lat: 52.36, Lon: 13.50}, {Lat: 38.77, Lon: -9.13}},
			Props: models.FeatureProps{
				TripGroupKey: "T1", TripName: "Iberia Loop", TripKey: "IT-1",
				Category: "Flight", Year: 2023,
				FromLabel: "Berlin", ToLabel: "Lisbon",
				Departure: "2023-03-10T07:00:00Z",
			},
		},
		{
			Kind: models.GeometryRoute,
			Line: []models.Coordinate{{Lat: 38.77, Lon: -9.13}, {Lat: 40.49, Lon: -3.57}},
			Props: models.FeatureProps{
				TripGroupKey: "T1", TripName: "Iberia Loop", TripKey: "IT-2",
				Category: "Train", Year: 2024,
				FromLabel: "Lisbon", ToLabel: "Madrid",
				Departure: "2024-01-04T09:30:00Z",
			},
		},
		{
			Kind: models.GeometryStop,
			Point: models.Coordinate{Lat: 38.77, Lon: -9.13},
			Props: models.FeatureProps{
				TripGroupKey: "T1", TripName: "Iberia Loop",
				Category: "Flight", Year: 2023, Label: "Lisbon",
			},
		},
		// geometry the decoder could not classify; must never be drawn
		{
			Kind:  models.GeometryUnknown,
			Props: models.FeatureProps{TripGroupKey: "T1", Category: "Flight", Year: 2023},
		},
	}

	summary := models.Summary{
		SourceFiles:  2,
		SegmentCount: 2,
		TripGroups: []models.TripGroup{
			{
				TripGroupKey: "T1",
				TripName:     "Iberia Loop",
				Start:        "2023-03-10T07:00:00Z",
				End:          "2024-01-05T18:00:00Z",
				Events: []models.Event{
					{TripKey: "IT-1", Title: "Berlin → Lisbon", Category: "Flight", Year: 2023, Start: "2023-03-10T07:00:00Z", SegmentCount: 1},
					{TripKey: "IT-2", Title: "Lisbon → Madrid", Category: "Train", Year: 2024, Start: "2024-01-04T09:30:00Z", SegmentCount: 1},
				},
			},
		},
	}

	return &geodata.Documents{Features: features, Summary: summary}
}

func TestRenderUnfiltered(t *testing.T) {
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)

	vm := o.Render()

	if len(vm.Routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(vm.Routes))
	}
	if len(vm.Stops) != 1 {
		t.Errorf("got %d stops, want 1", len(vm.Stops))
	}
	if len(vm.Cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(vm.Cards))
	}
	if want := "1 trips · 2 routes · 2 source files"; vm.Status.Text != want {
		t.Errorf("status = %q, want %q", vm.Status.Text, want)
	}
	if surface.Snapshot().Status.Text != vm.Status.Text {
		t.Error("surface snapshot diverges from returned view model")
	}
}

func TestYearFilterNarrowsRoutes(t *testing.T) {
	// Both legs belong to trip group T1; filtering by year keeps only the
	// leg whose own year matches.
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)
	o.Render()

	o.SetFilters("2024", models.FilterAll)
	vm := surface.Snapshot()

	if len(vm.Routes) != 1 {
		t.Fatalf("got %d routes for year 2024, want 1", len(vm.Routes))
	}
	if vm.Routes[0].TripKey != "IT-2" {
		t.Errorf("drew %s, want the Train leg IT-2", vm.Routes[0].TripKey)
	}
	if len(vm.Stops) != 0 {
		t.Errorf("2023 stop still drawn under year=2024")
	}

	// the sidebar card survives with only the matching event
	if len(vm.Cards) != 1 || len(vm.Cards[0].Events) != 1 {
		t.Fatalf("card should keep exactly the 2024 event")
	}
	if vm.Cards[0].Events[0].Category != "Train" {
		t.Errorf("surviving event = %q, want the Train leg", vm.Cards[0].Events[0].Title)
	}
}

func TestSelectionIsMapOnly(t *testing.T) {
	docs := testDocuments()
	docs.Features = append(docs.Features, models.Feature{
		Kind: models.GeometryRoute,
		Line: []models.Coordinate{{Lat: 35.55, Lon: 139.78}, {Lat: 34.43, Lon: 135.24}},
		Props: models.FeatureProps{
			TripGroupKey: "T2", TripName: "Kansai", TripKey: "IT-3",
			Category: "Flight", Year: 2024,
			FromLabel: "Tokyo", ToLabel: "Osaka", Departure: "2024-05-01T08:00:00Z",
		},
	})
	docs.Summary.TripGroups = append(docs.Summary.TripGroups, models.TripGroup{
		TripGroupKey: "T2", TripName: "Kansai", Start: "2024-05-01T08:00:00Z",
		Events: []models.Event{
			{TripKey: "IT-3", Title: "Tokyo → Osaka", Category: "Flight", Year: 2024, Start: "2024-05-01T08:00:00Z", SegmentCount: 1},
		},
	})

	surface := NewSnapshotSurface()
	o := NewOrchestrator(docs, surface)
	o.Render()

	o.SelectTrip("T2")
	vm := surface.Snapshot()

	for _, r := range vm.Routes {
		if r.TripGroupKey != "T2" {
			t.Errorf("route %s drawn outside the selected trip", r.TripKey)
		}
	}
	// both cards stay listed; the selection never filters the sidebar
	if len(vm.Cards) != 2 {
		t.Fatalf("sidebar narrowed by selection: %d cards", len(vm.Cards))
	}
	if !vm.Status.Narrowed || !strings.Contains(vm.Status.Text, "showing one trip") {
		t.Errorf("status does not flag the single-trip view: %q", vm.Status.Text)
	}

	// toggling the same trip again clears the selection
	o.SelectTrip("T2")
	vm = surface.Snapshot()
	if vm.Status.Narrowed {
		t.Error("re-selecting the selected trip must clear the selection")
	}
	if len(vm.Routes) != 3 {
		t.Errorf("got %d routes after clearing selection, want 3", len(vm.Routes))
	}
}

func TestResetRestoresInitialStatus(t *testing.T) {
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)
	initial := o.Render().Status.Text

	o.SelectTrip("T1")
	o.SetFilters("2024", "Train")
	o.SetColorMode(ColorByTrip)
	if surface.Snapshot().Status.Text == initial {
		t.Fatal("filters had no effect on the status line")
	}

	o.Reset()
	vm := surface.Snapshot()
	if vm.Status.Text != initial {
		t.Errorf("status after reset = %q, want %q", vm.Status.Text, initial)
	}
	if got := o.Filters(); got.Year != models.FilterAll || got.Category != models.FilterAll || got.Selected != "" || got.Mode != ColorByCategory {
		t.Errorf("filters not back to defaults: %+v", got)
	}
}

func TestResetKeepsExpandState(t *testing.T) {
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)
	o.Render()

	o.SetExpanded("T1", true)
	o.SetFilters("2024", models.FilterAll)
	o.Reset()

	cards := surface.Snapshot().Cards
	if len(cards) != 1 || !cards[0].Expanded {
		t.Error("card expand state must survive a reset")
	}

	o.SetExpanded("T1", false)
	cards = surface.Snapshot().Cards
	if cards[0].Expanded {
		t.Error("collapse not applied")
	}
}

func TestTripColorModeSharesHue(t *testing.T) {
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)
	o.SetColorMode(ColorByTrip)

	vm := surface.Snapshot()
	if len(vm.Routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(vm.Routes))
	}
	if vm.Routes[0].Color != vm.Routes[1].Color {
		t.Errorf("legs of one trip group differ in trip mode: %s vs %s",
			vm.Routes[0].Color, vm.Routes[1].Color)
	}
	if vm.Routes[0].Color != IdentityColor("T1") {
		t.Errorf("color = %s, want the T1 identity color", vm.Routes[0].Color)
	}
	if vm.Routes[0].Color != vm.Stops[0].Color {
		t.Error("stop colored differently from its trip's routes")
	}

	o.SetColorMode(ColorByCategory)
	vm = surface.Snapshot()
	if vm.Routes[0].Color == vm.Routes[1].Color {
		t.Error("Flight and Train legs share a color in category mode")
	}
}

func TestReplaceDocumentsRebuildsIndex(t *testing.T) {
	surface := NewSnapshotSurface()
	o := NewOrchestrator(testDocuments(), surface)
	o.SetExpanded("T1", true)
	o.SetFilters("2023", models.FilterAll)

	fresh := testDocuments()
	fresh.Summary.SourceFiles = 5
	o.ReplaceDocuments(fresh)

	vm := surface.Snapshot()
	if vm.Status.SourceFiles != 5 {
		t.Errorf("source file count = %d, want the reloaded 5", vm.Status.SourceFiles)
	}
	if got := o.Filters(); got.Year != "2023" {
		t.Errorf("year filter lost across reload: %q", got.Year)
	}
	if len(vm.Cards) != 1 || !vm.Cards[0].Expanded {
		t.Error("expand state lost across reload")
	}
}
