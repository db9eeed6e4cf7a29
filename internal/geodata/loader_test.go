package geodata

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

func writeFixture(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const featuresFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": [[13.50, 52.36], [-9.13, 38.77]]},
      "properties": {"tripGroupKey": "T1", "tripName": "Iberia Loop", "tripKey": "IT-1",
        "type": "Flight", "year": 2023, "fromLabel": "Berlin", "toLabel": "Lisbon",
        "departure": "2023-03-10T07:00:00Z"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-9.13, 38.77]},
      "properties": {"tripGroupKey": "T1", "year": 2023, "label": "Lisbon"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "LineString", "coordinates": "oops"},
      "properties": {"tripGroupKey": "T1", "year": 2023}
    },
    {
      "type": "Feature",
      "properties": {"tripGroupKey": "T1", "year": 2023}
    }
  ]
}`

const summaryFixture = `{
  "sourceFiles": 1,
  "segmentCount": 1,
  "tripGroups": [
    {"tripGroupKey": "T1", "tripName": "Iberia Loop",
     "start": "2023-03-10T07:00:00Z", "end": "2023-03-13T22:00:00Z",
     "events": [{"tripKey": "IT-1", "title": "Berlin → Lisbon", "type": "Flight",
       "year": 2023, "start": "2023-03-10T07:00:00Z", "segmentCount": 1}]}
  ]
}`

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trips.geojson":
			w.Write([]byte(featuresFixture))
		case "/summary.json":
			w.Write([]byte(summaryFixture))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadFromHTTP(t *testing.T) {
	srv := fixtureServer(t)

	docs, err := Load(srv.URL+"/trips.geojson", srv.URL+"/summary.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(docs.Features) != 4 {
		t.Fatalf("got %d features, want all 4 kept", len(docs.Features))
	}
	if docs.Summary.SourceFiles != 1 || len(docs.Summary.TripGroups) != 1 {
		t.Errorf("summary not decoded: %+v", docs.Summary)
	}
}

func TestLoadFailsFastOnMissingDocument(t *testing.T) {
	srv := fixtureServer(t)

	_, err := Load(srv.URL+"/nope.geojson", srv.URL+"/summary.json")
	if err == nil {
		t.Fatal("missing feature document must abort the load")
	}
	if !strings.Contains(err.Error(), "/nope.geojson") || !strings.Contains(err.Error(), "404") {
		t.Errorf("error should name the failing URL and status, got: %v", err)
	}

	_, err = Load(srv.URL+"/trips.geojson", srv.URL+"/nope.json")
	if err == nil {
		t.Fatal("missing summary document must abort the load")
	}
}

func TestDecodeFeatureCollectionLenient(t *testing.T) {
	features, err := DecodeFeatureCollection([]byte(featuresFixture))
	if err != nil {
		t.Fatalf("DecodeFeatureCollection: %v", err)
	}
	if len(features) != 4 {
		t.Fatalf("got %d features, want 4", len(features))
	}

	route := features[0]
	if route.Kind != models.GeometryRoute {
		t.Fatalf("feature 0 kind = %v, want route", route.Kind)
	}
	// GeoJSON stores [lon, lat]
	if route.Line[0].Lat != 52.36 || route.Line[0].Lon != 13.50 {
		t.Errorf("coordinate order swapped: %+v", route.Line[0])
	}
	if route.Props.Category != "Flight" || route.Props.Year != 2023 {
		t.Errorf("properties not decoded: %+v", route.Props)
	}

	stop := features[1]
	if stop.Kind != models.GeometryStop || stop.Point.Lat != 38.77 {
		t.Errorf("point feature not decoded: %+v", stop)
	}
	if stop.Props.Category != models.CategoryOther {
		t.Errorf("empty category should default to %q, got %q", models.CategoryOther, stop.Props.Category)
	}

	// malformed coordinates and missing geometry are kept but unclassified
	for i := 2; i < 4; i++ {
		if features[i].Kind != models.GeometryUnknown {
			t.Errorf("feature %d kind = %v, want unknown", i, features[i].Kind)
		}
	}
}

func TestDecodeFeatureCollectionBrokenDocument(t *testing.T) {
	if _, err := DecodeFeatureCollection([]byte(`{"features": 12}`)); err == nil {
		t.Error("structurally broken document must be an error")
	}
}

func TestLoadFromLocalFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir+"/trips.geojson", featuresFixture)
	writeFixture(t, dir+"/summary.json", summaryFixture)

	docs, err := Load(dir+"/trips.geojson", dir+"/summary.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs.Features) != 4 {
		t.Errorf("got %d features, want 4", len(docs.Features))
	}
}
