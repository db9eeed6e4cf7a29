package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// geoFeature is the GeoJSON wire form emitted for the map frontend.
type geoFeature struct {
	Type       string                 `json:"type"`
	Geometry   geoGeometry            `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geoGeometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// summaryDoc mirrors models.Summary but keeps the flat event list the
// original output carried alongside the grouped one.
type summaryDoc struct {
	SourceFiles  int                `json:"sourceFiles"`
	SegmentCount int                `json:"segmentCount"`
	TripGroups   []summaryTripGroup `json:"tripGroups"`
	Events       []EventSummary     `json:"events"`
}

type summaryTripGroup struct {
	TripGroupKey string         `json:"tripGroupKey"`
	TripName     string         `json:"tripName"`
	Year         int            `json:"year,omitempty"`
	Start        string         `json:"start,omitempty"`
	End          string         `json:"end,omitempty"`
	Events       []EventSummary `json:"events"`
}

// toGeoJSON renders every mapped segment as one LineString plus its two
// endpoint Points. Points go into the clustering layer on the frontend, so
// duplicates across segments are fine.
func toGeoJSON(segments []SegmentRecord) geoCollection {
	features := make([]geoFeature, 0, len(segments)*3)

	for _, s := range segments {
		year := segmentYear(s)

		features = append(features, geoFeature{
			Type: "Feature",
			Geometry: geoGeometry{
				Type: "LineString",
				Coordinates: [][]float64{
					{s.FromLon, s.FromLat},
					{s.ToLon, s.ToLat},
				},
			},
			Properties: map[string]interface{}{
				"tripGroupKey": s.TripGroupKey,
				"tripName":     s.TripName,
				"tripKey":      s.TripKey,
				"type":         s.Category,
				"year":         year,
				"fromLabel":    s.FromLabel,
				"toLabel":      s.ToLabel,
				"departure":    s.Departure,
				"arrival":      s.Arrival,
			},
		})

		features = append(features,
			pointFeature(s, year, s.FromLon, s.FromLat, s.FromLabel),
			pointFeature(s, year, s.ToLon, s.ToLat, s.ToLabel),
		)
	}

	return geoCollection{Type: "FeatureCollection", Features: features}
}

func pointFeature(s SegmentRecord, year int, lon, lat float64, label string) geoFeature {
	return geoFeature{
		Type:     "Feature",
		Geometry: geoGeometry{Type: "Point", Coordinates: []float64{lon, lat}},
		Properties: map[string]interface{}{
			"tripGroupKey": s.TripGroupKey,
			"tripName":     s.TripName,
			"tripKey":      s.TripKey,
			"type":         s.Category,
			"year":         year,
			"label":        label,
		},
	}
}

// segmentYear prefers the departure year, then the arrival year. The
// timestamps are already RFC 3339 at this point.
func segmentYear(s SegmentRecord) int {
	for _, stamp := range []string{s.Departure, s.Arrival} {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			return t.Year()
		}
	}
	return 0
}

// buildSummary groups the event summaries by trip-group key, rolls up the
// date bounds, and sorts groups and their events by start.
func buildSummary(segments []SegmentRecord, events []EventSummary, sourceFiles int) summaryDoc {
	byKey := make(map[string]*summaryTripGroup)
	var order []string

	for _, e := range events {
		if e.TripGroupKey == "" {
			continue
		}
		g, ok := byKey[e.TripGroupKey]
		if !ok {
			g = &summaryTripGroup{
				TripGroupKey: e.TripGroupKey,
				TripName:     e.TripName,
			}
			byKey[e.TripGroupKey] = g
			order = append(order, e.TripGroupKey)
		}
		g.Events = append(g.Events, e)

		if e.Start != "" && (g.Start == "" || e.Start < g.Start) {
			g.Start = e.Start
		}
		if e.End != "" && (g.End == "" || e.End > g.End) {
			g.End = e.End
		}
		if e.Year != 0 && (g.Year == 0 || e.Year < g.Year) {
			g.Year = e.Year
		}
	}

	groups := make([]summaryTripGroup, 0, len(order))
	for _, key := range order {
		g := byKey[key]
		sort.SliceStable(g.Events, func(i, j int) bool { return g.Events[i].Start < g.Events[j].Start })
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Start < groups[j].Start })

	return summaryDoc{
		SourceFiles:  sourceFiles,
		SegmentCount: len(segments),
		TripGroups:   groups,
		Events:       events,
	}
}

// WriteOutputs writes the two documents the server consumes.
func WriteOutputs(outDir string, segments []SegmentRecord, events []EventSummary, sourceFiles int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	if err := writeJSON(filepath.Join(outDir, "trips.geojson"), toGeoJSON(segments), false); err != nil {
		return err
	}
	return writeJSON(filepath.Join(outDir, "summary.json"), buildSummary(segments, events, sourceFiles), true)
}

func writeJSON(path string, v interface{}, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
