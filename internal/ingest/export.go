package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jengzang/travelmap-backend-go/internal/logger"
	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// AirportIndex resolves an IATA code to its position, nil when unknown.
type AirportIndex interface {
	Lookup(iata string) (*models.Airport, error)
}

// SegmentRecord is one mapped leg as collected from the raw exports.
type SegmentRecord struct {
	TripGroupKey string
	TripName     string
	TripKey      string // unique per event
	Category     string
	FromLabel    string
	ToLabel      string
	Departure    string // RFC 3339 UTC, empty when unknown
	Arrival      string
	FromLat      float64
	FromLon      float64
	ToLat        float64
	ToLon        float64
}

// EventSummary is one logical event, mapped or not, destined for the
// summary document.
type EventSummary struct {
	TripGroupKey string `json:"tripGroupKey"`
	TripName     string `json:"tripName"`
	TripKey      string `json:"tripKey"`
	Title        string `json:"title"`
	Category     string `json:"type"`
	Year         int    `json:"year,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	SegmentCount int    `json:"segmentCount"`
}

// Raw export wire format (one JSON object per .txt file).
type rawExport struct {
	TripID     string     `json:"tripID"`
	CustomName string     `json:"customName"`
	Name       string     `json:"name"`
	TripEvents []rawEvent `json:"tripEvents"`
}

type rawEvent struct {
	ID             json.Number `json:"id"`
	UIDescription  string      `json:"UIDescription"`
	Address        *rawAddress `json:"address"`
	VenueStartDate string      `json:"venueStartDate"`
	VenueEndDate   string      `json:"venueEndDate"`
	Legs           []rawLeg    `json:"legs"`
}

type rawLeg struct {
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	DepartureDate       string      `json:"departureDate"`
	DepartureTimeZoneID string      `json:"departureTimeZoneID"`
	ArrivalDate         string      `json:"arrivalDate"`
	ArrivalTimeZoneID   string      `json:"arrivalTimeZoneID"`
	DepartureAddress    *rawAddress `json:"departureAddress"`
	ArrivalAddress      *rawAddress `json:"arrivalAddress"`
}

type rawAddress struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	City         string   `json:"city"`
	LocationName string   `json:"locationName"`
	RawAddress   string   `json:"rawAddress"`
}

// CollectSegments walks the raw export directory and extracts every
// mappable leg plus one summary entry per event. Exports that fail to
// decode are skipped; a leg whose endpoints cannot be located (directly or
// via airport code) is dropped.
func CollectSegments(rawDir string, airports AirportIndex) ([]SegmentRecord, []EventSummary, int, error) {
	paths, err := filepath.Glob(filepath.Join(rawDir, "*.txt"))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to list %s: %w", rawDir, err)
	}
	sort.Strings(paths)

	var segments []SegmentRecord
	var events []EventSummary

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}

		var export rawExport
		if err := json.Unmarshal(data, &export); err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		segs, evs := collectExport(&export, stem, airports)
		segments = append(segments, segs...)
		events = append(events, evs...)
	}

	return segments, events, len(paths), nil
}

func collectExport(export *rawExport, stem string, airports AirportIndex) ([]SegmentRecord, []EventSummary) {
	tripGroupKey := export.TripID
	if tripGroupKey == "" {
		tripGroupKey = stem
	}
	tripName := export.CustomName
	if tripName == "" {
		tripName = export.Name
	}
	if tripName == "" {
		tripName = stem
	}

	var segments []SegmentRecord
	var events []EventSummary

	for i, ev := range export.TripEvents {
		category := ev.UIDescription
		if category == "" {
			category = models.CategoryOther
		}

		id := ev.ID.String()
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		tripKey := stem + ":" + id

		// Venue events (hotels) carry their own coordinates and dates and
		// produce no route geometry.
		if strings.EqualFold(category, "Hotel") && ev.Address != nil && ev.Address.Latitude != nil {
			start, _ := parseExportTime(ev.VenueStartDate, "")
			end, _ := parseExportTime(ev.VenueEndDate, "")
			title := ev.Address.LocationName
			if title == "" {
				title = ev.Address.RawAddress
			}
			if title == "" {
				title = "Hotel"
			}

			events = append(events, EventSummary{
				TripGroupKey: tripGroupKey,
				TripName:     tripName,
				TripKey:      tripKey,
				Title:        title,
				Category:     "Hotel",
				Year:         yearOf(start),
				Start:        exportTimeISO(start),
				End:          exportTimeISO(end),
				SegmentCount: 0,
			})
			continue
		}

		segs, summary := collectEventLegs(ev, tripGroupKey, tripName, tripKey, category, airports)
		segments = append(segments, segs...)
		if summary != nil {
			events = append(events, *summary)
		}
	}

	return segments, events
}

func collectEventLegs(ev rawEvent, tripGroupKey, tripName, tripKey, category string, airports AirportIndex) ([]SegmentRecord, *EventSummary) {
	var segments []SegmentRecord
	var rawCount int
	var start, end time.Time
	var titleGuess string

	for _, leg := range ev.Legs {
		for _, seg := range leg.Segments {
			rawCount++

			dep, depOK := parseExportTime(seg.DepartureDate, seg.DepartureTimeZoneID)
			arr, arrOK := parseExportTime(seg.ArrivalDate, seg.ArrivalTimeZoneID)
			if depOK && (start.IsZero() || dep.Before(start)) {
				start = dep
			}
			if arrOK && (end.IsZero() || arr.After(end)) {
				end = arr
			}

			fromLat, fromLon, fromLabel, fromOK := locate(seg.DepartureAddress, airports, "Departure")
			toLat, toLon, toLabel, toOK := locate(seg.ArrivalAddress, airports, "Arrival")
			if !fromOK || !toOK {
				// can't map it
				continue
			}

			if titleGuess == "" {
				titleGuess = fromLabel + " → " + toLabel
			}

			segments = append(segments, SegmentRecord{
				TripGroupKey: tripGroupKey,
				TripName:     tripName,
				TripKey:      tripKey,
				Category:     category,
				FromLabel:    fromLabel,
				ToLabel:      toLabel,
				Departure:    exportTimeISO(dep),
				Arrival:      exportTimeISO(arr),
				FromLat:      fromLat,
				FromLon:      fromLon,
				ToLat:        toLat,
				ToLon:        toLon,
			})
		}
	}

	if rawCount == 0 {
		return segments, nil
	}

	title := titleGuess
	if title == "" {
		title = category + " trip"
	}

	return segments, &EventSummary{
		TripGroupKey: tripGroupKey,
		TripName:     tripName,
		TripKey:      tripKey,
		Title:        title,
		Category:     category,
		Year:         yearOf(start),
		Start:        exportTimeISO(start),
		End:          exportTimeISO(end),
		SegmentCount: len(segments), // mapped legs only
	}
}

// locate resolves an address to coordinates and a display label, falling
// back to an airport-code lookup when the export carries no position.
func locate(addr *rawAddress, airports AirportIndex, fallbackLabel string) (lat, lon float64, label string, ok bool) {
	if addr == nil {
		return 0, 0, "", false
	}

	label = addr.City
	if label == "" {
		label = addr.RawAddress
	}
	if label == "" {
		label = fallbackLabel
	}

	if addr.Latitude != nil && addr.Longitude != nil {
		return *addr.Latitude, *addr.Longitude, label, true
	}

	code := IATAFromRaw(addr.RawAddress)
	if code == "" || airports == nil {
		return 0, 0, label, false
	}

	airport, err := airports.Lookup(code)
	if err != nil {
		logger.Warnf("airport lookup %s: %v", code, err)
		return 0, 0, label, false
	}
	if airport == nil {
		return 0, 0, label, false
	}

	if !strings.Contains(label, code) {
		label = label + " (" + code + ")"
	}
	return airport.Lat, airport.Lon, label, true
}

// Export timestamps look like "2024-03-02 14:05:00.000000", zone given
// separately as an IANA name.
func parseExportTime(s, tzid string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Unknown zones degrade to UTC rather than dropping the timestamp.
	loc := time.UTC
	if tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
	}

	for _, layout := range []string{"2006-01-02 15:04:05.000000", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func exportTimeISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func yearOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()
}
