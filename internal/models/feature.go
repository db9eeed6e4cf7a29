package models

// GeometryKind classifies a loaded feature's geometry
type GeometryKind string

const (
	GeometryRoute   GeometryKind = "route" // LineString, one itinerary leg
	GeometryStop    GeometryKind = "stop"  // Point
	GeometryUnknown GeometryKind = "unknown"
)

// Coordinate is a single position on the map
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FeatureProps is the typed property set carried by every feature.
// Missing fields default to safe values at load time (category "Other",
// empty labels, zero year) instead of failing.
type FeatureProps struct {
	TripGroupKey string `json:"tripGroupKey"` // links the feature to a trip group
	TripName     string `json:"tripName"`
	TripKey      string `json:"tripKey"` // itinerary key, links legs of one event
	Category     string `json:"type"`    // Flight, Train, Hotel, ... or "Other"
	Year         int    `json:"year"`

	// Route legs
	FromLabel string `json:"fromLabel,omitempty"`
	ToLabel   string `json:"toLabel,omitempty"`
	Departure string `json:"departure,omitempty"` // ISO-8601, kept raw
	Arrival   string `json:"arrival,omitempty"`

	// Stops
	Label string `json:"label,omitempty"`
}

// Feature is one geometric record from the feature collection: a route leg
// or a stop. Read-only after load, never mutated.
type Feature struct {
	Kind  GeometryKind `json:"kind"`
	Line  []Coordinate `json:"line,omitempty"`  // routes, at least two positions
	Point Coordinate   `json:"point,omitempty"` // stops
	Props FeatureProps `json:"props"`
}

// CategoryOther is substituted for an empty or missing feature category.
const CategoryOther = "Other"
