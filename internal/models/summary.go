package models

// Event is one logical itinerary item inside a trip group (one flight, one
// train ride, one hotel stay). Multi-leg items carry a TripKey used to look
// up their legs in the segment index.
type Event struct {
	TripKey      string `json:"tripKey"`
	Title        string `json:"title"`
	Category     string `json:"type"`
	Year         int    `json:"year,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	SegmentCount int    `json:"segmentCount"` // declared by ingestion, displayed as-is
}

// TripGroup is an aggregation unit from the summary document: a named trip
// with date bounds and an ordered event list.
type TripGroup struct {
	TripGroupKey string  `json:"tripGroupKey"`
	TripName     string  `json:"tripName"`
	Year         int     `json:"year,omitempty"`
	Start        string  `json:"start,omitempty"`
	End          string  `json:"end,omitempty"`
	Events       []Event `json:"events"`
}

// Summary is the trip summary document, loaded once at startup.
type Summary struct {
	SourceFiles  int         `json:"sourceFiles"`
	SegmentCount int         `json:"segmentCount"`
	TripGroups   []TripGroup `json:"tripGroups"`
	Events       []Event     `json:"events,omitempty"`
}
