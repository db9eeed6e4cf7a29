package models

// RoutePrimitive is one visible route leg, ready for a vector map layer.
type RoutePrimitive struct {
	TripGroupKey string       `json:"tripGroupKey"`
	TripKey      string       `json:"tripKey,omitempty"`
	Color        string       `json:"color"`
	Label        string       `json:"label"` // popup text
	Line         []Coordinate `json:"line"`
}

// StopPrimitive is one visible point, destined for the clustering container.
type StopPrimitive struct {
	TripGroupKey string     `json:"tripGroupKey"`
	Color        string     `json:"color"`
	Label        string     `json:"label"`
	Point        Coordinate `json:"point"`
}

// SegmentRow is one leg inside an expandable event sub-list.
type SegmentRow struct {
	FromLabel string `json:"fromLabel"`
	ToLabel   string `json:"toLabel"`
	Departure string `json:"departure"` // formatted for display, raw if unparseable
	Arrival   string `json:"arrival"`
}

// EventRow is one event line on a trip card. Expandable is true only when
// the segment index resolved more than one leg for the event's trip key.
type EventRow struct {
	TripKey      string       `json:"tripKey,omitempty"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	TimeRange    string       `json:"timeRange,omitempty"`
	SegmentCount int          `json:"segmentCount"` // declared count, best effort
	Expandable   bool         `json:"expandable"`
	Expanded     bool         `json:"expanded,omitempty"`
	Segments     []SegmentRow `json:"segments,omitempty"`
}

// TripCard is one sidebar card: header, aggregate line, selection toggle
// state and the event rows.
type TripCard struct {
	TripGroupKey string     `json:"tripGroupKey"`
	TripName     string     `json:"tripName"`
	DateRange    string     `json:"dateRange,omitempty"`
	EventCount   int        `json:"eventCount"`
	SegmentTotal int        `json:"segmentTotal"` // sum of declared event counts
	Selected     bool       `json:"selected"`
	Expanded     bool       `json:"expanded"`
	Events       []EventRow `json:"events"`
}

// StatusLine summarizes the current render for the status text region.
type StatusLine struct {
	TripGroups  int    `json:"tripGroups"`
	Routes      int    `json:"routes"`
	SourceFiles int    `json:"sourceFiles"`
	Narrowed    bool   `json:"narrowed"` // a single-trip filter is active
	Text        string `json:"text"`
}

// ViewModel is the full output of one render pass: everything the map and
// sidebar display. Rebuilt from scratch on every state change.
type ViewModel struct {
	Routes []RoutePrimitive `json:"routes"`
	Stops  []StopPrimitive  `json:"stops"`
	Cards  []TripCard       `json:"cards"`
	Status StatusLine       `json:"status"`
}
