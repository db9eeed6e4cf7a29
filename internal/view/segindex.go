package view

import (
	"sort"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// SegmentLeg is one leg of a multi-leg itinerary, derived from a route
// feature at index build time.
type SegmentLeg struct {
	TripGroupKey string
	FromLabel    string
	ToLabel      string
	Departure    string
	Arrival      string
	Category     string
	Year         int
}

// SegmentIndex maps an itinerary key to its legs, ordered by departure
// ascending. Built once per document load and rebuilt only when the
// document set changes, never on filter changes.
type SegmentIndex map[string][]SegmentLeg

// BuildSegmentIndex scans all route features and groups them by itinerary
// key. Features without a key are excluded.
func BuildSegmentIndex(features []models.Feature) SegmentIndex {
	idx := make(SegmentIndex)
	for _, f := range features {
		if f.Kind != models.GeometryRoute {
			continue
		}
		key := f.Props.TripKey
		if key == "" {
			continue
		}
		idx[key] = append(idx[key], SegmentLeg{
			TripGroupKey: f.Props.TripGroupKey,
			FromLabel:    f.Props.FromLabel,
			ToLabel:      f.Props.ToLabel,
			Departure:    f.Props.Departure,
			Arrival:      f.Props.Arrival,
			Category:     f.Props.Category,
			Year:         f.Props.Year,
		})
	}

	for key := range idx {
		legs := idx[key]
		sort.SliceStable(legs, func(i, j int) bool {
			return chronoLess(legs[i].Departure, legs[j].Departure)
		})
	}

	return idx
}

// Legs returns the ordered legs for an itinerary key, nil when unknown.
func (idx SegmentIndex) Legs(tripKey string) []SegmentLeg {
	if tripKey == "" {
		return nil
	}
	return idx[tripKey]
}
