package stats

import (
	"sort"
	"time"

	"github.com/jengzang/travelmap-backend-go/internal/models"
	"github.com/jengzang/travelmap-backend-go/internal/spatial"
)

// YearlyStat aggregates one calendar year of travel.
type YearlyStat struct {
	Year           int     `json:"year"`
	Trips          int     `json:"trips"`
	Segments       int     `json:"segments"`
	DistanceKm     float64 `json:"distanceKm"`
	AvgTripDays    float64 `json:"avgTripDays"`
	MedianTripDays float64 `json:"medianTripDays"`
	LongestTrip    float64 `json:"longestTripDays"`
}

// Destination is one arrival place with its visit count.
type Destination struct {
	Label    string `json:"label"`
	Arrivals int    `json:"arrivals"`
}

// Yearly computes per-year travel statistics from the summary document and
// the route features: trip and segment counts, great-circle distance and
// average trip length in days. Years are returned ascending.
func Yearly(groups []models.TripGroup, features []models.Feature) []YearlyStat {
	byYear := make(map[int]*YearlyStat)
	tripDays := make(map[int][]float64)

	get := func(year int) *YearlyStat {
		st, ok := byYear[year]
		if !ok {
			st = &YearlyStat{Year: year}
			byYear[year] = st
		}
		return st
	}

	for _, g := range groups {
		year := groupYear(g)
		if year == 0 {
			continue
		}
		st := get(year)
		st.Trips++
		for _, ev := range g.Events {
			st.Segments += ev.SegmentCount
		}
		if days, ok := tripLengthDays(g.Start, g.End); ok {
			tripDays[year] = append(tripDays[year], days)
		}
	}

	for _, f := range features {
		if f.Kind != models.GeometryRoute || f.Props.Year == 0 {
			continue
		}
		get(f.Props.Year).DistanceKm += spatial.RouteLengthKm(f.Line)
	}

	years := make([]YearlyStat, 0, len(byYear))
	for _, st := range byYear {
		days := tripDays[st.Year]
		st.AvgTripDays = Mean(days)
		st.MedianTripDays = Median(days)
		st.LongestTrip = Max(days)
		years = append(years, *st)
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	return years
}

// TopDestinations counts arrivals by route end label, most visited first.
func TopDestinations(features []models.Feature, limit int) []Destination {
	counts := make(map[string]int)
	for _, f := range features {
		if f.Kind != models.GeometryRoute || f.Props.ToLabel == "" {
			continue
		}
		counts[f.Props.ToLabel]++
	}

	dests := make([]Destination, 0, len(counts))
	for label, n := range counts {
		dests = append(dests, Destination{Label: label, Arrivals: n})
	}
	sort.Slice(dests, func(i, j int) bool {
		if dests[i].Arrivals != dests[j].Arrivals {
			return dests[i].Arrivals > dests[j].Arrivals
		}
		return dests[i].Label < dests[j].Label
	})

	if limit > 0 && len(dests) > limit {
		dests = dests[:limit]
	}
	return dests
}

func groupYear(g models.TripGroup) int {
	if g.Year != 0 {
		return g.Year
	}
	if t, ok := parseStamp(g.Start); ok {
		return t.Year()
	}
	for _, ev := range g.Events {
		if ev.Year != 0 {
			return ev.Year
		}
	}
	return 0
}

func tripLengthDays(start, end string) (float64, bool) {
	s, okS := parseStamp(start)
	e, okE := parseStamp(end)
	if !okS || !okE || e.Before(s) {
		return 0, false
	}
	return e.Sub(s).Hours() / 24.0, true
}

func parseStamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
