package view

import (
	"fmt"
	"sort"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// VisibleTripGroups applies the per-event sidebar predicate and returns the
// surviving groups sorted by start date ascending. A group whose events all
// fail the filter is dropped entirely. The single-trip selection is ignored
// here on purpose.
func VisibleTripGroups(groups []models.TripGroup, f FilterState) []models.TripGroup {
	visible := make([]models.TripGroup, 0, len(groups))
	for _, g := range groups {
		events := make([]models.Event, 0, len(g.Events))
		for _, ev := range g.Events {
			if f.EventVisible(ev) {
				events = append(events, ev)
			}
		}
		if len(events) == 0 {
			continue
		}
		g.Events = events
		visible = append(visible, g)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return chronoLess(visible[i].Start, visible[j].Start)
	})

	return visible
}

// BuildTripCards projects visible trip groups and the segment index into
// sidebar cards. The expanded set is the persisted expand/collapse state
// from before the rebuild, keyed by trip-group key; the selected trip is
// always forced open regardless of it.
func BuildTripCards(groups []models.TripGroup, idx SegmentIndex, f FilterState, expanded map[string]bool) []models.TripCard {
	cards := make([]models.TripCard, 0, len(groups))
	for _, g := range groups {
		card := models.TripCard{
			TripGroupKey: g.TripGroupKey,
			TripName:     g.TripName,
			DateRange:    dateRange(g.Start, g.End),
			Selected:     f.Selected != "" && f.Selected == g.TripGroupKey,
			Events:       make([]models.EventRow, 0, len(g.Events)),
		}
		card.Expanded = expanded[g.TripGroupKey] || card.Selected

		for _, ev := range g.Events {
			card.EventCount++
			card.SegmentTotal += ev.SegmentCount
			card.Events = append(card.Events, buildEventRow(ev, idx))
		}

		cards = append(cards, card)
	}
	return cards
}

// buildEventRow renders one event. An event whose itinerary key resolves to
// more than one leg becomes an expandable sub-list; zero or one leg renders
// flat. The declared segment count is displayed even when it disagrees with
// the number of indexed legs.
func buildEventRow(ev models.Event, idx SegmentIndex) models.EventRow {
	row := models.EventRow{
		TripKey:      ev.TripKey,
		Title:        ev.Title,
		Category:     eventCategory(ev),
		TimeRange:    dateRange(ev.Start, ev.End),
		SegmentCount: ev.SegmentCount,
	}

	legs := idx.Legs(ev.TripKey)
	if len(legs) > 1 {
		row.Expandable = true
		row.Segments = make([]models.SegmentRow, 0, len(legs))
		for _, leg := range legs {
			row.Segments = append(row.Segments, models.SegmentRow{
				FromLabel: leg.FromLabel,
				ToLabel:   leg.ToLabel,
				Departure: displayTime(leg.Departure),
				Arrival:   displayTime(leg.Arrival),
			})
		}
	}

	return row
}

func eventCategory(ev models.Event) string {
	if ev.Category == "" {
		return models.CategoryOther
	}
	return ev.Category
}

func dateRange(start, end string) string {
	from := displayDate(start)
	to := displayDate(end)
	switch {
	case from == "" && to == "":
		return ""
	case to == "" || from == to:
		return from
	case from == "":
		return to
	}
	return fmt.Sprintf("%s – %s", from, to)
}
