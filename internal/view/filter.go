package view

import (
	"strconv"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// FilterState is the complete, immutable-per-render view state: the two
// selector filters, the single-trip selection and the color mode. Mutators
// return a new value; the orchestrator owns the current one.
type FilterState struct {
	Year     string    // exact year string or "all"
	Category string    // exact category or "all"
	Selected string    // trip-group key, empty when nothing is selected
	Mode     ColorMode
}

// DefaultFilters returns the unfiltered state: both selectors at "all",
// no trip selected, coloring by category.
func DefaultFilters() FilterState {
	return FilterState{
		Year:     models.FilterAll,
		Category: models.FilterAll,
		Mode:     ColorByCategory,
	}
}

// WithYear returns the state with the year selector changed.
func (f FilterState) WithYear(year string) FilterState {
	if year == "" {
		year = models.FilterAll
	}
	f.Year = year
	return f
}

// WithCategory returns the state with the category selector changed.
func (f FilterState) WithCategory(category string) FilterState {
	if category == "" {
		category = models.FilterAll
	}
	f.Category = category
	return f
}

// WithMode returns the state with the color mode changed.
func (f FilterState) WithMode(mode ColorMode) FilterState {
	f.Mode = mode
	return f
}

// ToggleSelection selects the given trip group, or clears the selection
// when it is already selected.
func (f FilterState) ToggleSelection(tripGroupKey string) FilterState {
	if f.Selected == tripGroupKey {
		f.Selected = ""
	} else {
		f.Selected = tripGroupKey
	}
	return f
}

// Reset clears all three filters and restores the default color mode.
func (f FilterState) Reset() FilterState {
	return DefaultFilters()
}

func (f FilterState) yearMatches(year int) bool {
	if f.Year == models.FilterAll || f.Year == "" {
		return true
	}
	return f.Year == strconv.Itoa(year)
}

func (f FilterState) categoryMatches(category string) bool {
	if f.Category == models.FilterAll || f.Category == "" {
		return true
	}
	return f.Category == category
}

// FeatureVisible is the map visibility predicate: the conjunction of
// year match, category match and, when a trip is selected, trip-group
// match.
func (f FilterState) FeatureVisible(ft models.Feature) bool {
	if !f.yearMatches(ft.Props.Year) {
		return false
	}
	if !f.categoryMatches(ft.Props.Category) {
		return false
	}
	if f.Selected != "" && ft.Props.TripGroupKey != f.Selected {
		return false
	}
	return true
}

// EventVisible is the sidebar predicate, applied per event. It uses only
// year and category, never the single-trip selection: the sidebar keeps
// listing every qualifying trip while the map is narrowed to one.
func (f FilterState) EventVisible(ev models.Event) bool {
	return f.yearMatches(ev.Year) && f.categoryMatches(ev.Category)
}
