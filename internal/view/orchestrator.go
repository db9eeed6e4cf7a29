package view

import (
	"fmt"

	"github.com/jengzang/travelmap-backend-go/internal/geodata"
	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// Surface is the external map/sidebar substrate the orchestrator writes to.
// The core only needs to clear it and hand it the freshly built primitives;
// drawing, clustering and panning are the surface's problem.
type Surface interface {
	Clear()
	AddRoute(models.RoutePrimitive)
	AddStop(models.StopPrimitive) // surfaces group stops into a cluster container
	SetCards([]models.TripCard)
	SetStatus(models.StatusLine)
}

// identityFallbackKey colors primitives that carry neither a trip-group nor
// an itinerary key in trip-identity mode.
const identityFallbackKey = "route"

// Orchestrator owns the view state and re-renders after every mutation.
// It is single-threaded: callers serialize events, each of which runs to
// completion before the next is dispatched.
type Orchestrator struct {
	docs     *geodata.Documents
	index    SegmentIndex
	filters  FilterState
	expanded map[string]bool
	surface  Surface
}

// NewOrchestrator builds the segment index for the loaded documents and
// returns an orchestrator in the default (unfiltered) state. It does not
// render; call Render once the surface is ready.
func NewOrchestrator(docs *geodata.Documents, surface Surface) *Orchestrator {
	return &Orchestrator{
		docs:     docs,
		index:    BuildSegmentIndex(docs.Features),
		filters:  DefaultFilters(),
		expanded: make(map[string]bool),
		surface:  surface,
	}
}

// Filters returns the current filter state.
func (o *Orchestrator) Filters() FilterState { return o.filters }

// Documents returns the currently loaded document set.
func (o *Orchestrator) Documents() *geodata.Documents { return o.docs }

// SetFilters applies the year and category selectors and re-renders.
func (o *Orchestrator) SetFilters(year, category string) {
	o.filters = o.filters.WithYear(year).WithCategory(category)
	o.Render()
}

// SetColorMode switches the coloring mode and re-renders.
func (o *Orchestrator) SetColorMode(mode ColorMode) {
	o.filters = o.filters.WithMode(mode)
	o.Render()
}

// SelectTrip toggles the single-trip selection and re-renders. Selecting
// the already-selected trip clears the selection.
func (o *Orchestrator) SelectTrip(tripGroupKey string) {
	o.filters = o.filters.ToggleSelection(tripGroupKey)
	o.Render()
}

// Reset restores all filters to their defaults, clears the selection and
// the color mode, and re-renders. Expand state survives a reset.
func (o *Orchestrator) Reset() {
	o.filters = o.filters.Reset()
	o.Render()
}

// SetExpanded records the expand/collapse state of one trip card and
// re-renders. This is the persisted state reapplied across rebuilds; it is
// updated by explicit user actions, never read back from the view tree.
func (o *Orchestrator) SetExpanded(tripGroupKey string, expanded bool) {
	if expanded {
		o.expanded[tripGroupKey] = true
	} else {
		delete(o.expanded, tripGroupKey)
	}
	o.Render()
}

// ReplaceDocuments swaps in a freshly loaded document set and rebuilds the
// segment index. No other event rebuilds it. Filters and expand state are
// kept so the view survives a data refresh.
func (o *Orchestrator) ReplaceDocuments(docs *geodata.Documents) {
	o.docs = docs
	o.index = BuildSegmentIndex(docs.Features)
	o.Render()
}

// Render recomputes the visible map primitives and sidebar cards from
// scratch and writes them to the surface. It never fails: malformed
// features are skipped, missing fields defaulted.
func (o *Orchestrator) Render() models.ViewModel {
	vm := Project(o.docs, o.index, o.filters, o.expanded)

	o.surface.Clear()
	for _, r := range vm.Routes {
		o.surface.AddRoute(r)
	}
	for _, s := range vm.Stops {
		o.surface.AddStop(s)
	}
	o.surface.SetCards(vm.Cards)
	o.surface.SetStatus(vm.Status)

	return vm
}

// Project is the pure projection at the heart of the pipeline: documents,
// segment index, filter state and persisted expand state in, the complete
// view model out. No state is touched; calling it twice with the same
// inputs yields the same output.
func Project(docs *geodata.Documents, idx SegmentIndex, f FilterState, expanded map[string]bool) models.ViewModel {
	var vm models.ViewModel

	for _, ft := range docs.Features {
		if ft.Kind == models.GeometryUnknown {
			continue
		}
		if !f.FeatureVisible(ft) {
			continue
		}

		switch ft.Kind {
		case models.GeometryRoute:
			vm.Routes = append(vm.Routes, models.RoutePrimitive{
				TripGroupKey: ft.Props.TripGroupKey,
				TripKey:      ft.Props.TripKey,
				Color:        primitiveColor(f.Mode, ft.Props),
				Label:        routeLabel(ft.Props),
				Line:         ft.Line,
			})
		case models.GeometryStop:
			vm.Stops = append(vm.Stops, models.StopPrimitive{
				TripGroupKey: ft.Props.TripGroupKey,
				Color:        primitiveColor(f.Mode, ft.Props),
				Label:        stopLabel(ft.Props),
				Point:        ft.Point,
			})
		}
	}

	groups := VisibleTripGroups(docs.Summary.TripGroups, f)
	vm.Cards = BuildTripCards(groups, idx, f, expanded)

	vm.Status = statusLine(len(vm.Cards), len(vm.Routes), docs.Summary.SourceFiles, f.Selected != "")

	return vm
}

func primitiveColor(mode ColorMode, p models.FeatureProps) string {
	if mode == ColorByTrip {
		key := p.TripGroupKey
		if key == "" {
			key = p.TripKey
		}
		if key == "" {
			key = identityFallbackKey
		}
		return IdentityColor(key)
	}
	return CategoryColor(p.Category)
}

func routeLabel(p models.FeatureProps) string {
	leg := fmt.Sprintf("%s → %s", p.FromLabel, p.ToLabel)
	if p.TripName != "" {
		leg = p.TripName + ": " + leg
	}
	if p.Departure != "" {
		leg += " (" + displayTime(p.Departure) + ")"
	}
	return leg
}

func stopLabel(p models.FeatureProps) string {
	if p.Label == "" {
		return p.TripName
	}
	if p.TripName == "" {
		return p.Label
	}
	return p.Label + " — " + p.TripName
}

func statusLine(tripGroups, routes, sourceFiles int, narrowed bool) models.StatusLine {
	st := models.StatusLine{
		TripGroups:  tripGroups,
		Routes:      routes,
		SourceFiles: sourceFiles,
		Narrowed:    narrowed,
	}
	st.Text = fmt.Sprintf("%d trips · %d routes · %d source files", tripGroups, routes, sourceFiles)
	if narrowed {
		st.Text += " · showing one trip"
	}
	return st
}
