package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/jengzang/travelmap-backend-go/internal/geodata"
	"github.com/jengzang/travelmap-backend-go/internal/logger"
	"github.com/jengzang/travelmap-backend-go/internal/metrics"
	"github.com/jengzang/travelmap-backend-go/internal/models"
	"github.com/jengzang/travelmap-backend-go/internal/view"
)

// ViewSnapshot is the full UI state returned to the client after every
// event: the rendered view model plus the filter state that produced it.
type ViewSnapshot struct {
	View     models.ViewModel `json:"view"`
	Year     string           `json:"year"`
	Category string           `json:"category"`
	Selected string           `json:"selected,omitempty"`
	Mode     string           `json:"colorMode"`
}

// ViewService owns the render orchestrator and serializes UI events. The
// pipeline itself is single-threaded; the mutex only keeps concurrent HTTP
// requests from overlapping, so each event still runs to completion before
// the next starts.
type ViewService struct {
	mu           sync.Mutex
	orchestrator *view.Orchestrator
	surface      *view.SnapshotSurface
	collector    *metrics.Collector

	featuresSrc string
	summarySrc  string
}

// NewViewService renders the initial, unfiltered view for the loaded
// documents. The document sources are kept for reloads.
func NewViewService(docs *geodata.Documents, featuresSrc, summarySrc string, collector *metrics.Collector) *ViewService {
	surface := view.NewSnapshotSurface()
	s := &ViewService{
		orchestrator: view.NewOrchestrator(docs, surface),
		surface:      surface,
		collector:    collector,
		featuresSrc:  featuresSrc,
		summarySrc:   summarySrc,
	}
	s.render(func() { s.orchestrator.Render() })
	return s
}

// Documents returns the currently loaded document set.
func (s *ViewService) Documents() *geodata.Documents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orchestrator.Documents()
}

// Snapshot returns the current view without changing anything.
func (s *ViewService) Snapshot() ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetFilters applies the year and category selectors.
func (s *ViewService) SetFilters(f models.ViewFilter) ViewSnapshot {
	return s.render(func() { s.orchestrator.SetFilters(f.Year, f.Category) })
}

// SelectTrip toggles the single-trip selection.
func (s *ViewService) SelectTrip(tripGroupKey string) ViewSnapshot {
	return s.render(func() { s.orchestrator.SelectTrip(tripGroupKey) })
}

// SetColorMode switches between category and trip-identity coloring.
func (s *ViewService) SetColorMode(mode string) (ViewSnapshot, error) {
	m := view.ColorMode(mode)
	if m != view.ColorByCategory && m != view.ColorByTrip {
		return ViewSnapshot{}, fmt.Errorf("unknown color mode %q", mode)
	}
	return s.render(func() { s.orchestrator.SetColorMode(m) }), nil
}

// Reset restores the default filters, selection and color mode.
func (s *ViewService) Reset() ViewSnapshot {
	return s.render(func() { s.orchestrator.Reset() })
}

// SetCardExpanded records the expand/collapse state of one trip card.
func (s *ViewService) SetCardExpanded(tripGroupKey string, expanded bool) ViewSnapshot {
	return s.render(func() { s.orchestrator.SetExpanded(tripGroupKey, expanded) })
}

// Reload fetches both documents again and swaps them in. On failure the
// previous documents stay live and the error is returned.
func (s *ViewService) Reload() (ViewSnapshot, error) {
	docs, err := geodata.Load(s.featuresSrc, s.summarySrc)
	if err != nil {
		if s.collector != nil {
			s.collector.DocumentReloadFails.Inc()
		}
		return ViewSnapshot{}, err
	}

	snap := s.render(func() { s.orchestrator.ReplaceDocuments(docs) })
	if s.collector != nil {
		s.collector.DocumentReloads.Inc()
	}
	logger.Infow("documents reloaded",
		"features", len(docs.Features),
		"tripGroups", len(docs.Summary.TripGroups),
	)
	return snap, nil
}

// render runs one UI event to completion under the lock and records
// metrics for the resulting view.
func (s *ViewService) render(event func()) ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	event()
	snap := s.snapshotLocked()

	if s.collector != nil {
		s.collector.Renders.Inc()
		s.collector.RenderDuration.Observe(time.Since(start).Seconds())
		s.collector.RoutesDrawn.Set(float64(len(snap.View.Routes)))
		s.collector.StopsDrawn.Set(float64(len(snap.View.Stops)))
		s.collector.TripCards.Set(float64(len(snap.View.Cards)))
	}

	return snap
}

func (s *ViewService) snapshotLocked() ViewSnapshot {
	f := s.orchestrator.Filters()
	return ViewSnapshot{
		View:     s.surface.Snapshot(),
		Year:     f.Year,
		Category: f.Category,
		Selected: f.Selected,
		Mode:     string(f.Mode),
	}
}
