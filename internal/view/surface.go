package view

import "github.com/jengzang/travelmap-backend-go/internal/models"

// SnapshotSurface is a Surface that keeps the last applied view model in
// memory. The HTTP layer uses it as the server-side stand-in for the real
// map substrate: the browser fetches the snapshot and draws it.
type SnapshotSurface struct {
	vm models.ViewModel
}

// NewSnapshotSurface returns an empty snapshot surface.
func NewSnapshotSurface() *SnapshotSurface {
	return &SnapshotSurface{}
}

func (s *SnapshotSurface) Clear() {
	s.vm = models.ViewModel{}
}

func (s *SnapshotSurface) AddRoute(r models.RoutePrimitive) {
	s.vm.Routes = append(s.vm.Routes, r)
}

func (s *SnapshotSurface) AddStop(p models.StopPrimitive) {
	s.vm.Stops = append(s.vm.Stops, p)
}

func (s *SnapshotSurface) SetCards(cards []models.TripCard) {
	s.vm.Cards = cards
}

func (s *SnapshotSurface) SetStatus(status models.StatusLine) {
	s.vm.Status = status
}

// Snapshot returns the view model from the most recent render.
func (s *SnapshotSurface) Snapshot() models.ViewModel {
	return s.vm
}
