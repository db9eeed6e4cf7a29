package service

import (
	"github.com/jengzang/travelmap-backend-go/internal/stats"
)

// StatsService handles business logic for dashboard statistics
type StatsService struct {
	views *ViewService
}

// NewStatsService creates a new stats service reading from the view
// service's current document set, so reloads are picked up.
func NewStatsService(views *ViewService) *StatsService {
	return &StatsService{views: views}
}

// Yearly returns per-year travel aggregates
func (s *StatsService) Yearly() []stats.YearlyStat {
	docs := s.views.Documents()
	return stats.Yearly(docs.Summary.TripGroups, docs.Features)
}

// TopDestinations returns the most visited arrival places
func (s *StatsService) TopDestinations(limit int) []stats.Destination {
	if limit <= 0 {
		limit = 12
	}
	return stats.TopDestinations(s.views.Documents().Features, limit)
}
