package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Renders        prometheus.Counter
	RenderDuration prometheus.Histogram

	RoutesDrawn prometheus.Gauge
	StopsDrawn  prometheus.Gauge
	TripCards   prometheus.Gauge

	DocumentReloads     prometheus.Counter
	DocumentReloadFails prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelmap_renders_total",
			Help: "Total view renders performed.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travelmap_render_duration_seconds",
			Help:    "Duration of one full view render.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		RoutesDrawn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "travelmap_routes_drawn",
			Help: "Route primitives in the current view.",
		}),
		StopsDrawn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "travelmap_stops_drawn",
			Help: "Stop primitives in the current view.",
		}),
		TripCards: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "travelmap_trip_cards",
			Help: "Sidebar trip cards in the current view.",
		}),
		DocumentReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelmap_document_reloads_total",
			Help: "Successful document reloads.",
		}),
		DocumentReloadFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelmap_document_reload_failures_total",
			Help: "Failed document reload attempts.",
		}),
	}

	reg.MustRegister(
		c.Renders, c.RenderDuration,
		c.RoutesDrawn, c.StopsDrawn, c.TripCards,
		c.DocumentReloads, c.DocumentReloadFails,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
