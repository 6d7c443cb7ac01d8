package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spotcast/internal/models"
)

// Collector bundles the service's Prometheus instruments. Every fetch
// attempt is counted by source and outcome; the gauges mirror the last
// served values so dashboards can watch upstream health without scraping
// the API itself.
type Collector struct {
	registry *prometheus.Registry

	sourceAttempts *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	spotsReturned  prometheus.Gauge
	solarFlux      prometheus.Gauge
	kIndex         prometheus.Gauge
}

// NewCollector creates a collector backed by its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		sourceAttempts: registerCounterVec(registry, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotcast_source_attempts_total",
				Help: "Upstream fetch attempts by source and outcome.",
			},
			[]string{"source", "outcome"},
		)),
		fetchDuration: registerHistogramVec(registry, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spotcast_fetch_duration_seconds",
				Help:    "Upstream fetch duration by source.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
			[]string{"source"},
		)),
		spotsReturned: registerGauge(registry, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spotcast_spots_returned",
			Help: "Spot count of the most recent aggregation.",
		})),
		solarFlux: registerGauge(registry, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spotcast_space_weather_sfi",
			Help: "Solar flux index of the most recent snapshot.",
		})),
		kIndex: registerGauge(registry, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spotcast_space_weather_k_index",
			Help: "Planetary K-index of the most recent snapshot.",
		})),
	}
	return c
}

func registerCounterVec(r prometheus.Registerer, vec *prometheus.CounterVec) *prometheus.CounterVec {
	if err := r.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return vec
}

func registerHistogramVec(r prometheus.Registerer, vec *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := r.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
	}
	return vec
}

func registerGauge(r prometheus.Registerer, g prometheus.Gauge) prometheus.Gauge {
	if err := r.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Gauge)
		}
	}
	return g
}

// RecordSourceAttempt counts one fetch attempt and its duration
func (c *Collector) RecordSourceAttempt(source, outcome string, seconds float64) {
	c.sourceAttempts.WithLabelValues(source, outcome).Inc()
	c.fetchDuration.WithLabelValues(source).Observe(seconds)
}

// RecordSpotsReturned tracks the size of the last aggregation result
func (c *Collector) RecordSpotsReturned(count int) {
	c.spotsReturned.Set(float64(count))
}

// RecordSpaceWeather mirrors the last snapshot into gauges
func (c *Collector) RecordSpaceWeather(wx models.SpaceWeatherSnapshot) {
	c.solarFlux.Set(wx.SolarFluxIndex)
	c.kIndex.Set(float64(wx.KIndex))
}

// Handler exposes the registry for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
