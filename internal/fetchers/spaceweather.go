package fetchers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"spotcast/internal/config"
	"spotcast/internal/logger"
	"spotcast/internal/metrics"
	"spotcast/internal/models"
)

// SpaceWeatherFetcher builds the solar-index snapshot feeding the
// propagation estimator. The two NOAA series are fetched concurrently
// with independent failure isolation; any combination of failures
// degrades that field to its default instead of failing the snapshot.
type SpaceWeatherFetcher struct {
	fetcher   *Fetcher
	flux      *Endpoint
	kIndex    *Endpoint
	collector *metrics.Collector
	log       *logger.Logger
}

// NewSpaceWeatherFetcher creates a fetcher for the configured NOAA endpoints
func NewSpaceWeatherFetcher(fetcher *Fetcher, cfg *config.Config, collector *metrics.Collector) *SpaceWeatherFetcher {
	return &SpaceWeatherFetcher{
		fetcher:   fetcher,
		flux:      NewEndpoint("noaa_flux", cfg.NOAAFluxURL, jsonAccept),
		kIndex:    NewEndpoint("noaa_kindex", cfg.NOAAKIndexURL, jsonAccept),
		collector: collector,
		log:       logger.GetGlobalLogger().WithComponent("spaceweather"),
	}
}

type fluxResult struct {
	value float64
	ok    bool
}

type kIndexResult struct {
	value int
	ok    bool
}

// Fetch returns the current snapshot, never an error. The sunspot number
// is always derived from the effective flux, except that a total fetch
// failure serves the canonical default triple untouched.
func (s *SpaceWeatherFetcher) Fetch(ctx context.Context) models.SpaceWeatherSnapshot {
	fluxChan := make(chan fluxResult, 1)
	kChan := make(chan kIndexResult, 1)

	go func() { fluxChan <- s.fetchSolarFlux(ctx) }()
	go func() { kChan <- s.fetchKIndex(ctx) }()

	flux := <-fluxChan
	k := <-kChan

	snapshot := models.DefaultSnapshot()
	if flux.ok || k.ok {
		if flux.ok {
			snapshot.SolarFluxIndex = flux.value
		}
		snapshot.SunspotNumber = models.DerivedSunspotNumber(snapshot.SolarFluxIndex)
		if k.ok {
			snapshot.KIndex = k.value
		}
	} else {
		s.log.Warn("all space weather sources failed, serving defaults")
	}

	if s.collector != nil {
		s.collector.RecordSpaceWeather(snapshot)
	}
	return snapshot
}

// fetchSolarFlux reads the F10.7 series and keeps the newest observation
func (s *SpaceWeatherFetcher) fetchSolarFlux(ctx context.Context) fluxResult {
	start := time.Now()

	body, err := s.fetcher.Fetch(ctx, s.flux)
	if err != nil {
		s.observe(s.flux.Name, string(KindOf(err)), start, err)
		return fluxResult{}
	}

	var series []models.FluxObservation
	if err := json.Unmarshal([]byte(body), &series); err != nil {
		s.observe(s.flux.Name, string(KindParse), start, err)
		return fluxResult{}
	}
	if len(series) == 0 {
		s.observe(s.flux.Name, string(KindParse), start, errors.New("empty flux series"))
		return fluxResult{}
	}

	latest := series[len(series)-1].Flux
	if math.IsNaN(latest) || math.IsInf(latest, 0) || latest <= 0 {
		s.observe(s.flux.Name, string(KindParse), start, errors.New("unusable flux value"))
		return fluxResult{}
	}

	s.observe(s.flux.Name, "success", start, nil)
	return fluxResult{value: latest, ok: true}
}

// fetchKIndex reads the planetary K-index table. The series arrives as
// rows of strings with a header row first; the newest row's second column
// is the Kp value. Row arity and the numeric parse are checked instead of
// trusting the upstream schema to stay put.
func (s *SpaceWeatherFetcher) fetchKIndex(ctx context.Context) kIndexResult {
	start := time.Now()

	body, err := s.fetcher.Fetch(ctx, s.kIndex)
	if err != nil {
		s.observe(s.kIndex.Name, string(KindOf(err)), start, err)
		return kIndexResult{}
	}

	var rows [][]string
	if err := json.Unmarshal([]byte(body), &rows); err != nil {
		s.observe(s.kIndex.Name, string(KindParse), start, err)
		return kIndexResult{}
	}
	if len(rows) < 2 {
		s.observe(s.kIndex.Name, string(KindParse), start, errors.New("k-index series has no data rows"))
		return kIndexResult{}
	}

	newest := rows[len(rows)-1]
	if len(newest) < 2 {
		s.observe(s.kIndex.Name, string(KindParse), start, errors.New("k-index row too short"))
		return kIndexResult{}
	}

	kp, err := strconv.ParseFloat(strings.TrimSpace(newest[1]), 64)
	if err != nil || kp < 0 {
		s.observe(s.kIndex.Name, string(KindParse), start, errors.New("k-index value not a non-negative number"))
		return kIndexResult{}
	}

	s.observe(s.kIndex.Name, "success", start, nil)
	return kIndexResult{value: int(math.Round(kp)), ok: true}
}

// observe emits the per-attempt trace event
func (s *SpaceWeatherFetcher) observe(source, outcome string, start time.Time, err error) {
	if s.collector != nil {
		s.collector.RecordSourceAttempt(source, outcome, time.Since(start).Seconds())
	}
	fields := map[string]interface{}{
		"source":  source,
		"outcome": outcome,
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		s.log.Error("space weather attempt", err, fields)
		return
	}
	s.log.Debug("space weather attempt", fields)
}
