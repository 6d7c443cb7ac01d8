package fetchers

import (
	"context"
	"time"

	"spotcast/internal/logger"
	"spotcast/internal/metrics"
	"spotcast/internal/models"
)

// SpotAggregator walks an ordered source list until one yields spots.
// Sources are attempted strictly sequentially: priority order is part of
// the contract, and the worst case stays bounded at sources x deadline.
type SpotAggregator struct {
	fetcher   *Fetcher
	sources   []SpotSource
	collector *metrics.Collector
	log       *logger.Logger
}

// NewSpotAggregator creates an aggregator over the given fallback chain.
// The collector may be nil, trace events then go to the log only.
func NewSpotAggregator(fetcher *Fetcher, sources []SpotSource, collector *metrics.Collector) *SpotAggregator {
	return &SpotAggregator{
		fetcher:   fetcher,
		sources:   sources,
		collector: collector,
		log:       logger.GetGlobalLogger().WithComponent("aggregator"),
	}
}

// FetchSpots returns the first non-empty parse in source order, or an
// empty slice once the chain is exhausted. Absence of spots is a normal
// user-visible state, so no error is ever returned to the caller.
func (a *SpotAggregator) FetchSpots(ctx context.Context) []models.Spot {
	for _, source := range a.sources {
		result := a.attempt(ctx, source)
		if result.Terminal() {
			if a.collector != nil {
				a.collector.RecordSpotsReturned(len(result.Spots))
			}
			return result.Spots
		}
	}

	a.log.Info("all spot sources exhausted, returning no spots")
	if a.collector != nil {
		a.collector.RecordSpotsReturned(0)
	}
	return []models.Spot{}
}

// attempt runs one fetch+parse stage and emits its trace event. The event
// is advisory only: whatever happens here, the caller just moves on.
func (a *SpotAggregator) attempt(ctx context.Context, source SpotSource) models.SourceResult {
	name := source.Endpoint.Name
	start := time.Now()

	body, err := a.fetcher.Fetch(ctx, source.Endpoint)
	if err != nil {
		return a.trace(models.SourceResult{
			Source:  name,
			Outcome: models.OutcomeFailure,
			Reason:  string(KindOf(err)),
		}, start, err)
	}

	spots, err := source.Parse(body)
	if err != nil {
		return a.trace(models.SourceResult{
			Source:  name,
			Outcome: models.OutcomeFailure,
			Reason:  string(KindParse),
		}, start, err)
	}
	if len(spots) == 0 {
		return a.trace(models.SourceResult{Source: name, Outcome: models.OutcomeEmpty}, start, nil)
	}

	return a.trace(models.SourceResult{
		Source:  name,
		Outcome: models.OutcomeSuccess,
		Spots:   spots,
	}, start, nil)
}

// trace records one attempt in the metrics and the log
func (a *SpotAggregator) trace(result models.SourceResult, start time.Time, err error) models.SourceResult {
	outcome := string(result.Outcome)
	if result.Outcome == models.OutcomeFailure {
		outcome = result.Reason
	}

	if a.collector != nil {
		a.collector.RecordSourceAttempt(result.Source, outcome, time.Since(start).Seconds())
	}

	fields := map[string]interface{}{
		"source":  result.Source,
		"outcome": outcome,
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}
	switch result.Outcome {
	case models.OutcomeSuccess:
		fields["spots"] = len(result.Spots)
		a.log.Info("spot source attempt", fields)
	case models.OutcomeEmpty:
		a.log.Info("spot source attempt", fields)
	default:
		a.log.Error("spot source attempt", err, fields)
	}
	return result
}
