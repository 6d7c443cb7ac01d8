package fetchers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"spotcast/internal/logger"
	"spotcast/internal/metrics"
	"spotcast/internal/models"
)

const (
	maxContestEvents  = 25
	maxContestSummary = 200
)

// ContestFetcher serves the contest-calendar feed from an in-memory cache.
// The feed changes a few times a day at most, so the cache is refreshed on
// a TTL and a failed refresh keeps serving whatever was fetched last.
type ContestFetcher struct {
	fetcher   *Fetcher
	endpoint  *Endpoint
	ttl       time.Duration
	collector *metrics.Collector
	log       *logger.Logger

	mu        sync.RWMutex
	events    []models.ContestEvent
	fetchedAt time.Time
}

// NewContestFetcher creates a fetcher for the given calendar feed URL
func NewContestFetcher(fetcher *Fetcher, url string, ttl time.Duration, collector *metrics.Collector) *ContestFetcher {
	return &ContestFetcher{
		fetcher:   fetcher,
		endpoint:  NewEndpoint("contest_calendar", url, nil),
		ttl:       ttl,
		collector: collector,
		log:       logger.GetGlobalLogger().WithComponent("contests"),
	}
}

// Events returns the cached contest list, refreshing it first when stale.
// A refresh failure serves the stale cache, an empty slice when the feed
// has never been fetched; callers never see an error.
func (c *ContestFetcher) Events(ctx context.Context) []models.ContestEvent {
	c.mu.RLock()
	fresh := time.Since(c.fetchedAt) < c.ttl && !c.fetchedAt.IsZero()
	cached := c.events
	c.mu.RUnlock()

	if fresh {
		return cached
	}
	return c.Refresh(ctx)
}

// Refresh refetches the feed unconditionally and returns the current cache
func (c *ContestFetcher) Refresh(ctx context.Context) []models.ContestEvent {
	start := time.Now()

	events, err := c.fetchFeed(ctx)
	if err != nil {
		c.observe(string(KindOf(err)), start, err)
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.events == nil {
			return []models.ContestEvent{}
		}
		return c.events
	}
	c.observe("success", start, nil)

	c.mu.Lock()
	c.events = events
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return events
}

// fetchFeed fetches and maps the RSS feed into contest events
func (c *ContestFetcher) fetchFeed(ctx context.Context) ([]models.ContestEvent, error) {
	body, err := c.fetcher.Fetch(ctx, c.endpoint)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, &FetchError{
			Source: c.endpoint.Name,
			Kind:   KindParse,
			Err:    fmt.Errorf("parsing calendar feed: %w", err),
		}
	}

	events := make([]models.ContestEvent, 0, len(feed.Items))
	for _, item := range feed.Items {
		start := itemStartTime(item)
		if start == nil {
			// No usable start time at all, the entry is not schedulable
			continue
		}
		events = append(events, models.ContestEvent{
			Title:     item.Title,
			StartTime: start.UTC(),
			Link:      item.Link,
			Summary:   truncateSummary(item.Description),
		})
		if len(events) == maxContestEvents {
			break
		}
	}
	return events, nil
}

// itemStartTime prefers the item's own published time and falls back to
// its updated time
func itemStartTime(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	return item.UpdatedParsed
}

func truncateSummary(summary string) string {
	if len(summary) > maxContestSummary {
		return summary[:maxContestSummary]
	}
	return summary
}

// observe emits the per-attempt trace event
func (c *ContestFetcher) observe(outcome string, start time.Time, err error) {
	if c.collector != nil {
		c.collector.RecordSourceAttempt(c.endpoint.Name, outcome, time.Since(start).Seconds())
	}
	fields := map[string]interface{}{
		"source":  c.endpoint.Name,
		"outcome": outcome,
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		c.log.Error("contest calendar refresh", err, fields)
		return
	}
	c.log.Debug("contest calendar refresh", fields)
}
