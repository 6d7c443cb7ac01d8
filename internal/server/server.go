package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"spotcast/internal/archive"
	"spotcast/internal/config"
	"spotcast/internal/fetchers"
	"spotcast/internal/logger"
	"spotcast/internal/metrics"
	"spotcast/internal/models"
	"spotcast/internal/propagation"
)

// Server wires the aggregation core behind the HTTP API
type Server struct {
	Config       *config.Config
	Aggregator   *fetchers.SpotAggregator
	SpaceWeather *fetchers.SpaceWeatherFetcher
	Contests     *fetchers.ContestFetcher
	Collector    *metrics.Collector
	Archiver     *archive.Archiver // nil when archiving is disabled

	validate *validator.Validate
	log      *logger.Logger
}

// NewServer creates a server instance with the full fetch pipeline wired up
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	collector := metrics.NewCollector()
	fetcher := fetchers.NewFetcher(cfg.FetchTimeout())

	s := &Server{
		Config:       cfg,
		Aggregator:   fetchers.NewSpotAggregator(fetcher, fetchers.BuildSpotSources(cfg), collector),
		SpaceWeather: fetchers.NewSpaceWeatherFetcher(fetcher, cfg, collector),
		Contests:     fetchers.NewContestFetcher(fetcher, cfg.ContestCalendarURL, cfg.ContestRefreshInterval(), collector),
		Collector:    collector,
		validate:     validator.New(),
		log:          logger.GetGlobalLogger().WithComponent("server"),
	}

	if cfg.ArchiveEnabled {
		storage, err := archive.NewStorageClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize forecast archive: %w", err)
		}
		s.Archiver = archive.NewArchiver(storage)
	}

	return s, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes behind CORS, the consuming dashboard lives on another origin
	mux.Handle("/api/spots", withCORS(http.HandlerFunc(s.HandleSpots)))
	mux.Handle("/api/propagation", withCORS(http.HandlerFunc(s.HandlePropagation)))
	mux.Handle("/api/contests", withCORS(http.HandlerFunc(s.HandleContests)))
	mux.Handle("/api/forecast/latest", withCORS(http.HandlerFunc(s.HandleLatestForecast)))

	// Operational endpoints
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/config", s.HandleConfig)
	mux.Handle("/metrics", s.Collector.Handler())

	return mux
}

// BuildForecast fetches the current space weather and derives the full
// propagation report for one DE/DX path
func (s *Server) BuildForecast(ctx context.Context, de, dx models.Coordinate) models.PropagationReport {
	wx := s.SpaceWeather.Fetch(ctx)
	return propagation.BuildReport(wx, de, dx, time.Now())
}

// ArchiveSnapshot builds a default-path forecast and stores it, the
// scheduler's snapshot job body
func (s *Server) ArchiveSnapshot(ctx context.Context) error {
	if s.Archiver == nil {
		return nil
	}
	report := s.BuildForecast(ctx, models.DefaultDECoordinate(), models.DefaultDXCoordinate())
	return s.Archiver.Store(ctx, report, time.Now().UTC())
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Archiver != nil {
		return s.Archiver.Close()
	}
	return nil
}
