package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the spot aggregation service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Outbound fetch behavior, shared by all sources
	FetchTimeoutMs int `env:"FETCH_TIMEOUT_MS,default=8000"`

	// DX spot sources, tried strictly in this order
	HamQTHSpotsURL   string `env:"HAMQTH_SPOTS_URL,default=https://www.hamqth.com/dxc_csv.php?limit=25"`
	DXSummitSpotsURL string `env:"DXSUMMIT_SPOTS_URL,default=https://www.dxsummit.fi/api/v1/spots?limit=20"`
	DXHeatSpotsURL   string `env:"DXHEAT_SPOTS_URL,default=https://dxheat.com/source/spots/?a=20"`

	// Space weather sources
	NOAAFluxURL   string `env:"NOAA_FLUX_URL,default=https://services.swpc.noaa.gov/json/f107_cm_flux.json"`
	NOAAKIndexURL string `env:"NOAA_K_INDEX_URL,default=https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json"`

	// Contest calendar feed
	ContestCalendarURL    string `env:"CONTEST_CALENDAR_URL,default=https://www.contestcalendar.com/calendar.rss"`
	ContestRefreshMinutes int    `env:"CONTEST_REFRESH_MINUTES,default=360"`

	// Forecast snapshot archive
	ArchiveEnabled          bool   `env:"ARCHIVE_ENABLED,default=false"`
	DeploymentMode          string `env:"DEPLOYMENT_MODE,default=local"`
	LocalArchiveDir         string `env:"LOCAL_ARCHIVE_DIR,default=./forecasts"`
	GCSBucket               string `env:"GCS_BUCKET"`
	SnapshotIntervalMinutes int    `env:"SNAPSHOT_INTERVAL_MINUTES,default=60"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=production"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig tags cannot express
func (c *Config) Validate() error {
	if c.FetchTimeoutMs <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_MS must be positive, got %d", c.FetchTimeoutMs)
	}
	if c.ContestRefreshMinutes <= 0 {
		return fmt.Errorf("CONTEST_REFRESH_MINUTES must be positive, got %d", c.ContestRefreshMinutes)
	}
	if c.SnapshotIntervalMinutes <= 0 {
		return fmt.Errorf("SNAPSHOT_INTERVAL_MINUTES must be positive, got %d", c.SnapshotIntervalMinutes)
	}
	switch c.DeploymentMode {
	case "local":
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when DEPLOYMENT_MODE=gcs")
		}
	default:
		return fmt.Errorf("unsupported DEPLOYMENT_MODE %q (want local or gcs)", c.DeploymentMode)
	}
	return nil
}

// FetchTimeout returns the per-attempt deadline for outbound fetches
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

// ContestRefreshInterval returns the contest cache refresh period
func (c *Config) ContestRefreshInterval() time.Duration {
	return time.Duration(c.ContestRefreshMinutes) * time.Minute
}

// SnapshotInterval returns the forecast archive snapshot period
func (c *Config) SnapshotInterval() time.Duration {
	return time.Duration(c.SnapshotIntervalMinutes) * time.Minute
}
