package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*Config)
	}{
		{
			name:        "defaults",
			envVars:     map[string]string{},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.Port != "8981" {
					t.Errorf("Expected default Port to be '8981', got '%s'", cfg.Port)
				}
				if cfg.FetchTimeoutMs != 8000 {
					t.Errorf("Expected default FetchTimeoutMs to be 8000, got %d", cfg.FetchTimeoutMs)
				}
				if cfg.DeploymentMode != "local" {
					t.Errorf("Expected default DeploymentMode to be 'local', got '%s'", cfg.DeploymentMode)
				}
				if cfg.LocalArchiveDir != "./forecasts" {
					t.Errorf("Expected default LocalArchiveDir to be './forecasts', got '%s'", cfg.LocalArchiveDir)
				}
				if cfg.ArchiveEnabled {
					t.Error("Expected ArchiveEnabled to default to false")
				}
				if cfg.ContestRefreshMinutes != 360 {
					t.Errorf("Expected default ContestRefreshMinutes to be 360, got %d", cfg.ContestRefreshMinutes)
				}
				if cfg.SnapshotIntervalMinutes != 60 {
					t.Errorf("Expected default SnapshotIntervalMinutes to be 60, got %d", cfg.SnapshotIntervalMinutes)
				}
				if cfg.Environment != "production" {
					t.Errorf("Expected default Environment to be 'production', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "text" {
					t.Errorf("Expected default LogFormat to be 'text', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"PORT":                      "9000",
				"FETCH_TIMEOUT_MS":          "5000",
				"GCS_BUCKET":                "test-bucket",
				"DEPLOYMENT_MODE":           "gcs",
				"ARCHIVE_ENABLED":           "true",
				"SNAPSHOT_INTERVAL_MINUTES": "15",
				"ENVIRONMENT":               "staging",
				"LOG_LEVEL":                 "debug",
				"LOG_FORMAT":                "json",
			},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port to be '9000', got '%s'", cfg.Port)
				}
				if cfg.FetchTimeoutMs != 5000 {
					t.Errorf("Expected FetchTimeoutMs to be 5000, got %d", cfg.FetchTimeoutMs)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if !cfg.ArchiveEnabled {
					t.Error("Expected ArchiveEnabled to be true")
				}
				if cfg.SnapshotIntervalMinutes != 15 {
					t.Errorf("Expected SnapshotIntervalMinutes to be 15, got %d", cfg.SnapshotIntervalMinutes)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom source URLs",
			envVars: map[string]string{
				"HAMQTH_SPOTS_URL":     "https://cluster.example.com/spots.txt",
				"NOAA_FLUX_URL":        "https://custom.noaa.gov/flux",
				"NOAA_K_INDEX_URL":     "https://custom.noaa.gov/k-index",
				"CONTEST_CALENDAR_URL": "https://calendar.example.com/feed.rss",
			},
			expectError: false,
			validate: func(cfg *Config) {
				if cfg.HamQTHSpotsURL != "https://cluster.example.com/spots.txt" {
					t.Errorf("Expected custom HamQTH spot URL, got '%s'", cfg.HamQTHSpotsURL)
				}
				if cfg.NOAAFluxURL != "https://custom.noaa.gov/flux" {
					t.Errorf("Expected custom NOAA flux URL, got '%s'", cfg.NOAAFluxURL)
				}
				if cfg.NOAAKIndexURL != "https://custom.noaa.gov/k-index" {
					t.Errorf("Expected custom NOAA K-index URL, got '%s'", cfg.NOAAKIndexURL)
				}
				if cfg.ContestCalendarURL != "https://calendar.example.com/feed.rss" {
					t.Errorf("Expected custom contest calendar URL, got '%s'", cfg.ContestCalendarURL)
				}
			},
		},
		{
			name:        "gcs mode requires a bucket",
			envVars:     map[string]string{"DEPLOYMENT_MODE": "gcs"},
			expectError: true,
		},
		{
			name:        "unknown deployment mode rejected",
			envVars:     map[string]string{"DEPLOYMENT_MODE": "s3"},
			expectError: true,
		},
		{
			name:        "non-positive fetch timeout rejected",
			envVars:     map[string]string{"FETCH_TIMEOUT_MS": "0"},
			expectError: true,
		},
		{
			name:        "non-positive snapshot interval rejected",
			envVars:     map[string]string{"SNAPSHOT_INTERVAL_MINUTES": "-5"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load(context.Background())

			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
				return
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
				return
			}

			if !tt.expectError && tt.validate != nil {
				tt.validate(cfg)
			}

			clearEnv()
		})
	}
}

func TestLoadDefaultURLs(t *testing.T) {
	clearEnv()

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.NOAAFluxURL != "https://services.swpc.noaa.gov/json/f107_cm_flux.json" {
		t.Errorf("Unexpected default NOAAFluxURL: '%s'", cfg.NOAAFluxURL)
	}
	if cfg.NOAAKIndexURL != "https://services.swpc.noaa.gov/products/noaa-planetary-k-index.json" {
		t.Errorf("Unexpected default NOAAKIndexURL: '%s'", cfg.NOAAKIndexURL)
	}
	if cfg.HamQTHSpotsURL == "" || cfg.DXSummitSpotsURL == "" || cfg.DXHeatSpotsURL == "" {
		t.Error("Expected all three spot source URLs to have defaults")
	}

	clearEnv()
}

func TestDurationHelpers(t *testing.T) {
	cfg := &Config{
		FetchTimeoutMs:          8000,
		ContestRefreshMinutes:   360,
		SnapshotIntervalMinutes: 60,
	}

	if got := cfg.FetchTimeout(); got != 8*time.Second {
		t.Errorf("FetchTimeout() = %v, want 8s", got)
	}
	if got := cfg.ContestRefreshInterval(); got != 6*time.Hour {
		t.Errorf("ContestRefreshInterval() = %v, want 6h", got)
	}
	if got := cfg.SnapshotInterval(); got != time.Hour {
		t.Errorf("SnapshotInterval() = %v, want 1h", got)
	}
}

// Helper function to clear relevant environment variables
func clearEnv() {
	envVars := []string{
		"PORT", "FETCH_TIMEOUT_MS",
		"HAMQTH_SPOTS_URL", "DXSUMMIT_SPOTS_URL", "DXHEAT_SPOTS_URL",
		"NOAA_FLUX_URL", "NOAA_K_INDEX_URL",
		"CONTEST_CALENDAR_URL", "CONTEST_REFRESH_MINUTES",
		"ARCHIVE_ENABLED", "DEPLOYMENT_MODE", "LOCAL_ARCHIVE_DIR", "GCS_BUCKET",
		"SNAPSHOT_INTERVAL_MINUTES", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}
