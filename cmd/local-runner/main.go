// Command local-runner exercises the full spotcast pipeline once without
// starting the HTTP server: fetch spots, fetch space weather, build the
// default-path forecast and print a summary. Handy for eyeballing live
// upstream behavior during development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"spotcast/internal/archive"
	"spotcast/internal/config"
	"spotcast/internal/fetchers"
	"spotcast/internal/models"
	"spotcast/internal/propagation"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	fetcher := fetchers.NewFetcher(cfg.FetchTimeout())

	fmt.Println("Fetching DX spots...")
	aggregator := fetchers.NewSpotAggregator(fetcher, fetchers.BuildSpotSources(cfg), nil)
	spots := aggregator.FetchSpots(ctx)
	fmt.Printf("  %d spots\n", len(spots))
	for i, spot := range spots {
		if i == 5 {
			fmt.Printf("  ... and %d more\n", len(spots)-5)
			break
		}
		fmt.Printf("  %-10s %10s MHz  %s  de %s\n",
			spot.DXCallsign, spot.FrequencyMHz, spot.TimeUTC, spot.SpotterCallsign)
	}

	fmt.Println("Fetching space weather...")
	wx := fetchers.NewSpaceWeatherFetcher(fetcher, cfg, nil).Fetch(ctx)
	fmt.Printf("  SFI %.1f  SSN %d  K %d\n", wx.SolarFluxIndex, wx.SunspotNumber, wx.KIndex)

	de := models.DefaultDECoordinate()
	dx := models.DefaultDXCoordinate()
	report := propagation.BuildReport(wx, de, dx, time.Now())

	fmt.Printf("Forecast for the default %d km path at %02d:00z:\n",
		report.DistanceKm, report.CurrentHourUTC)
	for _, band := range report.CurrentBands {
		fmt.Printf("  %-4s %5.1f MHz  reliability %2d  %-6s %s\n",
			band.Band, band.FreqMHz, band.Reliability, band.SNR, band.Status)
	}

	if cfg.ArchiveEnabled {
		storage, err := archive.NewStorageClient(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "archive: %v\n", err)
			os.Exit(1)
		}
		archiver := archive.NewArchiver(storage)
		defer archiver.Close()

		if err := archiver.Store(ctx, report, time.Now().UTC()); err != nil {
			fmt.Fprintf(os.Stderr, "archive: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Snapshot archived.")
	}
}
