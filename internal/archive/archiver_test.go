package archive

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"spotcast/internal/models"
)

func testReport() models.PropagationReport {
	return models.PropagationReport{
		SolarData:      models.DefaultSnapshot(),
		DistanceKm:     10870,
		CurrentHourUTC: 6,
		CurrentBands: []models.BandSummary{
			{Band: "20m", FreqMHz: 14, Reliability: 83, SNR: "+20dB", Status: "EXCELLENT"},
		},
		HourlyPredictions: map[string][]models.HourlyPrediction{},
	}
}

func TestArchiverStoreAndLatest(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorageClient() error = %v", err)
	}
	archiver := NewArchiver(storage)
	defer archiver.Close()

	older := testReport()
	older.CurrentHourUTC = 5
	newer := testReport()

	if err := archiver.Store(ctx, older, time.Date(2026, 1, 30, 5, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Store(older) error = %v", err)
	}
	if err := archiver.Store(ctx, newer, time.Date(2026, 1, 30, 6, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Store(newer) error = %v", err)
	}

	data, err := archiver.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	var got models.PropagationReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("latest snapshot is not valid JSON: %v", err)
	}
	if got.CurrentHourUTC != 6 {
		t.Errorf("latest snapshot hour = %d, want the newer snapshot's 6", got.CurrentHourUTC)
	}
}

func TestArchiverLatestEmpty(t *testing.T) {
	storage, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorageClient() error = %v", err)
	}
	archiver := NewArchiver(storage)
	defer archiver.Close()

	if _, err := archiver.Latest(context.Background()); !errors.Is(err, ErrNoSnapshots) {
		t.Errorf("Latest() error = %v, want ErrNoSnapshots", err)
	}
}
