package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDerivedSunspotNumber(t *testing.T) {
	tests := []struct {
		name string
		sfi  float64
		want int
	}{
		{"default flux", 150, 86},
		{"quiet sun at baseline", 67, 0},
		{"below baseline floors at zero", 50, 0},
		{"high cycle peak", 200, 137},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DerivedSunspotNumber(tt.sfi); got != tt.want {
				t.Errorf("DerivedSunspotNumber(%v) = %d, want %d", tt.sfi, got, tt.want)
			}
		})
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot()
	if snap.SolarFluxIndex != 150 || snap.SunspotNumber != 100 || snap.KIndex != 2 {
		t.Errorf("unexpected defaults: %+v", snap)
	}
}

func TestSourceResultTerminal(t *testing.T) {
	tests := []struct {
		name   string
		result SourceResult
		want   bool
	}{
		{"success with spots", SourceResult{Outcome: OutcomeSuccess, Spots: []Spot{{DXCallsign: "JA1ABC"}}}, true},
		{"success with no spots", SourceResult{Outcome: OutcomeSuccess}, false},
		{"empty", SourceResult{Outcome: OutcomeEmpty}, false},
		{"failure", SourceResult{Outcome: OutcomeFailure, Reason: "timeout"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The JSON field names are the HTTP contract consumed by dashboards;
// they must not drift.
func TestReportWireNames(t *testing.T) {
	report := PropagationReport{
		SolarData:         DefaultSnapshot(),
		DistanceKm:        10851,
		CurrentHourUTC:    6,
		CurrentBands:      []BandSummary{{Band: "20m", FreqMHz: 14, Reliability: 72, SNR: "+10dB", Status: "EXCELLENT"}},
		HourlyPredictions: map[string][]HourlyPrediction{"20m": {{Hour: 0, Reliability: 50, SNR: "0dB"}}},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	payload := string(data)
	for _, key := range []string{
		`"solarData"`, `"distanceKm"`, `"currentHourUTC"`, `"currentBands"`,
		`"hourlyPredictions"`, `"sfi"`, `"ssn"`, `"kIndex"`,
		`"band"`, `"freqMHz"`, `"reliability"`, `"snr"`, `"status"`, `"hour"`,
	} {
		if !strings.Contains(payload, key) {
			t.Errorf("report JSON missing %s: %s", key, payload)
		}
	}
}
