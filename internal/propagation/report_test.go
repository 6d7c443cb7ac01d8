package propagation

import (
	"reflect"
	"testing"
	"time"

	"spotcast/internal/models"
)

func testReport(t *testing.T) models.PropagationReport {
	t.Helper()
	now := time.Date(2026, 1, 30, 6, 10, 0, 0, time.UTC)
	return BuildReport(models.DefaultSnapshot(), models.DefaultDECoordinate(), models.DefaultDXCoordinate(), now)
}

func TestBuildReportShape(t *testing.T) {
	report := testReport(t)

	if report.CurrentHourUTC != 6 {
		t.Errorf("CurrentHourUTC = %d, want 6", report.CurrentHourUTC)
	}
	// US east coast to Japan is a shade under 11000 km
	if report.DistanceKm < 10500 || report.DistanceKm > 11200 {
		t.Errorf("DistanceKm = %d, expected roughly 10900", report.DistanceKm)
	}
	if len(report.CurrentBands) != len(Bands) {
		t.Errorf("CurrentBands has %d entries, want %d", len(report.CurrentBands), len(Bands))
	}
	if len(report.HourlyPredictions) != len(Bands) {
		t.Errorf("HourlyPredictions has %d bands, want %d", len(report.HourlyPredictions), len(Bands))
	}
	if report.SolarData != models.DefaultSnapshot() {
		t.Errorf("SolarData = %+v, want the input snapshot", report.SolarData)
	}
}

func TestBuildReportHourlyTables(t *testing.T) {
	report := testReport(t)

	for _, band := range Bands {
		predictions, ok := report.HourlyPredictions[band.Label]
		if !ok {
			t.Fatalf("missing hourly table for %s", band.Label)
		}
		if len(predictions) != 24 {
			t.Fatalf("%s table has %d entries, want 24", band.Label, len(predictions))
		}
		for i, p := range predictions {
			if p.Hour != i {
				t.Errorf("%s entry %d has hour %d", band.Label, i, p.Hour)
			}
			if p.Reliability < 0 || p.Reliability > 99 {
				t.Errorf("%s hour %d reliability %d out of range", band.Label, i, p.Reliability)
			}
			if p.SNR != SNRLabel(p.Reliability) {
				t.Errorf("%s hour %d SNR %s does not match reliability %d", band.Label, i, p.SNR, p.Reliability)
			}
		}
	}
}

func TestBuildReportBandOrdering(t *testing.T) {
	report := testReport(t)

	freqByLabel := make(map[string]float64, len(Bands))
	for _, band := range Bands {
		freqByLabel[band.Label] = band.FreqMHz
	}

	for i := 1; i < len(report.CurrentBands); i++ {
		prev, cur := report.CurrentBands[i-1], report.CurrentBands[i]
		if cur.Reliability > prev.Reliability {
			t.Errorf("bands not sorted descending at %d: %s(%d) before %s(%d)",
				i, prev.Band, prev.Reliability, cur.Band, cur.Reliability)
		}
		if cur.Reliability == prev.Reliability && freqByLabel[cur.Band] < freqByLabel[prev.Band] {
			t.Errorf("tie at reliability %d not broken by ascending frequency: %s before %s",
				cur.Reliability, prev.Band, cur.Band)
		}
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	first := testReport(t)
	second := testReport(t)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different reports")
	}
}

func TestBuildReportUsesUTC(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	localNow := time.Date(2026, 1, 30, 15, 10, 0, 0, loc) // 06:10 UTC

	report := BuildReport(models.DefaultSnapshot(), models.DefaultDECoordinate(), models.DefaultDXCoordinate(), localNow)
	if report.CurrentHourUTC != 6 {
		t.Errorf("CurrentHourUTC = %d, want 6 (hour taken in UTC)", report.CurrentHourUTC)
	}
}
