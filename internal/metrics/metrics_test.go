package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"spotcast/internal/models"
)

func TestCollectorExposesInstruments(t *testing.T) {
	c := NewCollector()

	c.RecordSourceAttempt("hamqth", "success", 0.42)
	c.RecordSourceAttempt("dxsummit", "timeout", 8.0)
	c.RecordSpotsReturned(17)
	c.RecordSpaceWeather(models.SpaceWeatherSnapshot{SolarFluxIndex: 142, SunspotNumber: 77, KIndex: 3})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("metrics handler returned %d", rr.Code)
	}
	body, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("reading metrics body: %v", err)
	}

	payload := string(body)
	for _, want := range []string{
		`spotcast_source_attempts_total{outcome="success",source="hamqth"} 1`,
		`spotcast_source_attempts_total{outcome="timeout",source="dxsummit"} 1`,
		"spotcast_fetch_duration_seconds_bucket",
		"spotcast_spots_returned 17",
		"spotcast_space_weather_sfi 142",
		"spotcast_space_weather_k_index 3",
	} {
		if !strings.Contains(payload, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNewCollectorIsolatedRegistries(t *testing.T) {
	first := NewCollector()
	second := NewCollector()

	first.RecordSpotsReturned(5)
	second.RecordSpotsReturned(9)

	rr := httptest.NewRecorder()
	second.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rr.Body.String(), "spotcast_spots_returned 9") {
		t.Error("second collector did not report its own gauge value")
	}
}
