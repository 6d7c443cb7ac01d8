package mocks

import (
	"net/http"
	"net/http/httptest"

	"spotcast/internal/config"
)

// Canned upstream payloads, shaped like the real feeds
const (
	PipeSpots = `# DX de cluster banner
F5PAC^7022.0^KP5/NP3VI^Up 2^0610 2026-01-30^^^NA^40M^Desecheo Island^43
W1AW^14025.5^JA1XYZ^CQ DX^1200 2026-01-30^^^AS^20M^Japan^1`

	JSONSpots = `[
		{"dx_call":"VP8ABC","freq":21074.0,"comment":"FT8","time":"09:15:00","spotter":"K3LR"},
		{"dxcall":"ZL1AA","frequency":"28400","info":"59 into EU","spot_time":"09:20","de_call":"G4XYZ"}
	]`

	CompactSpots = `{"spots":[
		{"f":18100.0,"c":"9M2TO","i":"CW up 1","t":"2026-01-30T08:45:00Z","de":"VK2DEF"}
	]}`

	FluxSeries = `[
		{"time_tag":"2026-01-29T20:00:00","flux":142.0},
		{"time_tag":"2026-01-30T00:00:00","flux":168.4}
	]`

	KIndexSeries = `[
		["time_tag","Kp","a_running","station_count"],
		["2026-01-30 00:00:00.000","2.33","9","8"],
		["2026-01-30 03:00:00.000","3.67","18","8"]
	]`

	ContestFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Contest Calendar</title>
	<item>
		<title>CQ World Wide DX Contest</title>
		<link>https://example.org/cqww</link>
		<description>48 hour phone contest</description>
		<pubDate>Fri, 30 Jan 2026 00:00:00 GMT</pubDate>
	</item>
</channel>
</rss>`
)

// MockService runs an in-process stand-in for every upstream the service
// fetches: the three cluster feeds, the two NOAA series and the contest
// calendar. Tests point a config at it and exercise the real pipeline.
type MockService struct {
	server *httptest.Server
}

// NewMockService starts the mock upstream service
func NewMockService() *MockService {
	mux := http.NewServeMux()
	mux.HandleFunc("/spots/pipe", servePlain(PipeSpots))
	mux.HandleFunc("/spots/json", serveJSON(JSONSpots))
	mux.HandleFunc("/spots/compact", serveJSON(CompactSpots))
	mux.HandleFunc("/flux", serveJSON(FluxSeries))
	mux.HandleFunc("/kindex", serveJSON(KIndexSeries))
	mux.HandleFunc("/contests", servePlain(ContestFeed))

	return &MockService{server: httptest.NewServer(mux)}
}

// URL returns the mock's address for the given path
func (m *MockService) URL(path string) string {
	return m.server.URL + path
}

// Config returns a service configuration with every source pointed at the
// mock. Archiving is left disabled, tests that want it set the fields.
func (m *MockService) Config() *config.Config {
	return &config.Config{
		Port:                    "0",
		FetchTimeoutMs:          2000,
		HamQTHSpotsURL:          m.URL("/spots/pipe"),
		DXSummitSpotsURL:        m.URL("/spots/json"),
		DXHeatSpotsURL:          m.URL("/spots/compact"),
		NOAAFluxURL:             m.URL("/flux"),
		NOAAKIndexURL:           m.URL("/kindex"),
		ContestCalendarURL:      m.URL("/contests"),
		ContestRefreshMinutes:   360,
		DeploymentMode:          "local",
		SnapshotIntervalMinutes: 60,
		Environment:             "test",
	}
}

// Close shuts the mock upstream down
func (m *MockService) Close() {
	m.server.Close()
}

func servePlain(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(body))
	}
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}
