package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"spotcast/internal/archive"
	"spotcast/internal/config"
)

// HandleSpots serves the aggregated DX spot list. The aggregator never
// fails, so the answer is always 200 with an array, possibly empty.
func (s *Server) HandleSpots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	spots := s.Aggregator.FetchSpots(r.Context())
	s.writeJSON(w, spots)
}

// HandlePropagation serves the propagation forecast for the requested
// DE/DX path, defaulting either endpoint when its coordinates are missing
// or invalid
func (s *Server) HandlePropagation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	de, dx := s.pathCoordinates(r.URL.Query())
	report := s.BuildForecast(r.Context(), de, dx)
	s.writeJSON(w, report)
}

// HandleContests serves the cached contest calendar
func (s *Server) HandleContests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events := s.Contests.Events(r.Context())
	s.writeJSON(w, events)
}

// HandleLatestForecast serves the most recent archived snapshot verbatim
func (s *Server) HandleLatestForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.Archiver == nil {
		s.writeJSONStatus(w, http.StatusNotFound, map[string]string{
			"error": "forecast archiving is disabled",
		})
		return
	}

	data, err := s.Archiver.Latest(r.Context())
	if err != nil {
		if errors.Is(err, archive.ErrNoSnapshots) {
			s.writeJSONStatus(w, http.StatusNotFound, map[string]string{
				"error": "no forecast snapshots archived yet",
			})
			return
		}
		s.log.Error("failed to read latest snapshot", err)
		http.Error(w, "Failed to read latest snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// HandleHealth provides the health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "spotcast",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleConfig exposes the runtime configuration for operators
func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"port":                    s.Config.Port,
		"environment":             s.Config.Environment,
		"fetchTimeoutMs":          s.Config.FetchTimeoutMs,
		"spotSources":             []string{s.Config.HamQTHSpotsURL, s.Config.DXSummitSpotsURL, s.Config.DXHeatSpotsURL},
		"noaaFluxUrl":             s.Config.NOAAFluxURL,
		"noaaKIndexUrl":           s.Config.NOAAKIndexURL,
		"contestCalendarUrl":      s.Config.ContestCalendarURL,
		"contestRefreshMinutes":   s.Config.ContestRefreshMinutes,
		"archiveEnabled":          s.Config.ArchiveEnabled,
		"deploymentMode":          s.Config.DeploymentMode,
		"snapshotIntervalMinutes": s.Config.SnapshotIntervalMinutes,
		"version":                 config.GetVersion(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}) {
	s.writeJSONStatus(w, http.StatusOK, payload)
}

func (s *Server) writeJSONStatus(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", err)
	}
}
