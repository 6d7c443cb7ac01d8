package fetchers

import (
	"strconv"
	"strings"

	"spotcast/internal/models"
)

// Pipe feed layout: spotter^freqKHz^dxCall^comment^"HHMM YYYY-MM-DD"^...^band
const (
	maxPipeLines  = 25
	pipeMinFields = 5
	pipeBandField = 8
	pipeDelimiter = "^"
)

// ParsePipeSpots converts a caret-delimited cluster feed into spots.
// Malformed lines are dropped silently rather than failing the payload:
// a partially readable feed still beats falling through to the next source.
func ParsePipeSpots(raw string) ([]models.Spot, error) {
	var candidates []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) == maxPipeLines {
			break
		}
	}

	spots := make([]models.Spot, 0, len(candidates))
	for _, line := range candidates {
		fields := strings.Split(line, pipeDelimiter)
		if len(fields) < pipeMinFields {
			continue
		}

		freqKHz, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || freqKHz <= 0 {
			continue
		}
		callsign := strings.TrimSpace(fields[2])
		if callsign == "" {
			continue
		}

		comment := strings.TrimSpace(fields[3])
		if len(fields) > pipeBandField {
			if band := strings.TrimSpace(fields[pipeBandField]); band != "" {
				if comment == "" {
					comment = band
				} else {
					comment = comment + " " + band
				}
			}
		}

		spots = append(spots, models.Spot{
			FrequencyMHz:    strconv.FormatFloat(freqKHz/1000, 'f', 3, 64),
			DXCallsign:      callsign,
			Comment:         comment,
			TimeUTC:         pipeTimeUTC(fields[4]),
			SpotterCallsign: strings.TrimSpace(fields[0]),
		})
	}

	return spots, nil
}

// pipeTimeUTC extracts "HHMM YYYY-MM-DD" into "HH:MMz", empty when the
// field does not carry a 4-digit clock
func pipeTimeUTC(field string) string {
	parts := strings.Fields(field)
	if len(parts) == 0 {
		return ""
	}
	hhmm := parts[0]
	if len(hhmm) != 4 {
		return ""
	}
	if _, err := strconv.Atoi(hhmm); err != nil {
		return ""
	}
	return hhmm[:2] + ":" + hhmm[2:] + "z"
}
