package fetchers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"spotcast/internal/models"
)

const (
	maxJSONRecords    = 20
	maxCompactRecords = 20

	// Sentinels keep ambiguous records in the result instead of dropping
	// them; any signal beats none for the consuming dashboard.
	unknownCallsign  = "UNKNOWN"
	missingFrequency = "0.000"
)

// aliasTable lists candidate upstream keys per canonical spot field in
// preference order, first present key wins. New upstream schemas are
// covered by adding a table, not code.
type aliasTable struct {
	frequency []string
	callsign  []string
	comment   []string
	time      []string
	spotter   []string
}

// Long-key schema served by DX Summit style APIs
var jsonAliases = aliasTable{
	frequency: []string{"freq", "frequency", "qrg"},
	callsign:  []string{"dx_call", "dxcall", "callsign"},
	comment:   []string{"comment", "info", "notes"},
	time:      []string{"time", "spot_time"},
	spotter:   []string{"spotter", "de_call"},
}

// Single-letter schema served by DXHeat style APIs
var compactAliases = aliasTable{
	frequency: []string{"f", "frequency"},
	callsign:  []string{"c", "dx", "callsign"},
	comment:   []string{"i", "info"},
	time:      []string{"t"},
	spotter:   []string{"de", "spotter"},
}

// ParseJSONSpots parses a bare array of long-key spot records. Time
// fields arrive as "HH:MM" or similar clock prefixes and keep their
// first five characters.
func ParseJSONSpots(raw string) ([]models.Spot, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding spot array: %w", err)
	}
	if len(records) > maxJSONRecords {
		records = records[:maxJSONRecords]
	}

	spots := make([]models.Spot, 0, len(records))
	for _, record := range records {
		spots = append(spots, models.Spot{
			FrequencyMHz:    frequencyOrSentinel(record, jsonAliases.frequency),
			DXCallsign:      stringOrDefault(record, jsonAliases.callsign, unknownCallsign),
			Comment:         stringOrDefault(record, jsonAliases.comment, ""),
			TimeUTC:         clockPrefixTime(stringOrDefault(record, jsonAliases.time, "")),
			SpotterCallsign: stringOrDefault(record, jsonAliases.spotter, ""),
		})
	}
	return spots, nil
}

// ParseCompactJSONSpots parses the single-letter-key backup schema:
// either a bare array or a {"spots":[...]} wrapper, with ISO-8601-like
// timestamps sliced down to their clock part.
func ParseCompactJSONSpots(raw string) ([]models.Spot, error) {
	records, err := compactRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) > maxCompactRecords {
		records = records[:maxCompactRecords]
	}

	spots := make([]models.Spot, 0, len(records))
	for _, record := range records {
		spots = append(spots, models.Spot{
			FrequencyMHz:    frequencyOrSentinel(record, compactAliases.frequency),
			DXCallsign:      stringOrDefault(record, compactAliases.callsign, unknownCallsign),
			Comment:         stringOrDefault(record, compactAliases.comment, ""),
			TimeUTC:         isoClockTime(stringOrDefault(record, compactAliases.time, "")),
			SpotterCallsign: stringOrDefault(record, compactAliases.spotter, ""),
		})
	}
	return spots, nil
}

// compactRecords accepts both payload shapes the backup source serves
func compactRecords(raw string) ([]map[string]interface{}, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Spots []map[string]interface{} `json:"spots"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, fmt.Errorf("decoding spot payload: %w", err)
	}
	return wrapper.Spots, nil
}

// lookup returns the first present alias as a string. JSON numbers are
// rendered without trailing zeros; everything non-scalar counts as absent.
func lookup(record map[string]interface{}, keys []string) (string, bool) {
	for _, key := range keys {
		value, ok := record[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			return strings.TrimSpace(v), true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

func stringOrDefault(record map[string]interface{}, keys []string, fallback string) string {
	if value, ok := lookup(record, keys); ok && value != "" {
		return value
	}
	return fallback
}

// frequencyOrSentinel normalizes a present, positive frequency to three
// decimals; absent or unusable values get the sentinel so the record
// survives with a recognizable placeholder.
func frequencyOrSentinel(record map[string]interface{}, keys []string) string {
	value, ok := lookup(record, keys)
	if !ok || value == "" {
		return missingFrequency
	}
	freq, err := strconv.ParseFloat(value, 64)
	if err != nil || freq <= 0 {
		return missingFrequency
	}
	return strconv.FormatFloat(freq, 'f', 3, 64)
}

// clockPrefixTime keeps the first five characters of a clock-ish field
// and marks it UTC, "06:10" and "0610" style inputs included
func clockPrefixTime(value string) string {
	if value == "" {
		return ""
	}
	if len(value) > 5 {
		value = value[:5]
	}
	return value + "z"
}

// isoClockTime slices the HH:MM out of an ISO-8601-like timestamp,
// empty when the value is too short to carry one
func isoClockTime(value string) string {
	if len(value) < 16 {
		return ""
	}
	return value[11:16] + "z"
}
