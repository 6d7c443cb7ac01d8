package models

import "math"

// Space weather defaults used when live data is unavailable
const (
	DefaultSolarFluxIndex = 150.0
	DefaultSunspotNumber  = 100
	DefaultKIndex         = 2
)

// SpaceWeatherSnapshot holds the solar indices driving the propagation estimate
type SpaceWeatherSnapshot struct {
	SolarFluxIndex float64 `json:"sfi"`    // 10.7cm solar flux
	SunspotNumber  int     `json:"ssn"`    // Derived from SFI, never fetched
	KIndex         int     `json:"kIndex"` // Planetary K-index, 0-9
}

// DefaultSnapshot returns the static fallback snapshot
func DefaultSnapshot() SpaceWeatherSnapshot {
	return SpaceWeatherSnapshot{
		SolarFluxIndex: DefaultSolarFluxIndex,
		SunspotNumber:  DefaultSunspotNumber,
		KIndex:         DefaultKIndex,
	}
}

// DerivedSunspotNumber estimates the sunspot number from a solar flux value.
// The linear fit tracks the historical SFI/SSN relationship closely enough
// for band forecasting; negative estimates floor at zero.
func DerivedSunspotNumber(sfi float64) int {
	ssn := math.Round((sfi - 67.0) / 0.97)
	if ssn < 0 {
		return 0
	}
	return int(ssn)
}

// FluxObservation is one element of the NOAA F10.7 flux series
type FluxObservation struct {
	TimeTag string  `json:"time_tag"`
	Flux    float64 `json:"flux"`
}
