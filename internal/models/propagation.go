package models

// Coordinate is a geographic point used for path calculations
type Coordinate struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// Default path endpoints when the caller supplies none: a US east coast
// station (DE) working Japan (DX)
func DefaultDECoordinate() Coordinate { return Coordinate{Lat: 40, Lon: -75} }
func DefaultDXCoordinate() Coordinate { return Coordinate{Lat: 35, Lon: 139} }

// HourlyPrediction is one hour of a band's reliability forecast
type HourlyPrediction struct {
	Hour        int    `json:"hour"`        // 0..23 UTC
	Reliability int    `json:"reliability"` // 0..99
	SNR         string `json:"snr"`         // "-20dB".."+20dB"
}

// BandSummary is the current-hour condition of one band
type BandSummary struct {
	Band        string  `json:"band"`
	FreqMHz     float64 `json:"freqMHz"`
	Reliability int     `json:"reliability"`
	SNR         string  `json:"snr"`
	Status      string  `json:"status"` // CLOSED/POOR/FAIR/GOOD/EXCELLENT
}

// PropagationReport is the full forecast for one DE/DX path
type PropagationReport struct {
	SolarData         SpaceWeatherSnapshot          `json:"solarData"`
	DistanceKm        int                           `json:"distanceKm"`
	CurrentHourUTC    int                           `json:"currentHourUTC"`
	CurrentBands      []BandSummary                 `json:"currentBands"`
	HourlyPredictions map[string][]HourlyPrediction `json:"hourlyPredictions"`
}
