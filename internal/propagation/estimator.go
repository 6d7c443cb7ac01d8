package propagation

import (
	"math"

	"spotcast/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// Path holds the precomputed geometry of one DE/DX great-circle path
type Path struct {
	DistanceKm float64
	MidLat     float64
	MidLon     float64
}

// NewPath computes the path geometry between two stations
func NewPath(de, dx models.Coordinate) Path {
	return Path{
		DistanceKm: HaversineKm(de, dx),
		MidLat:     (de.Lat + dx.Lat) / 2,
		MidLon:     (de.Lon + dx.Lon) / 2,
	}
}

// HaversineKm returns the great-circle distance between two coordinates
func HaversineKm(a, b models.Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// criticalFrequency approximates foF2 from the sunspot number and UTC hour.
// The cosine term peaks at hour 12, modeling daytime ionization.
func criticalFrequency(ssn int, hour int) float64 {
	hourFactor := 1 + 0.4*math.Cos((float64(hour)-12)*math.Pi/12)
	return 0.9 * math.Sqrt(float64(ssn)+15) * hourFactor
}

// maxUsableFrequency approximates the MUF for a path from its foF2 proxy,
// hop distance and midpoint latitude
func maxUsableFrequency(foF2, distanceKm, midLat float64) float64 {
	return foF2 * math.Sqrt(1+distanceKm/3500) * (1 - math.Abs(midLat)/200) * 3.5
}

// lowestUsableFrequency approximates the LUF from D-layer absorption:
// stronger under a daylit path midpoint and during geomagnetic disturbance
func lowestUsableFrequency(sfi float64, kIndex int, hour int, midLon float64) float64 {
	localHour := math.Mod(float64(hour)+midLon/15+24, 24)
	dayNightFactor := 0.5
	if localHour >= 6 && localHour <= 18 {
		dayNightFactor = 1.5
	}
	return 2 + (sfi/100)*dayNightFactor + float64(kIndex)*0.5
}

// Reliability estimates the 0..99 reliability of a band over a path at a
// given UTC hour. Pure and deterministic: the hour argument is the only
// time dependency.
func Reliability(freqMHz float64, hour int, path Path, wx models.SpaceWeatherSnapshot) int {
	foF2 := criticalFrequency(wx.SunspotNumber, hour)
	muf := maxUsableFrequency(foF2, path.DistanceKm, path.MidLat)
	luf := lowestUsableFrequency(wx.SolarFluxIndex, wx.KIndex, hour, path.MidLon)

	var reliability float64
	switch {
	case freqMHz > muf:
		reliability = math.Max(0, 50-(freqMHz-muf)*10)
	case freqMHz < luf:
		reliability = math.Max(0, 50-(luf-freqMHz)*15)
	default:
		window := muf - luf
		if window <= 0 {
			// Degenerate window, freq == muf == luf
			reliability = 50
		} else {
			midpoint := (muf + luf) / 2
			reliability = 50 + (1-math.Abs(freqMHz-midpoint)/window)*45
		}
	}

	// Geomagnetic storm degradation, highest matching bracket only
	switch {
	case wx.KIndex >= 5:
		reliability *= 0.3
	case wx.KIndex >= 4:
		reliability *= 0.6
	case wx.KIndex >= 3:
		reliability *= 0.8
	}

	// Long-path penalty
	switch {
	case path.DistanceKm > 15000:
		reliability *= 0.7
	case path.DistanceKm > 10000:
		reliability *= 0.85
	}

	// High bands need solar flux; both factors can stack
	if freqMHz >= 21 && wx.SolarFluxIndex < 100 {
		reliability *= wx.SolarFluxIndex / 100
	}
	if freqMHz >= 28 && wx.SolarFluxIndex < 120 {
		reliability *= wx.SolarFluxIndex / 120
	}

	return int(math.Round(math.Max(0, math.Min(99, reliability))))
}

// SNRLabel maps a reliability score to an indicative signal margin
func SNRLabel(reliability int) string {
	switch {
	case reliability >= 80:
		return "+20dB"
	case reliability >= 60:
		return "+10dB"
	case reliability >= 40:
		return "0dB"
	case reliability >= 20:
		return "-10dB"
	default:
		return "-20dB"
	}
}

// StatusLabel maps a reliability score to a band condition word
func StatusLabel(reliability int) string {
	switch {
	case reliability >= 70:
		return "EXCELLENT"
	case reliability >= 50:
		return "GOOD"
	case reliability >= 30:
		return "FAIR"
	case reliability >= 15:
		return "POOR"
	default:
		return "CLOSED"
	}
}
