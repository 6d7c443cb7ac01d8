package propagation

import (
	"math"
	"sort"
	"time"

	"spotcast/internal/models"
)

// BuildReport assembles the full forecast for one DE/DX path: current-hour
// band summaries plus a 24-hour reliability table per band. The snapshot
// and the clock are explicit inputs, so identical arguments produce an
// identical report.
func BuildReport(wx models.SpaceWeatherSnapshot, de, dx models.Coordinate, now time.Time) models.PropagationReport {
	path := NewPath(de, dx)
	currentHour := now.UTC().Hour()

	currentBands := make([]models.BandSummary, 0, len(Bands))
	hourly := make(map[string][]models.HourlyPrediction, len(Bands))

	for _, band := range Bands {
		reliability := Reliability(band.FreqMHz, currentHour, path, wx)
		currentBands = append(currentBands, models.BandSummary{
			Band:        band.Label,
			FreqMHz:     band.FreqMHz,
			Reliability: reliability,
			SNR:         SNRLabel(reliability),
			Status:      StatusLabel(reliability),
		})

		predictions := make([]models.HourlyPrediction, 24)
		for hour := 0; hour < 24; hour++ {
			r := Reliability(band.FreqMHz, hour, path, wx)
			predictions[hour] = models.HourlyPrediction{
				Hour:        hour,
				Reliability: r,
				SNR:         SNRLabel(r),
			}
		}
		hourly[band.Label] = predictions
	}

	// Best band first; ties keep the frequency-ascending table order
	sort.SliceStable(currentBands, func(i, j int) bool {
		return currentBands[i].Reliability > currentBands[j].Reliability
	})

	return models.PropagationReport{
		SolarData:         wx,
		DistanceKm:        int(math.Round(path.DistanceKm)),
		CurrentHourUTC:    currentHour,
		CurrentBands:      currentBands,
		HourlyPredictions: hourly,
	}
}
