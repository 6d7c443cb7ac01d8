package fetchers

import (
	"spotcast/internal/config"
	"spotcast/internal/models"
)

// SpotSource pairs an endpoint with the parser for its payload format
type SpotSource struct {
	Endpoint *Endpoint
	Parse    func(string) ([]models.Spot, error)
}

var jsonAccept = map[string]string{"Accept": "application/json"}

// BuildSpotSources assembles the fallback chain in priority order:
// the caret-delimited HamQTH feed first, then the DX Summit JSON API,
// then the compact DXHeat backup.
func BuildSpotSources(cfg *config.Config) []SpotSource {
	return []SpotSource{
		{Endpoint: NewEndpoint("hamqth", cfg.HamQTHSpotsURL, nil), Parse: ParsePipeSpots},
		{Endpoint: NewEndpoint("dxsummit", cfg.DXSummitSpotsURL, jsonAccept), Parse: ParseJSONSpots},
		{Endpoint: NewEndpoint("dxheat", cfg.DXHeatSpotsURL, jsonAccept), Parse: ParseCompactJSONSpots},
	}
}
