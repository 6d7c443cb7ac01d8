package server

import (
	"net/url"
	"strconv"

	"spotcast/internal/models"
)

// pathCoordinates extracts the DE and DX endpoints from query parameters.
// Each pair falls back to its default independently when missing,
// unparsable or outside the valid latitude/longitude ranges.
func (s *Server) pathCoordinates(query url.Values) (de, dx models.Coordinate) {
	de = s.coordinateOrDefault(query, "de", models.DefaultDECoordinate())
	dx = s.coordinateOrDefault(query, "dx", models.DefaultDXCoordinate())
	return de, dx
}

// coordinateOrDefault parses one <prefix>_lat/<prefix>_lon pair
func (s *Server) coordinateOrDefault(query url.Values, prefix string, fallback models.Coordinate) models.Coordinate {
	latStr := query.Get(prefix + "_lat")
	lonStr := query.Get(prefix + "_lon")
	if latStr == "" || lonStr == "" {
		return fallback
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		return fallback
	}

	coord := models.Coordinate{Lat: lat, Lon: lon}
	if err := s.validate.Struct(coord); err != nil {
		return fallback
	}
	return coord
}
