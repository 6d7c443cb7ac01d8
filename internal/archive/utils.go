package archive

import (
	"fmt"
	"strings"
	"time"
)

// SnapshotFileName is the canonical file stored in every snapshot folder
const SnapshotFileName = "forecast.json"

// SnapshotFolderPath generates a consistent folder path for snapshots.
// Format: YYYY/MM/DD/ForecastSnapshot-YYYY-MM-DD-HH-MM-SS
func SnapshotFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/ForecastSnapshot-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
