package archive

import (
	"testing"
	"time"
)

func TestSnapshotFolderPath(t *testing.T) {
	timestamp := time.Date(2026, 1, 30, 6, 10, 42, 0, time.UTC)

	got := SnapshotFolderPath(timestamp)
	want := "2026/01/30/ForecastSnapshot-2026-01-30-06-10-42"
	if got != want {
		t.Errorf("SnapshotFolderPath() = %s, want %s", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"forecast.json", "application/json"},
		{"notes.txt", "text/plain"},
		{"README.md", "text/markdown"},
		{"export.csv", "text/csv"},
		{"blob.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.want {
			t.Errorf("GetContentType(%s) = %s, want %s", tt.filename, got, tt.want)
		}
	}
}
