package models

import "time"

// ContestEvent is one upcoming event from the contest calendar feed
type ContestEvent struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary,omitempty"`
}
