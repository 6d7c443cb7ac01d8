package models

// Spot represents one normalized DX cluster spot
type Spot struct {
	FrequencyMHz    string `json:"frequencyMHz"`    // MHz, 3-decimal string
	DXCallsign      string `json:"dxCallsign"`      // Station being spotted
	Comment         string `json:"comment"`         // Free text, may embed band label
	TimeUTC         string `json:"timeUTC"`         // "HH:MMz" or empty if unparseable
	SpotterCallsign string `json:"spotterCallsign"` // Reporting station, may be empty
}

// SourceOutcome classifies the result of one spot source attempt
type SourceOutcome string

const (
	OutcomeSuccess SourceOutcome = "success"
	OutcomeEmpty   SourceOutcome = "empty"
	OutcomeFailure SourceOutcome = "failure"
)

// SourceResult is the tagged outcome of a single source attempt.
// Only a Success with a non-empty spot list terminates the fallback chain;
// Empty and Failure both mean "continue to the next source".
type SourceResult struct {
	Source  string        `json:"source"`
	Outcome SourceOutcome `json:"outcome"`
	Spots   []Spot        `json:"spots,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// Terminal reports whether this result ends the fallback chain
func (r SourceResult) Terminal() bool {
	return r.Outcome == OutcomeSuccess && len(r.Spots) > 0
}
