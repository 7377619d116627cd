package models

import "strings"

// Position tags recognized for recruits. Anything unrecognized is treated
// as an infielder for stat-path selection.
const (
	PositionInfield  = "IF"
	PositionOutfield = "OF"
	PositionCatcher  = "C"
)

// PlayerStats holds a recruit's measurable tools. Every measurement is
// optional; a nil field means the measurement was never taken, which is a
// valid state rather than an error.
type PlayerStats struct {
	// Hitting
	ExitVelo *float64 `json:"exit_velo,omitempty"`

	// Speed (seconds, lower is better)
	SixtyTime *float64 `json:"sixty_time,omitempty"`

	// Position-specific defense
	InfieldVelo  *float64 `json:"inf_velo,omitempty"`
	OutfieldVelo *float64 `json:"of_velo,omitempty"`
	CatcherVelo  *float64 `json:"c_velo,omitempty"`
	PopTime      *float64 `json:"pop_time,omitempty"`

	// Physical profile
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`

	// Primary position tag (IF, SS, OF, CF, C, ...)
	Position string `json:"position"`
}

// IsCatcher reports whether the player's primary position is catcher.
func (p PlayerStats) IsCatcher() bool {
	switch strings.ToUpper(p.Position) {
	case "C", "CATCHER":
		return true
	}
	return false
}

// IsOutfielder reports whether the player's primary position is an
// outfield spot.
func (p PlayerStats) IsOutfielder() bool {
	switch strings.ToUpper(p.Position) {
	case "OF", "LF", "CF", "RF", "OUTFIELD", "OUTFIELDER":
		return true
	}
	return false
}

// PositionVelo returns the throw-velocity measurement matching the
// player's primary position. Infield is the default for unknown tags.
func (p PlayerStats) PositionVelo() *float64 {
	switch {
	case p.IsCatcher():
		return p.CatcherVelo
	case p.IsOutfielder():
		return p.OutfieldVelo
	default:
		return p.InfieldVelo
	}
}
