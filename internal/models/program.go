package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier identifies a competitive bracket used for benchmark lookup and
// program level mapping.
type Tier string

// Known competitive tiers, strongest first. TierMidD1 is the fallback for
// anything unrecognized.
const (
	TierPower4 Tier = "P4"
	TierMidD1  Tier = "Non-P4 D1"
	TierD2     Tier = "D2"
	TierD3     Tier = "D3"
	TierNAIA   Tier = "NAIA"
	TierJUCO   Tier = "JUCO"
)

// Program trend labels. Matching is case-insensitive; anything else is
// treated as stable.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// ProgramContext is the target program's competitive profile as the
// engine consumes it. Ratings follow the Massey convention: lower numeric
// value means stronger unit.
type ProgramContext struct {
	Name       string  `json:"name"`
	Tier       Tier    `json:"tier"`
	Percentile float64 `json:"percentile" validate:"gte=0,lte=100"`

	OffensiveRating *float64 `json:"offensive_rating,omitempty"`
	DefensiveRating *float64 `json:"defensive_rating,omitempty"`

	Trend       string   `json:"trend"`
	TrendChange *float64 `json:"trend_change,omitempty"`
	TrendYears  string   `json:"trend_years,omitempty"`
}

// Program is the persisted program record backing ProgramContext.
type Program struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name" validate:"required"`
	// Division 1-3 for NCAA; 0 for NAIA and junior colleges.
	Division int `db:"division" json:"division" validate:"min=0,max=3"`
	Conference string    `db:"conference" json:"conference"`
	IsPower4   bool      `db:"is_power4" json:"is_power4"`
	Percentile float64   `db:"percentile" json:"percentile" validate:"gte=0,lte=100"`

	OffensiveRating *float64 `db:"offensive_rating" json:"offensive_rating,omitempty"`
	DefensiveRating *float64 `db:"defensive_rating" json:"defensive_rating,omitempty"`

	Trend       string   `db:"trend" json:"trend"`
	TrendChange *float64 `db:"trend_change" json:"trend_change,omitempty"`
	TrendYears  string   `db:"trend_years" json:"trend_years,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TierGroup maps the program's division and conference status onto the
// tier used for benchmark lookup.
func (p *Program) TierGroup() Tier {
	switch p.Division {
	case 1:
		if p.IsPower4 {
			return TierPower4
		}
		return TierMidD1
	case 2:
		return TierD2
	case 3:
		return TierD3
	default:
		if p.Conference == "JUCO" {
			return TierJUCO
		}
		return TierNAIA
	}
}

// Context converts the persisted record into the engine's input shape.
func (p *Program) Context() ProgramContext {
	return ProgramContext{
		Name:            p.Name,
		Tier:            p.TierGroup(),
		Percentile:      p.Percentile,
		OffensiveRating: p.OffensiveRating,
		DefensiveRating: p.DefensiveRating,
		Trend:           p.Trend,
		TrendChange:     p.TrendChange,
		TrendYears:      p.TrendYears,
	}
}
