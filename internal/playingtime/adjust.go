package playingtime

import (
	"strings"

	"github.com/yourusername/rosterfit/internal/models"
)

// Need identifies which unit a program most needs help with.
type Need string

// Need values.
const (
	NeedOffense  Need = "offense"
	NeedDefense  Need = "defense"
	NeedBalanced Need = "balanced"
)

// TeamFitBreakdown records the team-need alignment bonus.
type TeamFitBreakdown struct {
	Need            Need     `json:"team_need"`
	OffensiveRating float64  `json:"team_offensive_rating"`
	DefensiveRating float64  `json:"team_defensive_rating"`
	Strength        Strength `json:"player_strength"`
	BestZ           float64  `json:"best_stat_z"`
	Aligned         bool     `json:"alignment"`
	Bonus           float64  `json:"bonus"`
}

// TrendBreakdown records the program-trajectory adjustment.
type TrendBreakdown struct {
	Trend        string   `json:"trend"`
	RatingChange *float64 `json:"rating_change,omitempty"`
	YearsSpan    string   `json:"years_span,omitempty"`
	Bonus        float64  `json:"bonus"`
}

// teamFit grants a bonus when the player's primary strength matches the
// unit the program is weakest in, scaled by how strong that tool is.
func teamFit(program models.ProgramContext, strength Strength, bestZ float64) TeamFitBreakdown {
	need := determineNeed(program)
	aligned := strengthMatchesNeed(need, strength)

	bonus := 0.0
	if aligned && bestZ >= alignmentMinZ {
		bonus = alignmentMinBonus + (bestZ-alignmentMinZ)*alignmentScale
		if bonus > alignmentMaxBonus {
			bonus = alignmentMaxBonus
		}
	}

	fit := TeamFitBreakdown{
		Need:     need,
		Strength: strength,
		BestZ:    bestZ,
		Aligned:  aligned,
		Bonus:    bonus,
	}
	if program.OffensiveRating != nil {
		fit.OffensiveRating = *program.OffensiveRating
	}
	if program.DefensiveRating != nil {
		fit.DefensiveRating = *program.DefensiveRating
	}
	return fit
}

// determineNeed compares the program's unit ratings. A higher Massey
// rating is the weaker unit; gaps inside the threshold read as balanced,
// as does any missing rating.
func determineNeed(program models.ProgramContext) Need {
	off := program.OffensiveRating
	def := program.DefensiveRating
	if off == nil || def == nil {
		return NeedBalanced
	}

	switch {
	case *off > *def+needRatingThreshold:
		return NeedOffense
	case *def > *off+needRatingThreshold:
		return NeedDefense
	default:
		return NeedBalanced
	}
}

// strengthMatchesNeed checks alignment. Speed-first players help either
// unit, so they align with any declared need.
func strengthMatchesNeed(need Need, strength Strength) bool {
	if need == NeedBalanced {
		return false
	}
	switch strength {
	case StrengthOffensive:
		return need == NeedOffense
	case StrengthDefensive:
		return need == NeedDefense
	case StrengthSpeed:
		return true
	}
	return false
}

// programTrend resolves the trajectory adjustment from the trend label,
// case-insensitively. Unknown or empty labels adjust nothing.
func programTrend(program models.ProgramContext) TrendBreakdown {
	trend := strings.ToLower(strings.TrimSpace(program.Trend))

	bonus := 0.0
	switch trend {
	case models.TrendDeclining:
		bonus = trendBonusDeclining
	case models.TrendImproving:
		bonus = trendBonusImproving
	default:
		trend = models.TrendStable
	}

	return TrendBreakdown{
		Trend:        trend,
		RatingChange: program.TrendChange,
		YearsSpan:    program.TrendYears,
		Bonus:        bonus,
	}
}
