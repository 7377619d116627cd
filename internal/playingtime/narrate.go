package playingtime

import (
	"fmt"
	"strings"
)

// narrate assembles the prose summary from already-computed values. It
// does no arithmetic beyond formatting and cannot fail on any valid
// result.
func narrate(r *Result) string {
	parts := make([]string, 0, 5)

	parts = append(parts, fmt.Sprintf("Your stats put you in the top %.0f%% for %s.", 100-r.Percentile, r.Tier))

	best := r.Breakdown.Stats.Best
	tool := statDisplayName(best.Stat)
	switch {
	case best.Z > 1.5:
		parts = append(parts, fmt.Sprintf("Your %s is a standout tool (top 7%%).", tool))
	case best.Z > 1.0:
		parts = append(parts, fmt.Sprintf("Your %s is above average (top 16%%).", tool))
	case best.Z > 0.5:
		parts = append(parts, fmt.Sprintf("Your %s is slightly above average.", tool))
	}

	fit := r.Breakdown.TeamFit
	if fit.Aligned && fit.Bonus > 0 {
		need := "defensive help"
		if fit.Need == NeedOffense {
			need = "offensive help"
		}
		parts = append(parts, fmt.Sprintf("This team needs %s, and that's your strength.", need))
	}

	switch r.Breakdown.Trend.Trend {
	case "declining":
		parts = append(parts, "The program is in a rebuilding phase, creating more roster opportunity.")
	case "improving":
		parts = append(parts, "The program is on the rise, meaning more competition for spots.")
	}

	parts = append(parts, fmt.Sprintf("Assessment: %s.", r.Bucket))

	return strings.Join(parts, " ")
}

func statDisplayName(s Stat) string {
	switch s {
	case StatExitVelo:
		return "exit velocity"
	case StatSixtyTime:
		return "sixty time"
	case StatInfieldVelo:
		return "infield velocity"
	case StatOutfieldVelo:
		return "outfield velocity"
	case StatCatcherVelo:
		return "catcher arm"
	case StatPopTime:
		return "pop time"
	case StatCatcherDefense:
		return "catcher defense"
	default:
		return strings.ReplaceAll(string(s), "_", " ")
	}
}
