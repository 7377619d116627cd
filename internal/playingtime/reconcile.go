package playingtime

import (
	"strings"

	"github.com/yourusername/rosterfit/internal/models"
)

// MLBreakdown is the classifier-reconciliation component, 10% of the
// composite. It maps both the player and the program onto a shared 0-100
// level scale and contributes a bounded term from the gap.
type MLBreakdown struct {
	PlayerLevel    float64 `json:"player_level"`
	ProgramLevel   float64 `json:"program_level"`
	Gap            float64 `json:"gap"`
	ComponentTotal float64 `json:"component_total"`

	D1Probability float64  `json:"d1_probability"`
	P4Probability *float64 `json:"p4_probability,omitempty"`
	Elite         bool     `json:"is_elite"`
}

// reconcile compares the classifier's level estimate for the player
// against the program's level. The divisor keeps even a full-scale gap
// at roughly ±0.20, so this stays a sanity check rather than a driver.
func reconcile(signal models.ClassifierSignal, program models.ProgramContext) MLBreakdown {
	player := playerLevel(signal)
	prog := programLevel(program)
	gap := player - prog

	return MLBreakdown{
		PlayerLevel:    player,
		ProgramLevel:   prog,
		Gap:            gap,
		ComponentTotal: gap / levelGapDivisor * mlWeight,
		D1Probability:  signal.D1Probability,
		P4Probability:  signal.P4Probability,
		Elite:          signal.Elite,
	}
}

// playerLevel maps classifier output onto the 0-100 scale, monotone in
// probability within each band, then applies the confidence multiplier.
func playerLevel(signal models.ClassifierSignal) float64 {
	p4 := signal.P4()

	var level float64
	switch {
	case signal.Elite:
		level = levelEliteBase + p4*levelEliteRange
	case p4 > 0:
		level = levelP4Base + p4*levelP4Range
	case signal.D1Probability > levelHighD1Cut:
		level = levelHighD1Base + signal.D1Probability*levelHighD1Range
	default:
		level = signal.D1Probability * levelSubD1Scale
	}

	level *= confidenceMultiplier(signal.Confidence)
	return clamp(level, 0, 100)
}

func confidenceMultiplier(label string) float64 {
	switch strings.ToLower(label) {
	case "high":
		return confidenceHighMult
	case "medium":
		return confidenceMediumMult
	case "low":
		return confidenceLowMult
	default:
		return 1.0
	}
}

// programLevel maps a program's tier and within-tier percentile onto the
// 0-100 scale via per-tier bands.
func programLevel(program models.ProgramContext) float64 {
	band, ok := tierBands[program.Tier]
	if !ok {
		band = tierBands[models.TierMidD1]
	}
	pct := clamp(program.Percentile, 0, 100)
	return band.floor + pct/100*band.width
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
