package playingtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/rosterfit/internal/models"
)

func TestPlayerLevelEliteBand(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.95,
		P4Probability: fptr(0.85),
		Elite:         true,
		Confidence:    models.ConfidenceHigh,
	}

	// 90 + 10*0.85 at full confidence
	assert.InDelta(t, 98.5, playerLevel(signal), 1e-9)
}

func TestPlayerLevelP4Band(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.9,
		P4Probability: fptr(0.6),
		Confidence:    models.ConfidenceHigh,
	}

	// 75 + 15*0.6
	assert.InDelta(t, 84.0, playerLevel(signal), 1e-9)
}

func TestPlayerLevelHighD1Band(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.8,
		Confidence:    models.ConfidenceHigh,
	}

	// 50 + 25*0.8
	assert.InDelta(t, 70.0, playerLevel(signal), 1e-9)
}

func TestPlayerLevelSubD1Band(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.3,
		Confidence:    models.ConfidenceHigh,
	}

	// 50*0.3
	assert.InDelta(t, 15.0, playerLevel(signal), 1e-9)
}

func TestPlayerLevelConfidenceMultipliers(t *testing.T) {
	base := models.ClassifierSignal{
		D1Probability: 0.8,
		Confidence:    models.ConfidenceHigh,
	}

	high := playerLevel(base)

	base.Confidence = models.ConfidenceMedium
	assert.InDelta(t, high*0.95, playerLevel(base), 1e-9)

	base.Confidence = "LOW"
	assert.InDelta(t, high*0.90, playerLevel(base), 1e-9)
}

func TestPlayerLevelClampedTo100(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 1.0,
		P4Probability: fptr(1.0),
		Elite:         true,
		Confidence:    models.ConfidenceHigh,
	}

	assert.LessOrEqual(t, playerLevel(signal), 100.0)
}

func TestPlayerLevelAbsentP4TreatedAsZero(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.6,
		Confidence:    models.ConfidenceHigh,
	}

	// Falls through to the high-D1 band, not the P4 band.
	assert.InDelta(t, 50+25*0.6, playerLevel(signal), 1e-9)
}

func TestProgramLevelBands(t *testing.T) {
	tests := []struct {
		tier       models.Tier
		percentile float64
		want       float64
	}{
		{models.TierPower4, 0, 70},
		{models.TierPower4, 100, 100},
		{models.TierMidD1, 50, 60},
		{models.TierD2, 50, 40},
		{models.TierD3, 0, 10},
		{models.TierNAIA, 100, 25},
	}

	for _, tt := range tests {
		got := programLevel(models.ProgramContext{Tier: tt.tier, Percentile: tt.percentile})
		assert.InDelta(t, tt.want, got, 1e-9, "tier %s pct %.0f", tt.tier, tt.percentile)
	}
}

func TestProgramLevelTopTierOutranksEntryTier(t *testing.T) {
	weakTop := programLevel(models.ProgramContext{Tier: models.TierPower4, Percentile: 5})
	strongEntry := programLevel(models.ProgramContext{Tier: models.TierD3, Percentile: 95})
	assert.Greater(t, weakTop, strongEntry)
}

func TestProgramLevelClampsPercentile(t *testing.T) {
	low := programLevel(models.ProgramContext{Tier: models.TierD2, Percentile: -20})
	high := programLevel(models.ProgramContext{Tier: models.TierD2, Percentile: 140})
	assert.InDelta(t, 25.0, low, 1e-9)
	assert.InDelta(t, 55.0, high, 1e-9)
}

func TestProgramLevelUnknownTierFallsBack(t *testing.T) {
	got := programLevel(models.ProgramContext{Tier: "club", Percentile: 50})
	want := programLevel(models.ProgramContext{Tier: models.TierMidD1, Percentile: 50})
	assert.Equal(t, want, got)
}

func TestReconcileContributionScale(t *testing.T) {
	signal := models.ClassifierSignal{
		D1Probability: 0.95,
		P4Probability: fptr(1.0),
		Elite:         true,
		Confidence:    models.ConfidenceHigh,
	}
	program := models.ProgramContext{Tier: models.TierNAIA, Percentile: 0}

	ml := reconcile(signal, program)
	// Full-scale gap of 100 levels caps the contribution at 0.20.
	assert.InDelta(t, 0.20, ml.ComponentTotal, 1e-9)
}
