package playingtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/rosterfit/internal/models"
)

func TestDetermineNeed(t *testing.T) {
	tests := []struct {
		name string
		off  *float64
		def  *float64
		want Need
	}{
		{"offense weaker", fptr(110), fptr(100), NeedOffense},
		{"defense weaker", fptr(100), fptr(110), NeedDefense},
		{"inside threshold", fptr(101), fptr(100), NeedBalanced},
		{"exactly at threshold", fptr(102), fptr(100), NeedBalanced},
		{"missing offense", nil, fptr(100), NeedBalanced},
		{"missing both", nil, nil, NeedBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := models.ProgramContext{OffensiveRating: tt.off, DefensiveRating: tt.def}
			assert.Equal(t, tt.want, determineNeed(program))
		})
	}
}

func TestAlignmentBonusBelowMinimumZ(t *testing.T) {
	program := models.ProgramContext{OffensiveRating: fptr(110), DefensiveRating: fptr(100)}

	fit := teamFit(program, StrengthOffensive, 0.49)
	assert.True(t, fit.Aligned)
	assert.Zero(t, fit.Bonus)
}

func TestAlignmentBonusScaling(t *testing.T) {
	program := models.ProgramContext{OffensiveRating: fptr(110), DefensiveRating: fptr(100)}

	tests := []struct {
		z    float64
		want float64
	}{
		{0.5, 0.05},
		{1.0, 0.10},
		{1.5, 0.15},
		{2.0, 0.20},
		{3.5, 0.20}, // capped
	}

	for _, tt := range tests {
		fit := teamFit(program, StrengthOffensive, tt.z)
		assert.InDelta(t, tt.want, fit.Bonus, 1e-9, "z=%.2f", tt.z)
	}
}

func TestAlignmentBonusMismatchedStrength(t *testing.T) {
	program := models.ProgramContext{OffensiveRating: fptr(110), DefensiveRating: fptr(100)}

	fit := teamFit(program, StrengthDefensive, 2.5)
	assert.False(t, fit.Aligned)
	assert.Zero(t, fit.Bonus)
}

func TestSpeedStrengthAlignsWithEitherNeed(t *testing.T) {
	offenseNeed := models.ProgramContext{OffensiveRating: fptr(110), DefensiveRating: fptr(100)}
	defenseNeed := models.ProgramContext{OffensiveRating: fptr(100), DefensiveRating: fptr(110)}
	balanced := models.ProgramContext{}

	assert.True(t, teamFit(offenseNeed, StrengthSpeed, 1.0).Aligned)
	assert.True(t, teamFit(defenseNeed, StrengthSpeed, 1.0).Aligned)
	assert.False(t, teamFit(balanced, StrengthSpeed, 1.0).Aligned)
}

func TestTrendBonusCaseInsensitive(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"declining", 0.12},
		{"Declining", 0.12},
		{"DECLINING", 0.12},
		{"improving", -0.08},
		{"IMPROVING", -0.08},
		{"stable", 0},
		{"", 0},
		{"rebuilding", 0},
	}

	for _, tt := range tests {
		trend := programTrend(models.ProgramContext{Trend: tt.label})
		assert.InDelta(t, tt.want, trend.Bonus, 1e-9, "label %q", tt.label)
	}
}
