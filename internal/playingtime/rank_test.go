package playingtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/rosterfit/internal/models"
)

var testBench = map[Stat]BenchmarkEntry{
	StatExitVelo:     {Mean: 90, Std: 5},
	StatSixtyTime:    {Mean: 7.0, Std: 0.2},
	StatInfieldVelo:  {Mean: 82, Std: 4},
	StatOutfieldVelo: {Mean: 85, Std: 4},
	StatCatcherVelo:  {Mean: 78, Std: 3},
	StatPopTime:      {Mean: 2.0, Std: 0.1},
	StatHeight:       {Mean: 72, Std: 2.5},
	StatWeight:       {Mean: 185, Std: 15},
}

func TestRankAndWeightOrdersByZ(t *testing.T) {
	player := models.PlayerStats{
		ExitVelo:    fptr(100), // z = 2.0
		SixtyTime:   fptr(6.9), // z = 0.5
		InfieldVelo: fptr(86),  // z = 1.0
		Position:    "SS",
	}

	breakdown := rankAndWeight(trackStats(player, testBench))

	assert.Equal(t, StatExitVelo, breakdown.Best.Stat)
	assert.Equal(t, StatInfieldVelo, breakdown.Mid.Stat)
	assert.Equal(t, StatSixtyTime, breakdown.Worst.Stat)

	// 0.30*2.0 + 0.25*1.0 + 0.20*0.5
	assert.InDelta(t, 0.95, breakdown.ComponentTotal, 1e-9)
	assert.Equal(t, StrengthOffensive, breakdown.Strength)
}

func TestRankTieBreakUsesFixedStatPriority(t *testing.T) {
	// Exit velo and sixty land on the same z-score; exit velo must win
	// the tie regardless of input order.
	player := models.PlayerStats{
		ExitVelo:    fptr(95),  // z = 1.0
		SixtyTime:   fptr(6.8), // z = 1.0 after inversion
		InfieldVelo: fptr(82),  // z = 0
		Position:    "IF",
	}

	breakdown := rankAndWeight(trackStats(player, testBench))
	assert.Equal(t, StatExitVelo, breakdown.Best.Stat)
	assert.Equal(t, StatSixtyTime, breakdown.Mid.Stat)
}

func TestRankAllAbsentTieBreaksToOffense(t *testing.T) {
	breakdown := rankAndWeight(trackStats(models.PlayerStats{Position: "IF"}, testBench))

	assert.Equal(t, StatExitVelo, breakdown.Best.Stat)
	assert.Zero(t, breakdown.ComponentTotal)
	assert.Equal(t, StrengthOffensive, breakdown.Strength)
}

func TestCatcherDefenseBlend(t *testing.T) {
	player := models.PlayerStats{
		CatcherVelo: fptr(84),  // z = 2.0
		PopTime:     fptr(1.9), // z = 1.0 after inversion
		Position:    "C",
	}

	zs := trackStats(player, testBench)
	require.Len(t, zs, 3)

	defense := zs[2]
	assert.Equal(t, StatCatcherDefense, defense.Stat)
	// 0.6*2.0 + 0.4*1.0
	assert.InDelta(t, 1.6, defense.Z, 1e-9)
}

func TestCatcherBlendRewardsOneStandoutTool(t *testing.T) {
	// Strong arm, weak pop time: the blend favors the standout but
	// still charges for the deficiency.
	player := models.PlayerStats{
		CatcherVelo: fptr(84),  // z = 2.0
		PopTime:     fptr(2.1), // z = -1.0 after inversion
		Position:    "C",
	}

	zs := trackStats(player, testBench)
	assert.InDelta(t, 0.6*2.0+0.4*(-1.0), zs[2].Z, 1e-9)
}

func TestOutfielderUsesOutfieldVelo(t *testing.T) {
	player := models.PlayerStats{
		OutfieldVelo: fptr(89), // z = 1.0
		InfieldVelo:  fptr(94), // should be ignored
		Position:     "CF",
	}

	zs := trackStats(player, testBench)
	assert.Equal(t, StatOutfieldVelo, zs[2].Stat)
	assert.InDelta(t, 1.0, zs[2].Z, 1e-9)
}

func TestUnknownPositionFallsBackToInfield(t *testing.T) {
	player := models.PlayerStats{
		InfieldVelo: fptr(86), // z = 1.0
		Position:    "UTIL",
	}

	zs := trackStats(player, testBench)
	assert.Equal(t, StatInfieldVelo, zs[2].Stat)
	assert.InDelta(t, 1.0, zs[2].Z, 1e-9)
}

func TestDefensiveBestReportsDefensiveStrength(t *testing.T) {
	player := models.PlayerStats{
		ExitVelo:    fptr(90), // z = 0
		InfieldVelo: fptr(90), // z = 2.0
		Position:    "SS",
	}

	breakdown := rankAndWeight(trackStats(player, testBench))
	assert.Equal(t, StrengthDefensive, breakdown.Strength)
}
