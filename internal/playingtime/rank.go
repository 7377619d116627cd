package playingtime

import (
	"sort"

	"github.com/yourusername/rosterfit/internal/models"
)

// Strength categorizes a player's best demonstrated tool.
type Strength string

// Strength categories.
const (
	StrengthOffensive Strength = "offensive"
	StrengthSpeed     Strength = "speed"
	StrengthDefensive Strength = "defensive"
)

var statStrength = map[Stat]Strength{
	StatExitVelo:       StrengthOffensive,
	StatSixtyTime:      StrengthSpeed,
	StatInfieldVelo:    StrengthDefensive,
	StatOutfieldVelo:   StrengthDefensive,
	StatCatcherVelo:    StrengthDefensive,
	StatPopTime:        StrengthDefensive,
	StatCatcherDefense: StrengthDefensive,
}

// statPriority breaks z-score ties deterministically: offense first, then
// speed, then the defensive tool.
var statPriority = map[Stat]int{
	StatExitVelo:       0,
	StatSixtyTime:      1,
	StatInfieldVelo:    2,
	StatOutfieldVelo:   2,
	StatCatcherVelo:    2,
	StatPopTime:        2,
	StatCatcherDefense: 2,
}

var rankNames = [3]string{"best", "mid", "worst"}

// role selects which defensive stat path a position uses. Unknown
// position tags fall back to the infield path.
type role int

const (
	roleInfield role = iota
	roleOutfield
	roleCatcher
)

func roleFor(p models.PlayerStats) role {
	switch {
	case p.IsCatcher():
		return roleCatcher
	case p.IsOutfielder():
		return roleOutfield
	default:
		return roleInfield
	}
}

// trackStats produces the three normalized tool stats for the player's
// role: exit velocity, sixty time, and the role's defensive value. For
// catchers the two defensive metrics are pre-combined so a single value
// enters the ranking.
func trackStats(p models.PlayerStats, bench map[Stat]BenchmarkEntry) []StatZ {
	zs := make([]StatZ, 0, 3)
	zs = append(zs, normalize(p.ExitVelo, StatExitVelo, bench))
	zs = append(zs, normalize(p.SixtyTime, StatSixtyTime, bench))

	switch roleFor(p) {
	case roleCatcher:
		arm := normalize(p.CatcherVelo, StatCatcherVelo, bench)
		pop := normalize(p.PopTime, StatPopTime, bench)
		zs = append(zs, combineCatcherDefense(arm, pop))
	case roleOutfield:
		zs = append(zs, normalize(p.OutfieldVelo, StatOutfieldVelo, bench))
	default:
		zs = append(zs, normalize(p.InfieldVelo, StatInfieldVelo, bench))
	}

	return zs
}

// combineCatcherDefense blends arm strength and pop time 60/40 in favor
// of the higher z-score.
func combineCatcherDefense(arm, pop StatZ) StatZ {
	higher, lower := arm.Z, pop.Z
	if lower > higher {
		higher, lower = lower, higher
	}
	return StatZ{
		Stat:    StatCatcherDefense,
		Z:       catcherHigherWeight*higher + catcherLowerWeight*lower,
		TierStd: 1,
	}
}

// RankedStat is a tool stat after ranking, carrying its rank weight and
// contribution to the composite.
type RankedStat struct {
	Stat         Stat    `json:"stat"`
	Z            float64 `json:"z_score"`
	Weight       float64 `json:"weight"`
	Rank         string  `json:"rank"`
	Contribution float64 `json:"weighted_contribution"`
}

// StatsBreakdown is the ranked-and-weighted tool component, 75% of the
// composite.
type StatsBreakdown struct {
	Best           RankedStat `json:"best"`
	Mid            RankedStat `json:"mid"`
	Worst          RankedStat `json:"worst"`
	ComponentTotal float64    `json:"component_total"`
	Strength       Strength   `json:"player_strength"`
	ZScores        []StatZ    `json:"all_z_scores"`
}

// rankAndWeight orders the tool stats by descending z-score, breaking
// ties by fixed stat priority, and applies the rank weight vector.
func rankAndWeight(zs []StatZ) StatsBreakdown {
	sorted := make([]StatZ, len(zs))
	copy(sorted, zs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		return statPriority[sorted[i].Stat] < statPriority[sorted[j].Stat]
	})

	ranked := make([]RankedStat, len(sorted))
	total := 0.0
	for i, s := range sorted {
		weight := 0.0
		rank := ""
		if i < len(rankWeights) {
			weight = rankWeights[i]
			rank = rankNames[i]
		}
		ranked[i] = RankedStat{
			Stat:         s.Stat,
			Z:            s.Z,
			Weight:       weight,
			Rank:         rank,
			Contribution: s.Z * weight,
		}
		total += ranked[i].Contribution
	}

	strength, ok := statStrength[ranked[0].Stat]
	if !ok {
		strength = StrengthOffensive
	}

	return StatsBreakdown{
		Best:           ranked[0],
		Mid:            ranked[1],
		Worst:          ranked[2],
		ComponentTotal: total,
		Strength:       strength,
		ZScores:        zs,
	}
}
