package config

import (
	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
)

// ApplyOverrides layers configured benchmark rows on top of a base table.
// The base table is not mutated.
func (b BenchmarksConfig) ApplyOverrides(base playingtime.BenchmarkTable) playingtime.BenchmarkTable {
	merged := make(playingtime.BenchmarkTable, len(base))
	for tier, stats := range base {
		rows := make(map[playingtime.Stat]playingtime.BenchmarkEntry, len(stats))
		for stat, entry := range stats {
			rows[stat] = entry
		}
		merged[tier] = rows
	}

	for tier, stats := range b.Overrides {
		rows, ok := merged[models.Tier(tier)]
		if !ok {
			rows = make(map[playingtime.Stat]playingtime.BenchmarkEntry, len(stats))
			merged[models.Tier(tier)] = rows
		}
		for stat, entry := range stats {
			rows[playingtime.Stat(stat)] = entry
		}
	}

	return merged
}
