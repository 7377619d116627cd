package playingtime

import (
	"fmt"
	"math"

	"github.com/yourusername/rosterfit/internal/models"
)

// Engine evaluates playing-time opportunity against an immutable
// benchmark table. A single Engine is safe for concurrent use.
type Engine struct {
	benchmarks BenchmarkTable
}

// New creates an engine. The table must at least carry the fallback
// tier; a missing table is a wiring defect, not a per-call condition.
func New(benchmarks BenchmarkTable) (*Engine, error) {
	if len(benchmarks) == 0 {
		return nil, fmt.Errorf("benchmark table is required")
	}
	if _, ok := benchmarks[models.TierMidD1]; !ok {
		return nil, fmt.Errorf("benchmark table is missing the fallback tier %q", models.TierMidD1)
	}
	return &Engine{benchmarks: benchmarks}, nil
}

// HasTier reports whether the table carries dedicated benchmarks for a
// tier. Evaluate never fails on an unknown tier; hosts use this to
// surface that the fallback table was used.
func (e *Engine) HasTier(tier models.Tier) bool {
	_, ok := e.benchmarks[tier]
	return ok
}

// Evaluate computes the playing-time result for one player at one
// program. Every combination of present and absent inputs produces a
// complete, finite result.
func (e *Engine) Evaluate(player models.PlayerStats, signal models.ClassifierSignal, program models.ProgramContext) *Result {
	bench := e.benchmarks.forTier(program.Tier)

	stats := rankAndWeight(trackStats(player, bench))
	physical := physicalComponent(player, bench)
	ml := reconcile(signal, program)
	fit := teamFit(program, stats.Strength, stats.Best.Z)
	trend := programTrend(program)

	finalZ := stats.ComponentTotal +
		physical.ComponentTotal +
		ml.ComponentTotal +
		fit.Bonus +
		trend.Bonus

	bucket, description := assignBucket(finalZ)

	result := &Result{
		FinalZ:            finalZ,
		Percentile:        zToPercentile(finalZ),
		Bucket:            bucket,
		BucketDescription: description,
		Breakdown: Breakdown{
			Stats:    stats,
			Physical: physical,
			ML:       ml,
			TeamFit:  fit,
			Trend:    trend,
		},
		Program:  program.Name,
		Tier:     program.Tier,
		Position: player.Position,
	}
	result.Narrative = narrate(result)

	return result
}

// physicalComponent averages the height and weight z-scores and applies
// the physical weight.
func physicalComponent(player models.PlayerStats, bench map[Stat]BenchmarkEntry) PhysicalBreakdown {
	height := normalize(player.Height, StatHeight, bench)
	weight := normalize(player.Weight, StatWeight, bench)
	avg := (height.Z + weight.Z) / 2

	return PhysicalBreakdown{
		HeightZ:        height.Z,
		WeightZ:        weight.Z,
		AverageZ:       avg,
		ComponentTotal: avg * physicalWeight,
		HeightInches:   height.Raw,
		WeightPounds:   weight.Raw,
		TierHeightMean: height.TierMean,
		TierWeightMean: weight.TierMean,
	}
}

// zToPercentile converts a z-score to its percentile under the standard
// normal distribution: 100 * 0.5 * (1 + erf(z/sqrt(2))).
func zToPercentile(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2)) * 100
}

// assignBucket classifies the final z-score. Thresholds are inclusive
// lower bounds, so a boundary value lands in the higher bucket.
func assignBucket(z float64) (string, string) {
	for _, b := range buckets {
		if z >= b.minZ {
			return b.name, b.description
		}
	}
	return reachBucketName, reachBucketDescription
}
