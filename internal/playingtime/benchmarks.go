// Package playingtime implements the playing-time opportunity engine: it
// normalizes a recruit's tools against tier benchmarks, ranks and weights
// them, reconciles the division classifier's view with the target
// program's level, applies team-need and trajectory adjustments, and
// produces a z-score, percentile, bucket and narrative.
//
// The engine is a pure function of its inputs. It performs no I/O, keeps
// no mutable state, and is safe for concurrent use.
package playingtime

import "github.com/yourusername/rosterfit/internal/models"

// Stat names a single measurable tool for benchmark lookup.
type Stat string

// Stats tracked against tier benchmarks.
const (
	StatExitVelo     Stat = "exit_velo"
	StatSixtyTime    Stat = "sixty_time"
	StatInfieldVelo  Stat = "inf_velo"
	StatOutfieldVelo Stat = "of_velo"
	StatCatcherVelo  Stat = "c_velo"
	StatPopTime      Stat = "pop_time"
	StatHeight       Stat = "height"
	StatWeight       Stat = "weight"

	// StatCatcherDefense is the synthetic blend of c_velo and pop_time;
	// it has no benchmark row of its own.
	StatCatcherDefense Stat = "c_defense"
)

// invertedStats are measured in time, so lower raw values are better and
// their z-scores are negated.
var invertedStats = map[Stat]bool{
	StatSixtyTime: true,
	StatPopTime:   true,
}

// BenchmarkEntry holds the reference distribution for one stat in one
// tier. Std must be positive; the loader enforces this, and the
// normalizer additionally guards against zero at use.
type BenchmarkEntry struct {
	Mean float64 `mapstructure:"mean" json:"mean" validate:"required"`
	Std  float64 `mapstructure:"std" json:"std" validate:"required,gt=0"`
}

// BenchmarkTable maps (tier, stat) to a reference distribution. The
// table is read-only for the life of the engine.
type BenchmarkTable map[models.Tier]map[Stat]BenchmarkEntry

// forTier returns the benchmark set for a tier, falling back to the
// mid-D1 table when the tier is unknown.
func (t BenchmarkTable) forTier(tier models.Tier) map[Stat]BenchmarkEntry {
	if b, ok := t[tier]; ok {
		return b
	}
	return t[models.TierMidD1]
}

// DefaultBenchmarks returns the built-in tier benchmark table. Hosts
// normally supply their own via configuration; these values mirror the
// shipped config.
func DefaultBenchmarks() BenchmarkTable {
	return BenchmarkTable{
		models.TierPower4: {
			StatExitVelo:     {Mean: 96.0, Std: 4.0},
			StatSixtyTime:    {Mean: 6.75, Std: 0.18},
			StatInfieldVelo:  {Mean: 87.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 90.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 83.0, Std: 3.0},
			StatPopTime:      {Mean: 1.95, Std: 0.07},
			StatHeight:       {Mean: 73.0, Std: 2.5},
			StatWeight:       {Mean: 195.0, Std: 18.0},
		},
		models.TierMidD1: {
			StatExitVelo:     {Mean: 92.0, Std: 4.5},
			StatSixtyTime:    {Mean: 7.0, Std: 0.20},
			StatInfieldVelo:  {Mean: 83.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 86.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 80.0, Std: 3.0},
			StatPopTime:      {Mean: 2.02, Std: 0.08},
			StatHeight:       {Mean: 72.0, Std: 2.5},
			StatWeight:       {Mean: 185.0, Std: 17.0},
		},
		models.TierD2: {
			StatExitVelo:     {Mean: 88.0, Std: 5.0},
			StatSixtyTime:    {Mean: 7.15, Std: 0.22},
			StatInfieldVelo:  {Mean: 80.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 83.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 77.0, Std: 3.0},
			StatPopTime:      {Mean: 2.08, Std: 0.09},
			StatHeight:       {Mean: 71.5, Std: 2.5},
			StatWeight:       {Mean: 180.0, Std: 16.0},
		},
		models.TierD3: {
			StatExitVelo:     {Mean: 84.0, Std: 5.5},
			StatSixtyTime:    {Mean: 7.30, Std: 0.25},
			StatInfieldVelo:  {Mean: 77.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 80.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 74.0, Std: 3.0},
			StatPopTime:      {Mean: 2.15, Std: 0.10},
			StatHeight:       {Mean: 71.0, Std: 2.5},
			StatWeight:       {Mean: 175.0, Std: 15.0},
		},
		models.TierNAIA: {
			StatExitVelo:     {Mean: 82.0, Std: 6.0},
			StatSixtyTime:    {Mean: 7.40, Std: 0.28},
			StatInfieldVelo:  {Mean: 75.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 78.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 72.0, Std: 3.0},
			StatPopTime:      {Mean: 2.20, Std: 0.11},
			StatHeight:       {Mean: 70.5, Std: 2.5},
			StatWeight:       {Mean: 172.0, Std: 15.0},
		},
		models.TierJUCO: {
			StatExitVelo:     {Mean: 82.0, Std: 6.0},
			StatSixtyTime:    {Mean: 7.40, Std: 0.28},
			StatInfieldVelo:  {Mean: 75.0, Std: 3.5},
			StatOutfieldVelo: {Mean: 78.0, Std: 3.5},
			StatCatcherVelo:  {Mean: 72.0, Std: 3.0},
			StatPopTime:      {Mean: 2.20, Std: 0.11},
			StatHeight:       {Mean: 70.5, Std: 2.5},
			StatWeight:       {Mean: 172.0, Std: 15.0},
		},
	}
}
