package playingtime

import "github.com/yourusername/rosterfit/internal/models"

// PhysicalBreakdown is the height/weight component, 15% of the
// composite.
type PhysicalBreakdown struct {
	HeightZ        float64 `json:"height_z"`
	WeightZ        float64 `json:"weight_z"`
	AverageZ       float64 `json:"average_z"`
	ComponentTotal float64 `json:"component_total"`

	HeightInches   float64 `json:"height_inches"`
	WeightPounds   float64 `json:"weight_lbs"`
	TierHeightMean float64 `json:"tier_height_mean"`
	TierWeightMean float64 `json:"tier_weight_mean"`
}

// Breakdown collects every component's intermediate values. The host may
// serialize it as-is.
type Breakdown struct {
	Stats    StatsBreakdown    `json:"stats"`
	Physical PhysicalBreakdown `json:"physical"`
	ML       MLBreakdown       `json:"ml"`
	TeamFit  TeamFitBreakdown  `json:"team_fit"`
	Trend    TrendBreakdown    `json:"trend"`
}

// Result is the engine's sole output: the composite z-score, its
// percentile under the standard normal distribution, the opportunity
// bucket, the full breakdown and a prose summary. Constructed once per
// evaluation and never mutated.
type Result struct {
	FinalZ            float64 `json:"final_z_score"`
	Percentile        float64 `json:"percentile"`
	Bucket            string  `json:"bucket"`
	BucketDescription string  `json:"bucket_description"`

	Breakdown Breakdown `json:"breakdown"`

	Program  string      `json:"program"`
	Tier     models.Tier `json:"tier"`
	Position string      `json:"position"`

	Narrative string `json:"narrative"`
}

// Summary is the condensed result shape for API responses.
type Summary struct {
	FinalZ     float64 `json:"final_z_score"`
	Percentile float64 `json:"percentile"`
	Bucket     string  `json:"bucket"`
	Narrative  string  `json:"narrative"`
}

// Summary returns the condensed form of the result.
func (r *Result) Summary() Summary {
	return Summary{
		FinalZ:     r.FinalZ,
		Percentile: r.Percentile,
		Bucket:     r.Bucket,
		Narrative:  r.Narrative,
	}
}
