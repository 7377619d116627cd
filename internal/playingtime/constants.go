package playingtime

import "github.com/yourusername/rosterfit/internal/models"

// Component weights. The three tool stats are ranked per player before
// weighting, so a player's strongest tool always carries the most weight
// regardless of which stat it is. Together: 0.30+0.25+0.20+0.15+0.10 = 1.
var rankWeights = [3]float64{0.30, 0.25, 0.20}

const (
	physicalWeight = 0.15
	mlWeight       = 0.10
)

// Catcher defense blends arm strength and pop time, favoring the better
// of the two while still charging for a large deficiency in the other.
const (
	catcherHigherWeight = 0.60
	catcherLowerWeight  = 0.40
)

// The player/program level gap (0-100 scale) is divided by this before
// the ml weight is applied, so a full 100-point gap contributes ±0.20.
const levelGapDivisor = 50.0

// Team-need alignment bonus. Scales linearly from 0.05 at z=0.5 to the
// 0.20 cap at z=2.0.
const (
	alignmentMinZ     = 0.5
	alignmentMinBonus = 0.05
	alignmentMaxBonus = 0.20
	alignmentScale    = 0.10
)

// Minimum rating gap before a program is flagged as needing one unit.
// Ratings follow the Massey convention, so a higher number is the weaker
// unit.
const needRatingThreshold = 2.0

// Roster-trajectory adjustments. A declining program sheds players and
// opens spots; an improving one attracts stiffer competition.
const (
	trendBonusDeclining = 0.12
	trendBonusImproving = -0.08
)

// Player level mapping, classifier probabilities onto a 0-100 scale.
const (
	levelEliteBase  = 90.0
	levelEliteRange = 10.0
	levelP4Base     = 75.0
	levelP4Range    = 15.0
	levelHighD1Base = 50.0
	levelHighD1Range = 25.0
	levelSubD1Scale = 50.0
	levelHighD1Cut  = 0.5
)

// Confidence multipliers applied to the player level.
const (
	confidenceHighMult   = 1.00
	confidenceMediumMult = 0.95
	confidenceLowMult    = 0.90
)

// levelBand maps a program's within-tier percentile onto the shared
// 0-100 level scale: floor + (percentile/100)*width. Bands overlap on
// purpose; a top entry-tier program is comparable to a weak mid-tier one.
type levelBand struct {
	floor float64
	width float64
}

var tierBands = map[models.Tier]levelBand{
	models.TierPower4: {floor: 70, width: 30},
	models.TierMidD1:  {floor: 45, width: 30},
	models.TierD2:     {floor: 25, width: 30},
	models.TierD3:     {floor: 10, width: 30},
	models.TierNAIA:   {floor: 0, width: 25},
	models.TierJUCO:   {floor: 0, width: 25},
}

// bucketThreshold rows are ordered by descending minimum z; the boundary
// value belongs to the higher bucket.
type bucketThreshold struct {
	minZ        float64
	name        string
	description string
}

var buckets = []bucketThreshold{
	{1.5, "Likely Starter", "Top 7% - would stand out immediately"},
	{1.0, "Compete for Time", "Top 16% - strong chance to earn spot"},
	{0.5, "Developmental", "Top 31% - will need to improve to earn time"},
	{0.0, "Roster Fit", "Average fit - could make team, limited PT"},
	{-0.5, "Stretch", "Below average - would need significant development"},
}

const reachBucketName = "Reach"
const reachBucketDescription = "Bottom 31% - significant gap to close"
