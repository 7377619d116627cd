package ratings

// FeedRecord is one program's row as the ratings provider serves it.
// Numeric fields arrive as strings; the normalizer parses and validates
// them.
type FeedRecord struct {
	Program    string `json:"program"`
	Division   string `json:"division"`
	Conference string `json:"conference"`
	Power4     bool   `json:"power4"`

	// Overall percentile within the division, 0-100.
	Percentile string `json:"percentile"`

	// Unit ratings, lower value means stronger unit.
	OffensiveRating string `json:"offensive_rating"`
	DefensiveRating string `json:"defensive_rating"`

	// Multi-year trajectory.
	Trend       string `json:"trend"`
	TrendChange string `json:"trend_change"`
	TrendYears  string `json:"trend_years"`
}

// FeedResponse is the provider's ratings endpoint payload.
type FeedResponse struct {
	Season  string       `json:"season"`
	Records []FeedRecord `json:"records"`
}
