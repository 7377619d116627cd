package playingtime

// StatZ is a single stat's z-score with the benchmark it was measured
// against.
type StatZ struct {
	Stat     Stat    `json:"stat"`
	Raw      float64 `json:"raw_value"`
	Z        float64 `json:"z_score"`
	TierMean float64 `json:"tier_mean"`
	TierStd  float64 `json:"tier_std"`
	Inverted bool    `json:"is_inverted"`
}

// normalize computes the z-score for one stat against one tier's
// benchmarks. A missing value sits at the tier mean, contributing
// nothing. A zero or negative std, or a missing benchmark row, likewise
// resolves to zero rather than dividing.
func normalize(value *float64, stat Stat, bench map[Stat]BenchmarkEntry) StatZ {
	entry, ok := bench[stat]
	if !ok {
		entry = BenchmarkEntry{Mean: 0, Std: 1}
	}
	inverted := invertedStats[stat]

	if value == nil {
		return StatZ{
			Stat:     stat,
			Raw:      entry.Mean,
			Z:        0,
			TierMean: entry.Mean,
			TierStd:  entry.Std,
			Inverted: inverted,
		}
	}

	z := 0.0
	if entry.Std > 0 {
		z = (*value - entry.Mean) / entry.Std
	}
	if inverted {
		z = -z
	}

	return StatZ{
		Stat:     stat,
		Raw:      *value,
		Z:        z,
		TierMean: entry.Mean,
		TierStd:  entry.Std,
		Inverted: inverted,
	}
}
