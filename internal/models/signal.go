package models

// Confidence labels emitted by the division classifier.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// ClassifierSignal is the division classifier's output for one player.
// The engine treats it as opaque input; it is produced entirely by the
// external classifier service.
type ClassifierSignal struct {
	// Probability the player qualifies for Division 1 (0-1).
	D1Probability float64 `json:"d1_probability" validate:"gte=0,lte=1"`

	// Probability of a Power 4 program given D1, nil when the P4 model
	// was not run for this player.
	P4Probability *float64 `json:"p4_probability,omitempty" validate:"omitempty,gte=0,lte=1"`

	// Elite flag set by the classifier for standout P4 candidates.
	Elite bool `json:"is_elite"`

	// Binary predictions backing the probabilities.
	D1Prediction bool `json:"d1_prediction"`
	P4Prediction bool `json:"p4_prediction"`

	// Confidence label: High, Medium or Low.
	Confidence string `json:"confidence"`
}

// P4 returns the P4 probability, treating an absent value as zero.
func (s ClassifierSignal) P4() float64 {
	if s.P4Probability == nil {
		return 0
	}
	return *s.P4Probability
}
