package ratings

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/models"
)

// Normalizer converts provider feed records into persisted program rows.
type Normalizer struct {
	logger *logrus.Logger
}

// NewNormalizer creates a new normalizer
func NewNormalizer(logger *logrus.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// NormalizeRecord converts one feed record into a Program. Records without
// a program name or with an unparseable percentile are rejected; missing
// unit ratings are kept as nil, the engine treats them as balanced.
func (n *Normalizer) NormalizeRecord(rec *FeedRecord) (*models.Program, error) {
	if rec == nil {
		return nil, fmt.Errorf("feed record is nil")
	}

	name := sanitizeName(rec.Program)
	if name == "" {
		return nil, fmt.Errorf("feed record has no program name")
	}

	division, conference := normalizeDivision(rec.Division, rec.Conference)

	percentile, err := parseRequiredRating(rec.Percentile)
	if err != nil {
		return nil, fmt.Errorf("invalid percentile for %s: %w", name, err)
	}
	if percentile < 0 || percentile > 100 {
		return nil, fmt.Errorf("percentile %f out of range for %s", percentile, name)
	}

	now := time.Now()
	program := &models.Program{
		ID:              uuid.New(),
		Name:            name,
		Division:        division,
		Conference:      conference,
		IsPower4:        rec.Power4,
		Percentile:      percentile,
		OffensiveRating: parseOptionalRating(rec.OffensiveRating),
		DefensiveRating: parseOptionalRating(rec.DefensiveRating),
		Trend:           normalizeTrend(rec.Trend),
		TrendChange:     parseOptionalRating(rec.TrendChange),
		TrendYears:      strings.TrimSpace(rec.TrendYears),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return program, nil
}

// NormalizeFeed converts a full snapshot, skipping rejected records.
func (n *Normalizer) NormalizeFeed(feed *FeedResponse) (programs []*models.Program, rejected int) {
	if feed == nil {
		return nil, 0
	}

	programs = make([]*models.Program, 0, len(feed.Records))
	for i := range feed.Records {
		program, err := n.NormalizeRecord(&feed.Records[i])
		if err != nil {
			rejected++
			n.logger.WithFields(logrus.Fields{
				"program": feed.Records[i].Program,
				"error":   err,
			}).Warn("Rejected ratings record")
			continue
		}
		programs = append(programs, program)
	}
	return programs, rejected
}

// parseRequiredRating parses a numeric feed field that must be present.
func parseRequiredRating(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// parseOptionalRating parses a numeric feed field, nil when absent or
// malformed.
func parseOptionalRating(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// normalizeDivision maps provider division labels onto the stored
// numeric division plus conference tag.
func normalizeDivision(division, conference string) (int, string) {
	conf := strings.TrimSpace(conference)

	switch strings.ToUpper(strings.TrimSpace(division)) {
	case "D1", "1", "DIVISION 1", "DIVISION I":
		return 1, conf
	case "D2", "2", "DIVISION 2", "DIVISION II":
		return 2, conf
	case "D3", "3", "DIVISION 3", "DIVISION III":
		return 3, conf
	case "JUCO", "NJCAA":
		return 0, "JUCO"
	default:
		return 0, conf
	}
}

// normalizeTrend maps provider trend labels onto the canonical set.
func normalizeTrend(trend string) string {
	switch strings.ToLower(strings.TrimSpace(trend)) {
	case models.TrendImproving, "rising", "up":
		return models.TrendImproving
	case models.TrendDeclining, "falling", "down":
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// sanitizeName removes extra whitespace from program names.
func sanitizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
