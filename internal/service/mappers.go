package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
)

// toEvaluationRecord converts an engine result into the persisted shape.
// The full breakdown is serialized so past results can be replayed
// without recomputation.
func toEvaluationRecord(result *playingtime.Result, programID uuid.UUID, playerName string) (*models.Evaluation, error) {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize breakdown: %w", err)
	}

	return &models.Evaluation{
		ID:          uuid.New(),
		ProgramID:   programID,
		PlayerName:  playerName,
		Position:    result.Position,
		FinalZ:      result.FinalZ,
		Percentile:  result.Percentile,
		Bucket:      result.Bucket,
		Breakdown:   breakdown,
		EvaluatedAt: time.Now(),
	}, nil
}
