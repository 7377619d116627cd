package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Evaluation is a persisted record of one playing-time evaluation. The
// breakdown is stored as the engine produced it, so the API can replay a
// past result without recomputation.
type Evaluation struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	ProgramID   uuid.UUID       `db:"program_id" json:"program_id"`
	PlayerName  string          `db:"player_name" json:"player_name"`
	Position    string          `db:"position" json:"position"`
	FinalZ      float64         `db:"final_z" json:"final_z"`
	Percentile  float64         `db:"percentile" json:"percentile"`
	Bucket      string          `db:"bucket" json:"bucket"`
	Breakdown   json.RawMessage `db:"breakdown" json:"breakdown"`
	EvaluatedAt time.Time       `db:"evaluated_at" json:"evaluated_at"`
}
