package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/rosterfit/internal/database"
	"github.com/yourusername/rosterfit/internal/models"
)

const errScanEvaluation = "failed to scan evaluation: %w"

// PostgresEvaluationRepository implements EvaluationRepository for PostgreSQL
type PostgresEvaluationRepository struct {
	db *database.DB
}

// NewPostgresEvaluationRepository creates a new evaluation repository
func NewPostgresEvaluationRepository(db *database.DB) EvaluationRepository {
	return &PostgresEvaluationRepository{db: db}
}

// Create inserts a new evaluation record
func (r *PostgresEvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (id, program_id, player_name, position, final_z, percentile, bucket, breakdown, evaluated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		evaluation.ID, evaluation.ProgramID, evaluation.PlayerName, evaluation.Position,
		evaluation.FinalZ, evaluation.Percentile, evaluation.Bucket,
		evaluation.Breakdown, evaluation.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}

	return nil
}

// GetByID retrieves an evaluation by ID
func (r *PostgresEvaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error) {
	query := `
		SELECT id, program_id, player_name, position, final_z, percentile, bucket, breakdown, evaluated_at
		FROM evaluations WHERE id = $1
	`

	evaluation := &models.Evaluation{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&evaluation.ID, &evaluation.ProgramID, &evaluation.PlayerName, &evaluation.Position,
		&evaluation.FinalZ, &evaluation.Percentile, &evaluation.Bucket,
		&evaluation.Breakdown, &evaluation.EvaluatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	return evaluation, nil
}

// ListByProgram retrieves recent evaluations against one program
func (r *PostgresEvaluationRepository) ListByProgram(ctx context.Context, programID uuid.UUID, limit int) ([]*models.Evaluation, error) {
	query := `
		SELECT id, program_id, player_name, position, final_z, percentile, bucket, breakdown, evaluated_at
		FROM evaluations
		WHERE program_id = $1
		ORDER BY evaluated_at DESC
		LIMIT $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, programID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []*models.Evaluation
	for rows.Next() {
		evaluation := &models.Evaluation{}
		err := rows.Scan(
			&evaluation.ID, &evaluation.ProgramID, &evaluation.PlayerName, &evaluation.Position,
			&evaluation.FinalZ, &evaluation.Percentile, &evaluation.Bucket,
			&evaluation.Breakdown, &evaluation.EvaluatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanEvaluation, err)
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, rows.Err()
}

// Delete deletes an evaluation
func (r *PostgresEvaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM evaluations WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete evaluation: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
