package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
)

// ProgramRepository manages persisted program records
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
	GetByName(ctx context.Context, name string) (*models.Program, error)
	List(ctx context.Context, limit int) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Upsert(ctx context.Context, program *models.Program) error
	UpsertBatch(ctx context.Context, programs []*models.Program) (int, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BenchmarkRepository manages persisted tier benchmark tables
type BenchmarkRepository interface {
	LoadTable(ctx context.Context) (playingtime.BenchmarkTable, error)
	ReplaceTable(ctx context.Context, tx pgx.Tx, table playingtime.BenchmarkTable) error
}

// EvaluationRepository manages persisted evaluation records
type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *models.Evaluation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error)
	ListByProgram(ctx context.Context, programID uuid.UUID, limit int) ([]*models.Evaluation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
