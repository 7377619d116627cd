package repository

import (
	"fmt"

	"github.com/yourusername/rosterfit/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Program    ProgramRepository
	Benchmark  BenchmarkRepository
	Evaluation EvaluationRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Program:    NewPostgresProgramRepository(db),
		Benchmark:  NewPostgresBenchmarkRepository(db),
		Evaluation: NewPostgresEvaluationRepository(db),
	}, nil
}
