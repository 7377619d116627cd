package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/rosterfit/internal/database"
	"github.com/yourusername/rosterfit/internal/models"
)

const errScanProgram = "failed to scan program: %w"

const programColumns = `
	id, name, division, conference, is_power4, percentile,
	offensive_rating, defensive_rating, trend, trend_change, trend_years,
	created_at, updated_at`

// PostgresProgramRepository implements ProgramRepository for PostgreSQL
type PostgresProgramRepository struct {
	db *database.DB
}

// NewPostgresProgramRepository creates a new program repository
func NewPostgresProgramRepository(db *database.DB) ProgramRepository {
	return &PostgresProgramRepository{db: db}
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	program := &models.Program{}
	err := row.Scan(
		&program.ID, &program.Name, &program.Division, &program.Conference,
		&program.IsPower4, &program.Percentile,
		&program.OffensiveRating, &program.DefensiveRating,
		&program.Trend, &program.TrendChange, &program.TrendYears,
		&program.CreatedAt, &program.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// Create inserts a new program
func (r *PostgresProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (id, name, division, conference, is_power4, percentile,
			offensive_rating, defensive_rating, trend, trend_change, trend_years)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		program.ID, program.Name, program.Division, program.Conference,
		program.IsPower4, program.Percentile,
		program.OffensiveRating, program.DefensiveRating,
		program.Trend, program.TrendChange, program.TrendYears,
	)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}

	return nil
}

// GetByID retrieves a program by ID
func (r *PostgresProgramRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	query := `SELECT` + programColumns + ` FROM programs WHERE id = $1`

	program, err := scanProgram(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	return program, nil
}

// GetByName retrieves a program by its exact name
func (r *PostgresProgramRepository) GetByName(ctx context.Context, name string) (*models.Program, error) {
	query := `SELECT` + programColumns + ` FROM programs WHERE name = $1`

	program, err := scanProgram(r.db.GetPool().QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get program by name: %w", err)
	}

	return program, nil
}

// List retrieves programs ordered by name
func (r *PostgresProgramRepository) List(ctx context.Context, limit int) ([]*models.Program, error) {
	query := `SELECT` + programColumns + ` FROM programs ORDER BY name ASC LIMIT $1`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanProgram, err)
		}
		programs = append(programs, program)
	}

	return programs, rows.Err()
}

// Update updates an existing program's ratings profile
func (r *PostgresProgramRepository) Update(ctx context.Context, program *models.Program) error {
	query := `
		UPDATE programs SET
			division = $2, conference = $3, is_power4 = $4, percentile = $5,
			offensive_rating = $6, defensive_rating = $7,
			trend = $8, trend_change = $9, trend_years = $10, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := r.db.GetPool().Exec(ctx, query,
		program.ID, program.Division, program.Conference, program.IsPower4, program.Percentile,
		program.OffensiveRating, program.DefensiveRating,
		program.Trend, program.TrendChange, program.TrendYears,
	)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Upsert inserts a program or refreshes its ratings when the name exists
func (r *PostgresProgramRepository) Upsert(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (id, name, division, conference, is_power4, percentile,
			offensive_rating, defensive_rating, trend, trend_change, trend_years)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (name) DO UPDATE SET
			division = EXCLUDED.division,
			conference = EXCLUDED.conference,
			is_power4 = EXCLUDED.is_power4,
			percentile = EXCLUDED.percentile,
			offensive_rating = EXCLUDED.offensive_rating,
			defensive_rating = EXCLUDED.defensive_rating,
			trend = EXCLUDED.trend,
			trend_change = EXCLUDED.trend_change,
			trend_years = EXCLUDED.trend_years,
			updated_at = NOW()
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		program.ID, program.Name, program.Division, program.Conference,
		program.IsPower4, program.Percentile,
		program.OffensiveRating, program.DefensiveRating,
		program.Trend, program.TrendChange, program.TrendYears,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert program: %w", err)
	}

	return nil
}

// UpsertBatch upserts a ratings snapshot inside one transaction and
// returns the number of programs written.
func (r *PostgresProgramRepository) UpsertBatch(ctx context.Context, programs []*models.Program) (int, error) {
	written := 0
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO programs (id, name, division, conference, is_power4, percentile,
				offensive_rating, defensive_rating, trend, trend_change, trend_years)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (name) DO UPDATE SET
				division = EXCLUDED.division,
				conference = EXCLUDED.conference,
				is_power4 = EXCLUDED.is_power4,
				percentile = EXCLUDED.percentile,
				offensive_rating = EXCLUDED.offensive_rating,
				defensive_rating = EXCLUDED.defensive_rating,
				trend = EXCLUDED.trend,
				trend_change = EXCLUDED.trend_change,
				trend_years = EXCLUDED.trend_years,
				updated_at = NOW()
		`

		for _, program := range programs {
			if _, err := tx.Exec(ctx, query,
				program.ID, program.Name, program.Division, program.Conference,
				program.IsPower4, program.Percentile,
				program.OffensiveRating, program.DefensiveRating,
				program.Trend, program.TrendChange, program.TrendYears,
			); err != nil {
				return fmt.Errorf("failed to upsert program %s: %w", program.Name, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// Count returns the number of tracked programs
func (r *PostgresProgramRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetPool().QueryRow(ctx, "SELECT COUNT(*) FROM programs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count programs: %w", err)
	}
	return count, nil
}

// Delete deletes a program
func (r *PostgresProgramRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM programs WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
