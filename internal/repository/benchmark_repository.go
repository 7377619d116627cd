package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yourusername/rosterfit/internal/database"
	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
)

// PostgresBenchmarkRepository implements BenchmarkRepository for PostgreSQL
type PostgresBenchmarkRepository struct {
	db *database.DB
}

// NewPostgresBenchmarkRepository creates a new benchmark repository
func NewPostgresBenchmarkRepository(db *database.DB) BenchmarkRepository {
	return &PostgresBenchmarkRepository{db: db}
}

// LoadTable reads the full benchmark table. Rows with a non-positive
// standard deviation are rejected at load time rather than surfacing as
// silent zero z-scores during evaluation.
func (r *PostgresBenchmarkRepository) LoadTable(ctx context.Context) (playingtime.BenchmarkTable, error) {
	query := `SELECT tier, stat, mean, std FROM tier_benchmarks`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmarks: %w", err)
	}
	defer rows.Close()

	table := playingtime.BenchmarkTable{}
	for rows.Next() {
		var tier, stat string
		var entry playingtime.BenchmarkEntry
		if err := rows.Scan(&tier, &stat, &entry.Mean, &entry.Std); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark: %w", err)
		}

		if entry.Std <= 0 {
			return nil, fmt.Errorf("benchmark %s/%s has non-positive std %f", tier, stat, entry.Std)
		}

		tierKey := models.Tier(tier)
		if table[tierKey] == nil {
			table[tierKey] = map[playingtime.Stat]playingtime.BenchmarkEntry{}
		}
		table[tierKey][playingtime.Stat(stat)] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read benchmarks: %w", err)
	}

	if len(table) == 0 {
		return nil, models.ErrNotFound
	}

	return table, nil
}

// ReplaceTable swaps the stored benchmark table within the caller's
// transaction.
func (r *PostgresBenchmarkRepository) ReplaceTable(ctx context.Context, tx pgx.Tx, table playingtime.BenchmarkTable) error {
	if _, err := tx.Exec(ctx, "DELETE FROM tier_benchmarks"); err != nil {
		return fmt.Errorf("failed to clear benchmarks: %w", err)
	}

	query := `INSERT INTO tier_benchmarks (tier, stat, mean, std) VALUES ($1, $2, $3, $4)`
	for tier, stats := range table {
		for stat, entry := range stats {
			if entry.Std <= 0 {
				return fmt.Errorf("benchmark %s/%s has non-positive std %f", tier, stat, entry.Std)
			}
			if _, err := tx.Exec(ctx, query, string(tier), string(stat), entry.Mean, entry.Std); err != nil {
				return fmt.Errorf("failed to insert benchmark %s/%s: %w", tier, stat, err)
			}
		}
	}

	return nil
}
