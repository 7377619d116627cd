//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/rosterfit/internal/database"
	"github.com/yourusername/rosterfit/internal/models"
	"github.com/yourusername/rosterfit/internal/playingtime"
	"github.com/yourusername/rosterfit/internal/repository"
)

const skipIntegration = "Skipping integration test in short mode"

// TestDatabaseRepositoryIntegration exercises all repositories against a
// real PostgreSQL instance.
func TestDatabaseRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	ctx := context.Background()
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)

	t.Run("ProgramRepository", func(t *testing.T) {
		offense := 42.5
		program := &models.Program{
			ID:              uuid.New(),
			Name:            "Integration State " + uuid.NewString()[:8],
			Division:        1,
			Conference:      "SEC",
			IsPower4:        true,
			Percentile:      88,
			OffensiveRating: &offense,
			Trend:           models.TrendImproving,
			TrendYears:      "2023-2026",
		}

		require.NoError(t, repos.Program.Create(ctx, program))
		defer repos.Program.Delete(ctx, program.ID)

		retrieved, err := repos.Program.GetByName(ctx, program.Name)
		require.NoError(t, err)
		assert.Equal(t, program.ID, retrieved.ID)
		assert.Equal(t, models.TierPower4, retrieved.TierGroup())
		require.NotNil(t, retrieved.OffensiveRating)
		assert.InDelta(t, offense, *retrieved.OffensiveRating, 0.001)

		// Upsert on the same name refreshes the profile in place.
		program.Percentile = 91
		program.Trend = models.TrendStable
		require.NoError(t, repos.Program.Upsert(ctx, program))

		refreshed, err := repos.Program.GetByName(ctx, program.Name)
		require.NoError(t, err)
		assert.InDelta(t, 91.0, refreshed.Percentile, 0.001)
		assert.Equal(t, models.TrendStable, refreshed.Trend)

		count, err := repos.Program.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)
	})

	t.Run("ProgramUpsertBatch", func(t *testing.T) {
		batch := []*models.Program{
			{ID: uuid.New(), Name: "Batch A " + uuid.NewString()[:8], Division: 2, Percentile: 40, Trend: models.TrendStable},
			{ID: uuid.New(), Name: "Batch B " + uuid.NewString()[:8], Division: 3, Percentile: 60, Trend: models.TrendDeclining},
		}

		written, err := repos.Program.UpsertBatch(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, 2, written)

		for _, p := range batch {
			defer repos.Program.Delete(ctx, p.ID)
			stored, err := repos.Program.GetByName(ctx, p.Name)
			require.NoError(t, err)
			assert.Equal(t, p.Division, stored.Division)
		}
	})

	t.Run("EvaluationRepository", func(t *testing.T) {
		program := &models.Program{
			ID:         uuid.New(),
			Name:       "Eval Host " + uuid.NewString()[:8],
			Division:   2,
			Percentile: 50,
			Trend:      models.TrendStable,
		}
		require.NoError(t, repos.Program.Create(ctx, program))
		defer repos.Program.Delete(ctx, program.ID)

		evaluation := &models.Evaluation{
			ID:          uuid.New(),
			ProgramID:   program.ID,
			PlayerName:  "Sam Alvarez",
			Position:    "SS",
			FinalZ:      1.25,
			Percentile:  89.4,
			Bucket:      "Compete for Time",
			Breakdown:   json.RawMessage(`{"stats":{}}`),
			EvaluatedAt: time.Now(),
		}

		require.NoError(t, repos.Evaluation.Create(ctx, evaluation))
		defer repos.Evaluation.Delete(ctx, evaluation.ID)

		retrieved, err := repos.Evaluation.GetByID(ctx, evaluation.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sam Alvarez", retrieved.PlayerName)
		assert.InDelta(t, 1.25, retrieved.FinalZ, 0.001)

		list, err := repos.Evaluation.ListByProgram(ctx, program.ID, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, evaluation.ID, list[0].ID)

		_, err = repos.Evaluation.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("BenchmarkRepository", func(t *testing.T) {
		table := playingtime.DefaultBenchmarks()

		err := db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return repos.Benchmark.ReplaceTable(ctx, tx, table)
		})
		require.NoError(t, err)

		loaded, err := repos.Benchmark.LoadTable(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, len(table))

		entry, ok := loaded[models.TierD2][playingtime.StatExitVelo]
		require.True(t, ok)
		assert.InDelta(t, table[models.TierD2][playingtime.StatExitVelo].Mean, entry.Mean, 0.001)
	})
}

// TestTransactionRollback verifies a failed transaction leaves no rows.
func TestTransactionRollback(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	ctx := context.Background()
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	name := "Rollback State " + uuid.NewString()[:8]
	err := db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO programs (id, name, division, conference, is_power4, percentile, trend)
			 VALUES ($1, $2, 2, '', false, 50, 'stable')`, uuid.New(), name)
		require.NoError(t, err)
		return assert.AnError
	})
	require.Error(t, err)

	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)

	_, err = repos.Program.GetByName(ctx, name)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
