package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/yourusername/rosterfit/internal/config"
)

// TestDatabaseConfig builds a database config from TEST_DB_* environment
// variables, falling back to a local test database.
func TestDatabaseConfig() config.DatabaseConfig {
	port := 5432
	if raw := os.Getenv("TEST_DB_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	return config.DatabaseConfig{
		Host:               envOrDefault("TEST_DB_HOST", "localhost"),
		Port:               port,
		Name:               envOrDefault("TEST_DB_NAME", "rosterfit_test"),
		User:               envOrDefault("TEST_DB_USER", "test"),
		Password:           envOrDefault("TEST_DB_PASSWORD", "test"),
		SSLMode:            "disable",
		MaxConnections:     5,
		MaxIdleConnections: 2,
	}
}

// SetupTestDB creates a test database connection and verifies it
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := TestDatabaseConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, &cfg)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	verifyCtx, verifyCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer verifyCancel()

	if err := db.Ping(verifyCtx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}

// RunMigrations runs database migrations from the migrations directory
// Uses golang-migrate CLI for test execution
func RunMigrations(ctx context.Context, db *DB) error {
	// Migrations are applied with the migrate CLI:
	// migrate -path migrations -database "postgres://..." up
	return fmt.Errorf("use migrate CLI: migrate -path migrations -database \"your_dsn\" up")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
