package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"codelogs/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// TestSchema_PostgresIndexes verifies that the migrated Postgres schema
// carries the unique indexes the signup path relies on. It is skipped when
// no Postgres instance is reachable.
func TestSchema_PostgresIndexes(t *testing.T) {
	cfg := &config.Config{
		Port:          "0",
		JWTSecret:     "integration-test-secret",
		TokenTTLHours: 1,
		DBHost:        getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:        getEnvOrDefault("DB_PORT", "5432"),
		DBUser:        getEnvOrDefault("DB_USER", "user"),
		DBPassword:    getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:        getEnvOrDefault("DB_NAME", "codelogs_test"),
		DBSSLMode:     "disable",
		Env:           "test",
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Skipf("Postgres unavailable, skipping schema integration test: %v", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	db, err := Connect(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	rows, err := conn.Query(ctx,
		`SELECT indexdef FROM pg_indexes WHERE tablename = 'users'`)
	require.NoError(t, err)
	defer rows.Close()

	var defs []string
	for rows.Next() {
		var def string
		require.NoError(t, rows.Scan(&def))
		defs = append(defs, def)
	}
	require.NoError(t, rows.Err())

	hasUnique := func(column string) bool {
		for _, def := range defs {
			if strings.Contains(def, "UNIQUE") && strings.Contains(def, column) {
				return true
			}
		}
		return false
	}
	assert.True(t, hasUnique("email"), "users.email must be uniquely indexed")
	assert.True(t, hasUnique("username"), "users.username must be uniquely indexed")
}
