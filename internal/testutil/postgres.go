//go:build integration

// Package testutil starts a disposable PostgreSQL for integration tests.
package testutil

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/seed"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MigrationsPath returns the absolute path of the repository's migrations
func MigrationsPath(t testing.TB) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(currentFile)))
	return filepath.Join(projectRoot, "migrations")
}

// StartPostgres runs a PostgreSQL container, connects to it and applies
// every migration. The container is terminated when the test ends.
func StartPostgres(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	db, err := database.New(&config.DatabaseConfig{
		Host:         host,
		Port:         port.Port(),
		User:         "testuser",
		Password:     "testpass",
		Name:         "nc_news_test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 2,
		MaxLifetime:  time.Minute,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(MigrationsPath(t)); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

// Seed reloads the bundled test dataset
func Seed(t *testing.T, repos *repository.Repositories) {
	t.Helper()
	ds, err := seed.LoadDataset(seed.Fixtures(), "test")
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}
	if _, err := seed.New(repos, 5, zerolog.Nop()).Run(context.Background(), ds); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
}
