package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// copyRows bulk-loads tuples into schema.Table using PostgreSQL COPY. Each
// tuple must be ordered as schema.Columns.
func copyRows(ctx context.Context, db *database.DB, schema models.Schema, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(schema.Table, schema.Columns...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy into %s: %w", schema.Table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != len(schema.Columns) {
			return 0, fmt.Errorf("%s row %d has %d values, want %d", schema.Table, i, len(row), len(schema.Columns))
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("failed to copy %s row %d: %w", schema.Table, i, err)
		}
	}

	// Execute the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to flush copy into %s: %w", schema.Table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// countRows returns the total number of rows in a fixed table
func countRows(ctx context.Context, db *database.DB, stmt string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, stmt).Scan(&count)
	return count, err
}
