package repository

import (
	"context"

	"github.com/news-api/internal/database"
)

// adminRepo is the concrete implementation of AdminRepository
type adminRepo struct {
	db *database.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *database.DB) AdminRepository {
	return &adminRepo{db: db}
}

// Truncate empties every table and restarts the serial sequences
func (r *adminRepo) Truncate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE")
	return err
}
