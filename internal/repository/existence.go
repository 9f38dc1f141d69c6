package repository

import (
	"context"
	"fmt"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/query"
)

// Entity names a table the existence checker may probe
type Entity string

const (
	EntityTopic   Entity = "topics"
	EntityUser    Entity = "users"
	EntityArticle Entity = "articles"
	EntityComment Entity = "comments"
)

// entityKeys lists the columns each entity may be probed on
var entityKeys = map[Entity][]string{
	EntityTopic:   {"slug"},
	EntityUser:    {"username"},
	EntityArticle: {"article_id", "topic", "author"},
	EntityComment: {"comment_id", "article_id", "author"},
}

// KeyAllowed reports whether column is a probe column of entity
func KeyAllowed(entity Entity, column string) bool {
	for _, c := range entityKeys[entity] {
		if c == column {
			return true
		}
	}
	return false
}

// existenceRepo is the concrete implementation of ExistenceChecker
type existenceRepo struct {
	db *database.DB
}

// NewExistenceRepo creates a new existence checker
func NewExistenceRepo(db *database.DB) ExistenceChecker {
	return &existenceRepo{db: db}
}

// Exists runs a single equality-filtered EXISTS probe. An entity/column
// pair outside entityKeys is a programming error and never reaches the
// database.
func (r *existenceRepo) Exists(ctx context.Context, entity Entity, column string, value any) (bool, error) {
	if !KeyAllowed(entity, column) {
		return false, fmt.Errorf("existence check on %s.%s is not allowed", entity, column)
	}
	table, err := query.ParseIdent(string(entity))
	if err != nil {
		return false, fmt.Errorf("existence check table %q: %w", entity, err)
	}
	col, err := query.ParseIdent(column)
	if err != nil {
		return false, fmt.Errorf("existence check column %q: %w", column, err)
	}

	stmt, args := query.Exists(table, col, value)

	var exists bool
	if err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", entity, err)
	}
	return exists, nil
}
