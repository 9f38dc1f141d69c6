package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic ordered by slug
func (r *topicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []*models.Topic{}
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, err
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}

// Create inserts a new topic
func (r *topicRepo) Create(ctx context.Context, topic *models.Topic) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO topics (slug, description) VALUES ($1, $2)",
		topic.Slug, topic.Description,
	)
	return err
}

// Count returns the total number of topics
func (r *topicRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "SELECT COUNT(*) FROM topics")
}

// BatchInsert loads formatted topic tuples using COPY
func (r *topicRepo) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	return copyRows(ctx, r.db, models.TopicSchema, rows)
}
