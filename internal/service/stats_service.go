package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// Counts returns the row count of every table
func (s *statsService) Counts(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	counters := []struct {
		name  string
		count func(context.Context) (int, error)
		dst   *int
	}{
		{"topics", s.repos.Topic.Count, &stats.Topics},
		{"users", s.repos.User.Count, &stats.Users},
		{"articles", s.repos.Article.Count, &stats.Articles},
		{"comments", s.repos.Comment.Count, &stats.Comments},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return &stats, nil
}
