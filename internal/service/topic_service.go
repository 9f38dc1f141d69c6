package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTopicService(repos *repository.Repositories, log zerolog.Logger) *topicService {
	return &topicService{
		repos: repos,
		log:   log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	topics, err := s.repos.Topic.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// CreateTopic adds a topic; an existing slug is a conflict
func (s *topicService) CreateTopic(ctx context.Context, req *models.CreateTopicRequest) (*models.Topic, error) {
	if req == nil {
		return nil, apperr.BadRequest(apperr.MsgMissingFields)
	}
	if err := req.Validate(); err != nil {
		return nil, requestError(err)
	}

	ctx = context.WithoutCancel(ctx)
	exists, err := s.repos.Exists.Exists(ctx, repository.EntityTopic, "slug", req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check topic: %w", err)
	}
	if exists {
		return nil, apperr.Conflict(apperr.MsgTopicExists)
	}

	topic := &models.Topic{Slug: req.Slug, Description: req.Description}
	if err := s.repos.Topic.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.log.Info().Str("slug", topic.Slug).Msg("Topic created")
	return topic, nil
}
