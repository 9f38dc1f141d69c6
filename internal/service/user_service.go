package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) *userService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound(apperr.MsgUserNotFound)
	}
	return user, nil
}
