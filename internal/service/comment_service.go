package service

import (
	"context"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// CreateComment posts a comment on an article. The user is checked before
// the article.
func (s *commentService) CreateComment(ctx context.Context, articleID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	id, err := parseID(articleID, apperr.MsgArticleIDNotNumber)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.BadRequest(apperr.MsgMissingFields)
	}
	if err := req.Validate(); err != nil {
		return nil, requestError(err)
	}

	ctx = context.WithoutCancel(ctx)
	if err := mustExist(ctx, s.repos.Exists, repository.EntityUser, "username", req.Username, apperr.MsgUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repos.Exists, repository.EntityArticle, "article_id", id, apperr.MsgArticleRefNotFound); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: id,
		Author:    req.Username,
		Body:      req.Body,
	}
	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().Int("comment_id", comment.CommentID).Int("article_id", id).Msg("Comment created")
	return comment, nil
}

// UpdateCommentVotes adds inc_votes to a comment
func (s *commentService) UpdateCommentVotes(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.Comment, error) {
	if req == nil || req.IncVotes == nil || req.Validate() != nil {
		return nil, apperr.BadRequest(apperr.MsgInvalidInput)
	}
	commentID, err := parseID(id, apperr.MsgCommentIDNotNumber)
	if err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.IncrementVotes(context.WithoutCancel(ctx), commentID, *req.IncVotes)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if comment == nil {
		return nil, apperr.NotFound(apperr.MsgCommentNotFound)
	}
	return comment, nil
}

// DeleteCommentByID removes a comment
func (s *commentService) DeleteCommentByID(ctx context.Context, id string) error {
	commentID, err := parseID(id, apperr.MsgCommentIDNotNumber)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	if err := mustExist(ctx, s.repos.Exists, repository.EntityComment, "comment_id", commentID, apperr.MsgCommentDoesNotExist); err != nil {
		return err
	}
	if err := s.repos.Comment.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.log.Info().Int("comment_id", commentID).Msg("Comment deleted")
	return nil
}
