package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/query"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the listing parameters and returns one page of
// articles with the size of the whole filtered set. A topic that exists but
// has no articles yields an empty page.
func (s *articleService) ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error) {
	if params.Topic != "" {
		err := mustExist(ctx, s.repos.Exists, repository.EntityTopic, "slug", params.Topic, apperr.MsgNotFound)
		if err != nil {
			return nil, err
		}
	}

	q, err := query.NewArticleList(params.Topic, params.SortBy, params.Order, params.Limit, params.Page)
	if err != nil {
		return nil, listError(err)
	}

	articles, err := s.repos.Article.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	total, err := s.repos.Article.CountMatching(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	return &models.ArticleList{Articles: articles, TotalCount: total}, nil
}

func listError(err error) error {
	switch {
	case errors.Is(err, query.ErrUnknownSortColumn):
		return apperr.BadRequest(apperr.MsgUnknownSortColumn)
	case errors.Is(err, query.ErrInvalidDirection):
		return apperr.BadRequest(apperr.MsgInvalidOrder)
	case errors.Is(err, query.ErrInvalidCount):
		return apperr.BadRequest(apperr.MsgInvalidQuery)
	}
	return err
}

// GetArticleByID returns a single article with its comment count
func (s *articleService) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	articleID, err := parseID(id, apperr.MsgArticleIDNotNumber)
	if err != nil {
		return nil, err
	}

	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return article, nil
}

// CreateArticle checks required fields, then the author, then the topic,
// and inserts the article.
func (s *articleService) CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, requestError(err)
	}

	ctx = context.WithoutCancel(ctx)
	if err := mustExist(ctx, s.repos.Exists, repository.EntityUser, "username", req.Author, apperr.MsgUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repos.Exists, repository.EntityTopic, "slug", req.Topic, apperr.MsgTopicNotFound); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:  req.Title,
		Body:   req.Body,
		Topic:  req.Topic,
		Author: req.Author,
	}
	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.log.Info().Int("article_id", article.ArticleID).Str("author", article.Author).Msg("Article created")
	return article, nil
}

// UpdateArticle applies a relative vote change, or failing that a body
// replacement.
func (s *articleService) UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if req == nil || (req.IncVotes == nil && req.Body == nil) {
		return nil, apperr.Unprocessable(apperr.MsgUnprocessableBody)
	}
	articleID, err := parseID(id, apperr.MsgArticleIDNotNumber)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, requestError(err)
	}

	ctx = context.WithoutCancel(ctx)
	var article *models.Article
	switch {
	case req.IncVotes != nil:
		article, err = s.repos.Article.IncrementVotes(ctx, articleID, *req.IncVotes)
	case *req.Body == "":
		return nil, apperr.Unprocessable(apperr.MsgUnprocessableBody)
	default:
		article, err = s.repos.Article.UpdateBody(ctx, articleID, *req.Body)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}

	s.log.Debug().Int("article_id", articleID).Int("votes", article.Votes).Msg("Article updated")
	return article, nil
}

// DeleteArticleByID removes an article and, through the foreign key, its
// comments
func (s *articleService) DeleteArticleByID(ctx context.Context, id string) error {
	articleID, err := parseID(id, apperr.MsgArticleIDNotNumber)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	if err := mustExist(ctx, s.repos.Exists, repository.EntityArticle, "article_id", articleID, apperr.MsgArticleDoesNotExist); err != nil {
		return err
	}
	if err := s.repos.Article.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.log.Info().Int("article_id", articleID).Msg("Article deleted")
	return nil
}

// ListArticleComments returns an article's comments, newest first
func (s *articleService) ListArticleComments(ctx context.Context, id string) ([]*models.Comment, error) {
	articleID, err := parseID(id, apperr.MsgArticleIDNotNumber)
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repos.Exists, repository.EntityArticle, "article_id", articleID, apperr.MsgArticleNotFound); err != nil {
		return nil, err
	}

	comments, err := s.repos.Comment.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
