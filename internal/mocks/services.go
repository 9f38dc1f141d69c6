package mocks

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// MockArticleService is a mock implementation of ArticleService. Unset
// funcs return zero values.
type MockArticleService struct {
	ListArticlesFunc        func(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error)
	GetArticleByIDFunc      func(ctx context.Context, id string) (*models.Article, error)
	CreateArticleFunc       func(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	UpdateArticleFunc       func(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticleByIDFunc   func(ctx context.Context, id string) error
	ListArticleCommentsFunc func(ctx context.Context, id string) ([]*models.Comment, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, params)
	}
	return &models.ArticleList{Articles: []*models.ArticleSummary{}}, nil
}

func (m *MockArticleService) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetArticleByIDFunc != nil {
		return m.GetArticleByIDFunc(ctx, id)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(ctx, req)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	if m.UpdateArticleFunc != nil {
		return m.UpdateArticleFunc(ctx, id, req)
	}
	return &models.Article{}, nil
}

func (m *MockArticleService) DeleteArticleByID(ctx context.Context, id string) error {
	if m.DeleteArticleByIDFunc != nil {
		return m.DeleteArticleByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockArticleService) ListArticleComments(ctx context.Context, id string) ([]*models.Comment, error) {
	if m.ListArticleCommentsFunc != nil {
		return m.ListArticleCommentsFunc(ctx, id)
	}
	return []*models.Comment{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CreateCommentFunc      func(ctx context.Context, articleID string, req *models.CreateCommentRequest) (*models.Comment, error)
	UpdateCommentVotesFunc func(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.Comment, error)
	DeleteCommentByIDFunc  func(ctx context.Context, id string) error
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) CreateComment(ctx context.Context, articleID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, articleID, req)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) UpdateCommentVotes(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.Comment, error) {
	if m.UpdateCommentVotesFunc != nil {
		return m.UpdateCommentVotesFunc(ctx, id, req)
	}
	return &models.Comment{}, nil
}

func (m *MockCommentService) DeleteCommentByID(ctx context.Context, id string) error {
	if m.DeleteCommentByIDFunc != nil {
		return m.DeleteCommentByIDFunc(ctx, id)
	}
	return nil
}

// NewMockServices returns services backed entirely by mock funcs
func NewMockServices() (*service.Services, *MockArticleService, *MockCommentService) {
	articles := &MockArticleService{}
	comments := &MockCommentService{}
	repos := NewMockRepositories(NewMockStore())
	real := service.NewServices(repos, zerolog.Nop())
	real.Article = articles
	real.Comment = comments
	return real, articles, comments
}
