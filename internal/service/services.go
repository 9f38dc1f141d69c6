package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the article operations. Ids arrive as raw path
// strings so that numeric validation happens in its documented order.
type ArticleService interface {
	ListArticles(ctx context.Context, params models.ArticleListParams) (*models.ArticleList, error)
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticleByID(ctx context.Context, id string) error
	ListArticleComments(ctx context.Context, id string) ([]*models.Comment, error)
}

// CommentService defines the comment operations
type CommentService interface {
	CreateComment(ctx context.Context, articleID string, req *models.CreateCommentRequest) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.Comment, error)
	DeleteCommentByID(ctx context.Context, id string) error
}

// TopicService defines the topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]*models.Topic, error)
	CreateTopic(ctx context.Context, req *models.CreateTopicRequest) (*models.Topic, error)
}

// UserService defines the user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// StatsService reports store-wide counts
type StatsService interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Topic   TopicService
	User    UserService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
		Topic:   newTopicService(repos, log),
		User:    newUserService(repos, log),
		Stats:   newStatsService(repos),
	}
}
