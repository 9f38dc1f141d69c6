package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/query"
)

// ExistenceChecker reports whether a row with the given key exists. It is
// used to produce a specific not-found error before a write that would
// otherwise fail on a foreign key.
type ExistenceChecker interface {
	Exists(ctx context.Context, entity Entity, column string, value any) (bool, error)
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
	Count(ctx context.Context) (int, error)
	BatchInsert(ctx context.Context, rows [][]any) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int, error)
	BatchInsert(ctx context.Context, rows [][]any) (int, error)
}

// ArticleRepository defines the interface for article data operations.
// Lookups and updates return (nil, nil) when no row matches.
type ArticleRepository interface {
	List(ctx context.Context, q *query.ArticleList) ([]*models.ArticleSummary, error)
	CountMatching(ctx context.Context, q *query.ArticleList) (int, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	IncrementVotes(ctx context.Context, id, inc int) (*models.Article, error)
	UpdateBody(ctx context.Context, id int, body string) (*models.Article, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	GetAllIDs(ctx context.Context) ([]int, error)
	BatchInsert(ctx context.Context, rows [][]any) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, id, inc int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	BatchInsert(ctx context.Context, rows [][]any) (int, error)
}

// AdminRepository holds whole-store operations used by seeding
type AdminRepository interface {
	Truncate(ctx context.Context) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Exists  ExistenceChecker
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Admin   AdminRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Exists:  NewExistenceRepo(db),
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Admin:   NewAdminRepo(db),
	}
}
