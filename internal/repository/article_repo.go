package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/query"
)

const selectArticleByID = `
	SELECT articles.article_id, articles.title, articles.body, articles.topic,
		articles.author, articles.votes, articles.created_at,
		COUNT(comments.article_id)::INT AS comment_count
	FROM articles
	LEFT JOIN comments ON articles.article_id = comments.article_id
	WHERE articles.article_id = $1
	GROUP BY articles.article_id
`

// updateArticle wraps an UPDATE ... RETURNING so the returned row carries
// the same computed comment_count as a read.
func updateArticle(set string) string {
	return `
		WITH updated AS (
			UPDATE articles SET ` + set + ` WHERE article_id = $2
			RETURNING article_id, title, body, topic, author, votes, created_at
		)
		SELECT updated.article_id, updated.title, updated.body, updated.topic,
			updated.author, updated.votes, updated.created_at,
			(SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
		FROM updated
	`
}

var (
	incrementArticleVotes = updateArticle("votes = votes + $1")
	replaceArticleBody    = updateArticle("body = $1")
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List runs the aggregate listing query for a validated request
func (r *articleRepo) List(ctx context.Context, q *query.ArticleList) ([]*models.ArticleSummary, error) {
	stmt, args := q.Select()
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// CountMatching counts the articles matching the request's filter,
// regardless of its page
func (r *articleRepo) CountMatching(ctx context.Context, q *query.ArticleList) (int, error) {
	stmt, args := q.Count()
	var count int
	err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&count)
	return count, err
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	return r.one(ctx, selectArticleByID, id)
}

// Create inserts a new article and fills in its generated fields
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	stmt := `
		INSERT INTO articles (title, body, topic, author)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, votes, created_at
	`
	err := r.db.QueryRowContext(ctx, stmt,
		article.Title, article.Body, article.Topic, article.Author,
	).Scan(&article.ArticleID, &article.Votes, &article.CreatedAt)
	if err != nil {
		return err
	}
	article.CommentCount = 0
	return nil
}

// IncrementVotes adds inc (possibly negative) to the article's votes in a
// single statement
func (r *articleRepo) IncrementVotes(ctx context.Context, id, inc int) (*models.Article, error) {
	return r.one(ctx, incrementArticleVotes, inc, id)
}

// UpdateBody replaces the article body
func (r *articleRepo) UpdateBody(ctx context.Context, id int, body string) (*models.Article, error) {
	return r.one(ctx, replaceArticleBody, body, id)
}

// Delete removes the article; its comments go with it through the
// ON DELETE CASCADE foreign key
func (r *articleRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE article_id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "SELECT COUNT(*) FROM articles")
}

// GetAllIDs returns article ids in insertion order
func (r *articleRepo) GetAllIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT article_id FROM articles ORDER BY article_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// BatchInsert loads formatted article tuples using COPY
func (r *articleRepo) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	return copyRows(ctx, r.db, models.ArticleSchema, rows)
}

func (r *articleRepo) one(ctx context.Context, stmt string, args ...any) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx, stmt, args...).Scan(
		&a.ArticleID, &a.Title, &a.Body, &a.Topic,
		&a.Author, &a.Votes, &a.CreatedAt, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
