package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

const commentColumns = "comment_id, article_id, author, body, votes, created_at"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC",
		articleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Create inserts a new comment and fills in its generated fields
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	stmt := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at
	`
	return r.db.QueryRowContext(ctx, stmt,
		comment.ArticleID, comment.Author, comment.Body,
	).Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt)
}

// IncrementVotes adds inc to the comment's votes, or returns nil when no
// comment has that id
func (r *commentRepo) IncrementVotes(ctx context.Context, id, inc int) (*models.Comment, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING "+commentColumns,
		inc, id,
	)
	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	return err
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "SELECT COUNT(*) FROM comments")
}

// BatchInsert loads formatted comment tuples using COPY
func (r *commentRepo) BatchInsert(ctx context.Context, rows [][]any) (int, error) {
	return copyRows(ctx, r.db, models.CommentSchema, rows)
}

func scanComment(s scanner) (*models.Comment, error) {
	var c models.Comment
	if err := s.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
