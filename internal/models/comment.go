package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCommentRequest is the body of POST /api/articles/:article_id/comments
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// Validate checks required fields and the author column width.
func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.Body, validation.Required),
	)
}

// UpdateCommentRequest is the body of PATCH /api/comments/:comment_id
type UpdateCommentRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// Validate rejects a vote increment that does not fit the INT votes column.
func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IncVotes, voteRange...),
	)
}
