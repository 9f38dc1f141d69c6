package models

import (
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Article represents a single article with its computed comment count
type Article struct {
	ArticleID    int       `json:"article_id" db:"article_id"`
	Title        string    `json:"title" db:"title"`
	Body         string    `json:"body" db:"body"`
	Topic        string    `json:"topic" db:"topic"`
	Author       string    `json:"author" db:"author"`
	Votes        int       `json:"votes" db:"votes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is one row of the article listing (no body)
type ArticleSummary struct {
	Author       string    `json:"author" db:"author"`
	Title        string    `json:"title" db:"title"`
	ArticleID    int       `json:"article_id" db:"article_id"`
	Topic        string    `json:"topic" db:"topic"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Votes        int       `json:"votes" db:"votes"`
	CommentCount int       `json:"comment_count" db:"comment_count"`
}

// ArticleList is a page of articles plus the size of the whole filtered set
type ArticleList struct {
	Articles   []*ArticleSummary `json:"articles"`
	TotalCount int               `json:"total_count"`
}

// ArticleListParams are the raw listing parameters as received from the
// client. Empty strings mean "use the default".
type ArticleListParams struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
	Limit  string `form:"limit"`
	Page   string `form:"p"`
}

// CreateArticleRequest is the body of POST /api/articles
type CreateArticleRequest struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Topic  string `json:"topic"`
}

// Validate checks required fields and the column widths of the articles
// table.
func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.Topic, validation.Required, validation.RuneLength(1, 50)),
	)
}

// UpdateArticleRequest is the body of PATCH /api/articles/:article_id.
// IncVotes and Body are alternative update paths; IncVotes wins when both
// are present.
type UpdateArticleRequest struct {
	IncVotes *int    `json:"inc_votes"`
	Body     *string `json:"body"`
}

// Validate rejects a vote increment that does not fit the INT votes column.
// An absent increment is not checked here.
func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IncVotes, voteRange...),
	)
}

var voteRange = []validation.Rule{
	validation.Min(math.MinInt32),
	validation.Max(math.MaxInt32),
}
