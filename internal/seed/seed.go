package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// Result reports how many rows were loaded per table
type Result struct {
	Topics     int           `json:"topics"`
	Users      int           `json:"users"`
	Articles   int           `json:"articles"`
	Comments   int           `json:"comments"`
	DurationMs int64         `json:"duration_ms"`
	Duration   time.Duration `json:"-"`
}

// Seeder empties the store and loads a dataset into it
type Seeder struct {
	repos     *repository.Repositories
	batchSize int
	log       zerolog.Logger
}

// New creates a Seeder that inserts at most batchSize rows per COPY
func New(repos *repository.Repositories, batchSize int, log zerolog.Logger) *Seeder {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Seeder{
		repos:     repos,
		batchSize: batchSize,
		log:       log.With().Str("component", "seed").Logger(),
	}
}

// Run validates the dataset, truncates every table, then inserts topics,
// users, articles and comments in that order. Comment fixtures reference
// articles by their 1-based position in the article fixtures. An invalid
// dataset leaves the store untouched.
func (s *Seeder) Run(ctx context.Context, ds *Dataset) (*Result, error) {
	start := time.Now()
	var res Result

	if err := Validate(ds); err != nil {
		return nil, err
	}

	if err := s.repos.Admin.Truncate(ctx); err != nil {
		return nil, fmt.Errorf("failed to truncate tables: %w", err)
	}

	var err error
	if res.Topics, err = s.insert(ctx, models.TopicSchema, ds.Topics, s.repos.Topic.BatchInsert); err != nil {
		return nil, err
	}
	if res.Users, err = s.insert(ctx, models.UserSchema, ds.Users, s.repos.User.BatchInsert); err != nil {
		return nil, err
	}

	articles, err := ConvertTimestamps(SetDefault(ds.Articles, "votes", 0), "created_at")
	if err != nil {
		return nil, err
	}
	if res.Articles, err = s.insert(ctx, models.ArticleSchema, articles, s.repos.Article.BatchInsert); err != nil {
		return nil, err
	}

	comments, err := s.resolveComments(ctx, ds.Comments)
	if err != nil {
		return nil, err
	}
	if res.Comments, err = s.insert(ctx, models.CommentSchema, comments, s.repos.Comment.BatchInsert); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	res.DurationMs = res.Duration.Milliseconds()
	s.log.Info().
		Int("topics", res.Topics).
		Int("users", res.Users).
		Int("articles", res.Articles).
		Int("comments", res.Comments).
		Int64("duration_ms", res.DurationMs).
		Msg("Seeding completed")
	return &res, nil
}

// resolveComments swaps each comment's positional article reference for
// the id the article received on insert
func (s *Seeder) resolveComments(ctx context.Context, records []Record) ([]Record, error) {
	comments, err := ConvertTimestamps(SetDefault(records, "votes", 0), "created_at")
	if err != nil {
		return nil, err
	}
	comments, err = AddKeys(comments, "article_id", comments)
	if err != nil {
		return nil, err
	}

	ids, err := s.repos.Article.GetAllIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read article ids: %w", err)
	}
	for i, c := range comments {
		idx := c["article_id"].(int)
		if idx < 0 || idx >= len(ids) {
			return nil, fmt.Errorf("comment %d references article %d of %d", i, idx+1, len(ids))
		}
		c["article_id"] = ids[idx]
	}
	return comments, nil
}

func (s *Seeder) insert(ctx context.Context, schema models.Schema, records []Record, batch func(context.Context, [][]any) (int, error)) (int, error) {
	rows := FormatData(records, schema.Columns)
	total := 0
	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))
		n, err := batch(ctx, rows[start:end])
		if err != nil {
			return total, fmt.Errorf("failed to insert %s rows %d-%d: %w", schema.Table, start, end, err)
		}
		total += n
	}
	s.log.Debug().Str("table", schema.Table).Int("rows", total).Msg("Table seeded")
	return total, nil
}
