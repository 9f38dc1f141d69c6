package query

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/news-api/internal/models"
)

var (
	ErrUnknownIdent      = errors.New("unknown identifier")
	ErrUnknownSortColumn = errors.New("unknown sort column")
	ErrInvalidDirection  = errors.New("invalid sort direction")
	ErrInvalidCount      = errors.New("invalid count")
)

// Structural tokens are SQL syntax that cannot travel as a bound
// parameter. Each type below has an unexported field so the only way to
// obtain one is through its parser, which checks the value against a
// closed set or a numeric range.

// Ident is a table or column name known to the schema.
type Ident struct{ name string }

func (i Ident) String() string { return i.name }

// SortColumn is an article listing column, already qualified for the
// aggregate query.
type SortColumn struct {
	name string
	expr string
}

func (c SortColumn) Name() string { return c.name }

// Direction is ASC or DESC.
type Direction struct{ keyword string }

func (d Direction) String() string { return d.keyword }

// Count is a non-negative integer suitable for LIMIT and OFFSET.
type Count struct{ n int }

func (c Count) Int() int { return c.n }

var knownIdents = buildIdents()

func buildIdents() map[string]struct{} {
	idents := map[string]struct{}{
		"article_id": {},
		"comment_id": {},
	}
	for _, s := range models.SeedOrder {
		idents[s.Table] = struct{}{}
		for _, c := range s.Columns {
			idents[c] = struct{}{}
		}
	}
	return idents
}

// ParseIdent accepts only table and column names declared in the models
// package schemas.
func ParseIdent(name string) (Ident, error) {
	if _, ok := knownIdents[name]; !ok {
		return Ident{}, ErrUnknownIdent
	}
	return Ident{name: name}, nil
}

// sortColumns is the listing whitelist. comment_count is the alias of the
// aggregate and is left unqualified.
var sortColumns = map[string]string{
	"author":        "articles.author",
	"title":         "articles.title",
	"article_id":    "articles.article_id",
	"topic":         "articles.topic",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

// ParseSortColumn accepts only the listing columns in sortColumns.
func ParseSortColumn(s string) (SortColumn, error) {
	expr, ok := sortColumns[s]
	if !ok {
		return SortColumn{}, ErrUnknownSortColumn
	}
	return SortColumn{name: s, expr: expr}, nil
}

// ParseDirection accepts exactly "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "asc", "desc":
		return Direction{keyword: strings.ToUpper(s)}, nil
	default:
		return Direction{}, ErrInvalidDirection
	}
}

// ParseCount accepts the decimal representation of a non-negative integer.
func ParseCount(s string) (Count, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Count{}, ErrInvalidCount
	}
	return CountOf(n)
}

// CountOf wraps an integer that is already known, rejecting negatives.
func CountOf(n int) (Count, error) {
	if n < 0 {
		return Count{}, ErrInvalidCount
	}
	return Count{n: n}, nil
}

// Offset returns (page-1)*limit for a 1-based page.
func Offset(page, limit Count) (Count, error) {
	if page.n < 1 {
		return Count{}, ErrInvalidCount
	}
	if limit.n > 0 && page.n-1 > math.MaxInt/limit.n {
		return Count{}, ErrInvalidCount
	}
	return Count{n: (page.n - 1) * limit.n}, nil
}
