package query

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SeparatesTokensFromArgs(t *testing.T) {
	col, err := ParseSortColumn("votes")
	require.NoError(t, err)
	dir, err := ParseDirection("asc")
	require.NoError(t, err)
	five, _ := CountOf(5)

	var b Builder
	b.SQL("SELECT * FROM ").Ident(mustIdent(t, "articles")).
		SQL(" WHERE topic = ").Arg("cats").
		SQL(" AND author = ").Arg("rogersop").
		OrderBy(col, dir).Limit(five).Offset(five)

	stmt, args := b.Build()
	assert.Equal(t, "SELECT * FROM articles WHERE topic = $1 AND author = $2 ORDER BY articles.votes ASC LIMIT 5 OFFSET 5", stmt)
	assert.Equal(t, []any{"cats", "rogersop"}, args)
}

func TestBuilder_BuildCopiesArgs(t *testing.T) {
	var b Builder
	b.SQL("SELECT ").Arg(1)
	_, args := b.Build()
	args[0] = 99

	_, again := b.Build()
	assert.Equal(t, []any{1}, again)
}

func TestParseIdent(t *testing.T) {
	for _, name := range []string{"topics", "users", "articles", "comments", "slug", "username", "article_id", "comment_id"} {
		id, err := ParseIdent(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, id.String())
	}

	_, err := ParseIdent("users; DROP TABLE users")
	assert.ErrorIs(t, err, ErrUnknownIdent)
	_, err = ParseIdent("password")
	assert.ErrorIs(t, err, ErrUnknownIdent)
}

func TestParseSortColumn_Whitelist(t *testing.T) {
	for name := range sortColumns {
		col, err := ParseSortColumn(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, col.Name())
	}

	for _, bad := range []string{"", "banana", "body", "TITLE", "votes desc", "1", "comment_count;"} {
		_, err := ParseSortColumn(bad)
		assert.ErrorIs(t, err, ErrUnknownSortColumn, bad)
	}
}

func TestParseDirection(t *testing.T) {
	asc, err := ParseDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, "ASC", asc.String())

	for _, bad := range []string{"ASC", "any", "", "desc ", "up"} {
		_, err := ParseDirection(bad)
		assert.ErrorIs(t, err, ErrInvalidDirection, bad)
	}
}

func TestParseCount(t *testing.T) {
	c, err := ParseCount("25")
	require.NoError(t, err)
	assert.Equal(t, 25, c.Int())

	for _, bad := range []string{"-1", "ten", "2.5", "", "1e3", "0x10"} {
		_, err := ParseCount(bad)
		assert.ErrorIs(t, err, ErrInvalidCount, bad)
	}
}

func TestOffset(t *testing.T) {
	page, _ := CountOf(3)
	limit, _ := CountOf(10)
	off, err := Offset(page, limit)
	require.NoError(t, err)
	assert.Equal(t, 20, off.Int())

	zero, _ := CountOf(0)
	_, err = Offset(zero, limit)
	assert.ErrorIs(t, err, ErrInvalidCount)

	huge, _ := CountOf(math.MaxInt)
	_, err = Offset(huge, limit)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestNewArticleList_Defaults(t *testing.T) {
	q, err := NewArticleList("", "", "", "", "")
	require.NoError(t, err)

	stmt, args := q.Select()
	assert.Equal(t,
		"SELECT articles.author, articles.title, articles.article_id, articles.topic, "+
			"articles.created_at, articles.votes, COUNT(comments.article_id)::INT AS comment_count "+
			"FROM articles LEFT JOIN comments ON articles.article_id = comments.article_id "+
			"GROUP BY articles.article_id ORDER BY articles.created_at DESC, articles.article_id ASC LIMIT 10 OFFSET 0",
		stmt)
	assert.Empty(t, args)

	count, countArgs := q.Count()
	assert.Equal(t, "SELECT COUNT(*)::INT FROM articles", count)
	assert.Empty(t, countArgs)
}

func TestNewArticleList_TopicIsBound(t *testing.T) {
	q, err := NewArticleList("mitch' OR '1'='1", "comment_count", "asc", "5", "2")
	require.NoError(t, err)

	stmt, args := q.Select()
	assert.Contains(t, stmt, "WHERE articles.topic = $1 GROUP BY")
	assert.Contains(t, stmt, "ORDER BY comment_count ASC, articles.article_id ASC LIMIT 5 OFFSET 5")
	assert.NotContains(t, stmt, "mitch")
	assert.Equal(t, []any{"mitch' OR '1'='1"}, args)

	count, countArgs := q.Count()
	assert.Equal(t, "SELECT COUNT(*)::INT FROM articles WHERE articles.topic = $1", count)
	assert.Equal(t, args, countArgs)
}

func TestNewArticleList_ValidationOrder(t *testing.T) {
	tests := []struct {
		name                       string
		sortBy, order, limit, page string
		want                       error
	}{
		{"bad sort wins over everything", "banana", "any", "x", "y", ErrUnknownSortColumn},
		{"bad order wins over paging", "title", "any", "x", "y", ErrInvalidDirection},
		{"bad limit", "title", "asc", "x", "1", ErrInvalidCount},
		{"bad page", "title", "asc", "10", "two", ErrInvalidCount},
		{"negative limit", "", "", "-10", "", ErrInvalidCount},
		{"zero page", "", "", "", "0", ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArticleList("cats", tt.sortBy, tt.order, tt.limit, tt.page)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewArticleList_PagingCombinations(t *testing.T) {
	for limit := 0; limit <= 12; limit += 4 {
		for page := 1; page <= 3; page++ {
			q, err := NewArticleList("", "", "", strconv.Itoa(limit), strconv.Itoa(page))
			require.NoError(t, err)
			assert.Equal(t, limit, q.Limit.Int())
			assert.Equal(t, (page-1)*limit, q.Offset.Int())
		}
	}
}

func TestExists(t *testing.T) {
	stmt, args := Exists(mustIdent(t, "users"), mustIdent(t, "username"), "butter_bridge")
	assert.Equal(t, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", stmt)
	assert.Equal(t, []any{"butter_bridge"}, args)
}

func mustIdent(t *testing.T, name string) Ident {
	t.Helper()
	id, err := ParseIdent(name)
	require.NoError(t, err, name)
	return id
}
