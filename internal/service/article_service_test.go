package service_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestListArticles_Defaults(t *testing.T) {
	h := newTestHarness(t)

	list, err := h.services.Article.ListArticles(t.Context(), models.ArticleListParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	require.Len(t, list.Articles, 3)

	// newest first
	assert.Equal(t, 1, list.Articles[0].ArticleID)
	assert.Equal(t, 2, list.Articles[0].CommentCount)
	assert.Equal(t, 3, list.Articles[2].ArticleID)
	assert.Equal(t, 0, list.Articles[2].CommentCount)
}

func TestListArticles_TopicFilterAndTotal(t *testing.T) {
	h := newTestHarness(t)

	list, err := h.services.Article.ListArticles(t.Context(), models.ArticleListParams{Topic: "mitch", Limit: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)
	require.Len(t, list.Articles, 1)
	assert.Equal(t, "mitch", list.Articles[0].Topic)
}

func TestListArticles_TopicWithoutArticles(t *testing.T) {
	h := newTestHarness(t)

	list, err := h.services.Article.ListArticles(t.Context(), models.ArticleListParams{Topic: "paper"})
	require.NoError(t, err)
	assert.Empty(t, list.Articles)
	assert.NotNil(t, list.Articles)
	assert.Equal(t, 0, list.TotalCount)
}

func TestListArticles_Repeatable(t *testing.T) {
	h := newTestHarness(t)

	params := models.ArticleListParams{Topic: "mitch", SortBy: "votes", Order: "asc", Limit: "1", Page: "2"}
	first, err := h.services.Article.ListArticles(t.Context(), params)
	require.NoError(t, err)
	second, err := h.services.Article.ListArticles(t.Context(), params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Zero(t, h.store.WriteCount())
}

func TestListArticles_Paging(t *testing.T) {
	h := newTestHarness(t)

	list, err := h.services.Article.ListArticles(t.Context(), models.ArticleListParams{
		SortBy: "article_id", Order: "asc", Limit: "2", Page: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	require.Len(t, list.Articles, 1)
	assert.Equal(t, 3, list.Articles[0].ArticleID)

	list, err = h.services.Article.ListArticles(t.Context(), models.ArticleListParams{Page: "9"})
	require.NoError(t, err)
	assert.Empty(t, list.Articles)
	assert.Equal(t, 3, list.TotalCount)
}

func TestListArticles_SortByCommentCount(t *testing.T) {
	h := newTestHarness(t)

	list, err := h.services.Article.ListArticles(t.Context(), models.ArticleListParams{SortBy: "comment_count"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Articles[0].ArticleID)
	assert.Equal(t, "comment_count", h.articles.LastList.Sort.Name())
}

func TestListArticles_ValidationPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		params models.ArticleListParams
		status int
		msg    string
	}{
		{"missing topic beats everything", models.ArticleListParams{Topic: "nope", SortBy: "x", Order: "x", Limit: "x"}, 404, apperr.MsgNotFound},
		{"sort before order", models.ArticleListParams{SortBy: "password", Order: "sideways"}, 400, apperr.MsgUnknownSortColumn},
		{"order before paging", models.ArticleListParams{Order: "DESC", Limit: "-1"}, 400, apperr.MsgInvalidOrder},
		{"negative limit", models.ArticleListParams{Limit: "-1"}, 400, apperr.MsgInvalidQuery},
		{"non-numeric page", models.ArticleListParams{Page: "two"}, 400, apperr.MsgInvalidQuery},
		{"page zero", models.ArticleListParams{Page: "0"}, 400, apperr.MsgInvalidQuery},
		{"injection in sort", models.ArticleListParams{SortBy: "votes; DROP TABLE articles"}, 400, apperr.MsgUnknownSortColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)
			_, err := h.services.Article.ListArticles(t.Context(), tt.params)
			requireAppErr(t, err, tt.status, tt.msg)
		})
	}
}

func TestGetArticleByID(t *testing.T) {
	h := newTestHarness(t)

	article, err := h.services.Article.GetArticleByID(t.Context(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Living in the shadow of a great man", article.Title)
	assert.Equal(t, 2, article.CommentCount)

	_, err = h.services.Article.GetArticleByID(t.Context(), "banana")
	requireAppErr(t, err, 400, apperr.MsgArticleIDNotNumber)

	_, err = h.services.Article.GetArticleByID(t.Context(), "999")
	requireAppErr(t, err, 404, apperr.MsgArticleNotFound)

	_, err = h.services.Article.GetArticleByID(t.Context(), "99999999999")
	requireAppErr(t, err, 404, apperr.MsgArticleNotFound)
}

func TestUpdateArticle_Votes(t *testing.T) {
	h := newTestHarness(t)

	article, err := h.services.Article.UpdateArticle(t.Context(), "1", &models.UpdateArticleRequest{IncVotes: intPtr(-150)})
	require.NoError(t, err)
	assert.Equal(t, -50, article.Votes)
	assert.Equal(t, 2, article.CommentCount)
}

func TestUpdateArticle_VotesWinOverBody(t *testing.T) {
	h := newTestHarness(t)

	article, err := h.services.Article.UpdateArticle(t.Context(), "2", &models.UpdateArticleRequest{
		IncVotes: intPtr(1), Body: strPtr("replaced"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, article.Votes)
	assert.Equal(t, "Call me Mitchell.", article.Body)
}

func TestUpdateArticle_VotesOutOfRange(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.services.Article.UpdateArticle(t.Context(), "1", &models.UpdateArticleRequest{IncVotes: intPtr(math.MaxInt32 + 1)})
	requireAppErr(t, err, 400, apperr.MsgInvalidInput)
	assert.Zero(t, h.store.WriteCount())

	// bad id is still reported first
	_, err = h.services.Article.UpdateArticle(t.Context(), "banana", &models.UpdateArticleRequest{IncVotes: intPtr(math.MinInt32 - 1)})
	requireAppErr(t, err, 400, apperr.MsgArticleIDNotNumber)
}

func TestUpdateArticle_Body(t *testing.T) {
	h := newTestHarness(t)

	article, err := h.services.Article.UpdateArticle(t.Context(), "2", &models.UpdateArticleRequest{Body: strPtr("replaced")})
	require.NoError(t, err)
	assert.Equal(t, "replaced", article.Body)

	_, err = h.services.Article.UpdateArticle(t.Context(), "2", &models.UpdateArticleRequest{Body: strPtr("")})
	requireAppErr(t, err, 422, apperr.MsgUnprocessableBody)
}

func TestUpdateArticle_CheckOrder(t *testing.T) {
	h := newTestHarness(t)

	// empty body is reported before the bad id
	_, err := h.services.Article.UpdateArticle(t.Context(), "banana", &models.UpdateArticleRequest{})
	requireAppErr(t, err, 422, apperr.MsgUnprocessableBody)

	_, err = h.services.Article.UpdateArticle(t.Context(), "banana", &models.UpdateArticleRequest{IncVotes: intPtr(1)})
	requireAppErr(t, err, 400, apperr.MsgArticleIDNotNumber)

	_, err = h.services.Article.UpdateArticle(t.Context(), "999", &models.UpdateArticleRequest{IncVotes: intPtr(1)})
	requireAppErr(t, err, 404, apperr.MsgArticleNotFound)
}

func TestCreateArticle(t *testing.T) {
	h := newTestHarness(t)

	article, err := h.services.Article.CreateArticle(t.Context(), &models.CreateArticleRequest{
		Author: "lurker", Title: "New", Body: "Fresh", Topic: "paper",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, article.ArticleID)
	assert.Equal(t, 0, article.Votes)
	assert.Equal(t, 0, article.CommentCount)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestCreateArticle_ReadBack(t *testing.T) {
	h := newTestHarness(t)

	req := &models.CreateArticleRequest{Author: "icellusedkars", Title: "Read me back", Body: "Every field survives", Topic: "cats"}
	created, err := h.services.Article.CreateArticle(t.Context(), req)
	require.NoError(t, err)

	got, err := h.services.Article.GetArticleByID(t.Context(), strconv.Itoa(created.ArticleID))
	require.NoError(t, err)
	assert.Equal(t, created.ArticleID, got.ArticleID)
	assert.Equal(t, req.Author, got.Author)
	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Body, got.Body)
	assert.Equal(t, req.Topic, got.Topic)
	assert.Equal(t, 0, got.Votes)
	assert.Equal(t, 0, got.CommentCount)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateArticle_ColumnWidths(t *testing.T) {
	long := strings.Repeat("x", 256)
	tests := []struct {
		name string
		req  models.CreateArticleRequest
		msg  string
	}{
		{"title too long", models.CreateArticleRequest{Author: "lurker", Title: long, Body: "b", Topic: "paper"}, apperr.MsgInvalidInput},
		{"author too long", models.CreateArticleRequest{Author: long, Title: "t", Body: "b", Topic: "paper"}, apperr.MsgInvalidInput},
		{"topic too long", models.CreateArticleRequest{Author: "lurker", Title: "t", Body: "b", Topic: long}, apperr.MsgInvalidInput},
		{"missing field wins", models.CreateArticleRequest{Author: long, Title: "t", Topic: "paper"}, apperr.MsgMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)
			_, err := h.services.Article.CreateArticle(t.Context(), &tt.req)
			requireAppErr(t, err, 400, tt.msg)
			assert.Empty(t, h.exists.Calls)
			assert.Zero(t, h.store.WriteCount())
		})
	}
}

func TestCreateArticle_CheckOrder(t *testing.T) {
	tests := []struct {
		name   string
		req    models.CreateArticleRequest
		status int
		msg    string
	}{
		{"missing field before lookups", models.CreateArticleRequest{Author: "ghost", Title: "t", Topic: "nope"}, 400, apperr.MsgMissingFields},
		{"author before topic", models.CreateArticleRequest{Author: "ghost", Title: "t", Body: "b", Topic: "nope"}, 404, apperr.MsgUserNotFound},
		{"unknown topic", models.CreateArticleRequest{Author: "lurker", Title: "t", Body: "b", Topic: "nope"}, 404, apperr.MsgTopicNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)
			_, err := h.services.Article.CreateArticle(t.Context(), &tt.req)
			requireAppErr(t, err, tt.status, tt.msg)
			assert.Zero(t, h.store.WriteCount())
		})
	}
}

func TestCreateArticle_NoLookupWhenInvalid(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.services.Article.CreateArticle(t.Context(), &models.CreateArticleRequest{})
	requireAppErr(t, err, 400, apperr.MsgMissingFields)
	assert.Empty(t, h.exists.Calls)
}

func TestDeleteArticleByID(t *testing.T) {
	h := newTestHarness(t)

	require.NoError(t, h.services.Article.DeleteArticleByID(t.Context(), "1"))
	assert.NotContains(t, h.store.Articles, 1)
	assert.Empty(t, h.store.Comments, "comments follow their article")

	err := h.services.Article.DeleteArticleByID(t.Context(), "1")
	requireAppErr(t, err, 404, apperr.MsgArticleDoesNotExist)

	err = h.services.Article.DeleteArticleByID(t.Context(), "one")
	requireAppErr(t, err, 400, apperr.MsgArticleIDNotNumber)
}

func TestDeleteArticleByID_NoWriteWhenMissing(t *testing.T) {
	h := newTestHarness(t)

	err := h.services.Article.DeleteArticleByID(t.Context(), "42")
	requireAppErr(t, err, 404, apperr.MsgArticleDoesNotExist)
	assert.Zero(t, h.store.WriteCount())
}

func TestListArticleComments(t *testing.T) {
	h := newTestHarness(t)

	comments, err := h.services.Article.ListArticleComments(t.Context(), "1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Body)

	comments, err = h.services.Article.ListArticleComments(t.Context(), "2")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)

	_, err = h.services.Article.ListArticleComments(t.Context(), "x")
	requireAppErr(t, err, 400, apperr.MsgArticleIDNotNumber)

	_, err = h.services.Article.ListArticleComments(t.Context(), "999")
	requireAppErr(t, err, 404, apperr.MsgArticleNotFound)
}

func TestArticleService_StorageFailureIsInternal(t *testing.T) {
	h := newTestHarness(t)
	h.store.Err = errors.New("connection reset")

	_, err := h.services.Article.GetArticleByID(t.Context(), "1")
	require.Error(t, err)
	_, isDomain := apperr.As(err)
	assert.False(t, isDomain)
	assert.ErrorIs(t, err, h.store.Err)
}
