package service_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	h := newTestHarness(t)

	comment, err := h.services.Comment.CreateComment(t.Context(), "2", &models.CreateCommentRequest{
		Username: "lurker", Body: "first!",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, comment.CommentID)
	assert.Equal(t, 2, comment.ArticleID)
	assert.Equal(t, "lurker", comment.Author)
	assert.Equal(t, 0, comment.Votes)
	assert.Equal(t, base.Add(24*time.Hour), comment.CreatedAt)

	article, err := h.services.Article.GetArticleByID(t.Context(), "2")
	require.NoError(t, err)
	assert.Equal(t, 1, article.CommentCount)
}

func TestCreateComment_CheckOrder(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		req    models.CreateCommentRequest
		status int
		msg    string
	}{
		{"non-numeric id", "abc", models.CreateCommentRequest{}, 400, apperr.MsgArticleIDNotNumber},
		{"missing body", "1", models.CreateCommentRequest{Username: "lurker"}, 400, apperr.MsgMissingFields},
		{"missing username", "1", models.CreateCommentRequest{Body: "hi"}, 400, apperr.MsgMissingFields},
		{"username too long", "1", models.CreateCommentRequest{Username: strings.Repeat("u", 256), Body: "hi"}, 400, apperr.MsgInvalidInput},
		{"user checked before article", "999", models.CreateCommentRequest{Username: "ghost", Body: "hi"}, 404, apperr.MsgUserNotFound},
		{"missing article", "999", models.CreateCommentRequest{Username: "lurker", Body: "hi"}, 404, apperr.MsgArticleRefNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)
			_, err := h.services.Comment.CreateComment(t.Context(), tt.id, &tt.req)
			requireAppErr(t, err, tt.status, tt.msg)
			assert.Zero(t, h.store.WriteCount())
		})
	}
}

func TestUpdateCommentVotes(t *testing.T) {
	h := newTestHarness(t)

	comment, err := h.services.Comment.UpdateCommentVotes(t.Context(), "1", &models.UpdateCommentRequest{IncVotes: intPtr(-20)})
	require.NoError(t, err)
	assert.Equal(t, -4, comment.Votes)

	comment, err = h.services.Comment.UpdateCommentVotes(t.Context(), "1", &models.UpdateCommentRequest{IncVotes: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, -4, comment.Votes)
}

func TestUpdateCommentVotes_CheckOrder(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.services.Comment.UpdateCommentVotes(t.Context(), "x", &models.UpdateCommentRequest{})
	requireAppErr(t, err, 400, apperr.MsgInvalidInput)

	_, err = h.services.Comment.UpdateCommentVotes(t.Context(), "x", &models.UpdateCommentRequest{IncVotes: intPtr(1)})
	requireAppErr(t, err, 400, apperr.MsgCommentIDNotNumber)

	_, err = h.services.Comment.UpdateCommentVotes(t.Context(), "404", &models.UpdateCommentRequest{IncVotes: intPtr(1)})
	requireAppErr(t, err, 404, apperr.MsgCommentNotFound)
}

func TestUpdateCommentVotes_OutOfRange(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.services.Comment.UpdateCommentVotes(t.Context(), "1", &models.UpdateCommentRequest{IncVotes: intPtr(math.MaxInt32 + 1)})
	requireAppErr(t, err, 400, apperr.MsgInvalidInput)
	assert.Zero(t, h.store.WriteCount())
}

func TestUpdateCommentVotes_Overflow(t *testing.T) {
	h := newTestHarness(t)

	// comment 1 starts at 16 votes
	_, err := h.services.Comment.UpdateCommentVotes(t.Context(), "1", &models.UpdateCommentRequest{IncVotes: intPtr(math.MaxInt32)})
	require.Error(t, err)
	_, isDomain := apperr.As(err)
	assert.False(t, isDomain, "overflow surfaces as the storage error")
	assert.Equal(t, 16, h.store.Comments[1].Votes)
}

func TestDeleteCommentByID(t *testing.T) {
	h := newTestHarness(t)

	require.NoError(t, h.services.Comment.DeleteCommentByID(t.Context(), "1"))
	assert.NotContains(t, h.store.Comments, 1)
	assert.Contains(t, h.store.Comments, 2)

	err := h.services.Comment.DeleteCommentByID(t.Context(), "1")
	requireAppErr(t, err, 404, apperr.MsgCommentDoesNotExist)

	err = h.services.Comment.DeleteCommentByID(t.Context(), "1.5")
	requireAppErr(t, err, 400, apperr.MsgCommentIDNotNumber)
}
