package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// CreateComment handles POST /api/articles/:article_id/comments
// Body: {"username": "...", "body": "..."}
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.CreateComment(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	comment, err := h.services.Comment.UpdateCommentVotes(c.Request.Context(), c.Param("comment_id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.DeleteCommentByID(c.Request.Context(), c.Param("comment_id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
