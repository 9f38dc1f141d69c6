package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /api/articles
// Query: sort_by, order, topic, limit, p
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.Error(badBody)
		return
	}

	list, err := h.services.Article.ListArticles(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.GetArticleByID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticle handles PATCH /api/articles/:article_id
// Body: {"inc_votes": n} or {"body": "..."}
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	article, err := h.services.Article.UpdateArticle(c.Request.Context(), c.Param("article_id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedArticle": article})
}

// DeleteArticle handles DELETE /api/articles/:article_id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.services.Article.DeleteArticleByID(c.Request.Context(), c.Param("article_id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *ArticleHandler) ListComments(c *gin.Context) {
	comments, err := h.services.Article.ListArticleComments(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
