package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// Pinger reports database reachability and pool usage
type Pinger interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router. db may be nil, in which
// case /health reports only the process and /metrics omits pool stats.
func NewRouter(services *service.Services, db Pinger, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(errorMiddleware(log))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	topicHandler := NewTopicHandler(services)
	userHandler := NewUserHandler(services)

	// Health check
	router.GET("/health", healthCheck(db))
	router.GET("/metrics", metricsHandler(services, db))

	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"msg": "All OK from API Router"})
		})

		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:username", userHandler.GetUser)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateArticle)
			articles.DELETE("/:article_id", articleHandler.DeleteArticle)
			articles.GET("/:article_id/comments", articleHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:comment_id", commentHandler.UpdateComment)
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Invalid URL"})
	})

	return router
}

// healthCheck returns the health status
func healthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		database := "unchecked"
		if db != nil {
			database = "up"
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				status, code, database = "unhealthy", http.StatusServiceUnavailable, "down"
			}
		}

		c.JSON(code, gin.H{
			"status":    status,
			"database":  database,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-api",
		})
	}
}

// metricsHandler returns row counts and connection pool usage
func metricsHandler(services *service.Services, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.Stats.Counts(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		body := gin.H{
			"database":  stats,
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if db != nil {
			pool := db.Stats()
			body["pool"] = gin.H{
				"open_connections": pool.OpenConnections,
				"in_use":           pool.InUse,
				"idle":             pool.Idle,
				"wait_count":       pool.WaitCount,
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
