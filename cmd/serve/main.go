// Command serve exposes article and image generation over HTTP:
//
//	POST /api/articles         generate an article, JSON response
//	POST /api/articles/bundle  generate an article, zip download
//	POST /api/images           generate one standalone image
//	GET  /healthz              liveness probe
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"articleforge/client"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	c := client.New(client.Config{
		APIKey:         cfg.APIKey,
		ChatModel:      cfg.ChatModel,
		ImageModel:     cfg.ImageModel,
		BaseURL:        cfg.BaseURL,
		ArticleTimeout: cfg.ArticleTimeout,
		ImageTimeout:   cfg.ImageTimeout,
	})

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	h := &Handler{client: c, log: logger}
	engine.GET("/healthz", h.Health)
	api := engine.Group("/api")
	{
		api.POST("/articles", h.GenerateArticle)
		api.POST("/articles/bundle", h.GenerateBundle)
		api.POST("/images", h.GenerateImage)
	}

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     engine,
		ReadTimeout: 30 * time.Second,
		// Article generation can legitimately run for minutes.
		WriteTimeout: cfg.ArticleTimeout + cfg.ImageTimeout,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("model", cfg.ChatModel))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-Id", requestID)
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
