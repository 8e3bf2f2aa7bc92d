package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"apodhub/database"
	"apodhub/internal/config"
	"apodhub/internal/http-api/handler"
	"apodhub/internal/http-api/middleware"
	"apodhub/internal/http-api/repository"
	"apodhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db, logger)

	storage, err := service.NewFileStorageService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("could not set up file storage: %v", err)
	}

	commentRepo := repository.NewCommentRepository(db)
	commentService := service.NewCommentService(commentRepo, storage)
	likeService := service.NewLikeService(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	limiter := middleware.NewClientRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")
	handler.NewCommentHandler(commentService, likeService, storage).RegisterRoutes(api, limiter.Handler())
	handler.NewStatsHandler(commentService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
