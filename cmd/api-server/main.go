package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"comiclib/database"
	"comiclib/internal/config"
	"comiclib/internal/handler"
	"comiclib/internal/middleware"
	"comiclib/internal/repository"
	"comiclib/internal/service"
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
		logger.Error("database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	comicBooks := handler.NewComicBookHandler(
		service.NewComicBookService(repository.NewComicBookRepo(db)))
	series := handler.NewSeriesHandler(
		service.NewSeriesService(repository.NewSeriesRepo(db)))
	artists := handler.NewArtistHandler(
		service.NewArtistService(repository.NewArtistRepo(db)))
	roles := handler.NewRoleHandler(
		service.NewRoleService(repository.NewRoleRepo(db)))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(context.Background(), rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	comicBooks.RegisterRoutes(api.Group("/comic-books"))
	series.RegisterRoutes(api.Group("/series"))
	artists.RegisterRoutes(api.Group("/artists"))
	roles.RegisterRoutes(api.Group("/roles"))

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.HTTPPort)
	logger.Info("server starting", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
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
