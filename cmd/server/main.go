package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storyloop/storyloop/internal/common/clock"
	"github.com/storyloop/storyloop/internal/config"
	"github.com/storyloop/storyloop/internal/handlers/ws"
	"github.com/storyloop/storyloop/internal/registry"
	storyRepo "github.com/storyloop/storyloop/internal/repositories/story"
	"github.com/storyloop/storyloop/internal/services/coordinator"
	"github.com/storyloop/storyloop/internal/services/scheduler"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize the story repository
	repo, err := storyRepo.NewRedis(&storyRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		logger.Error("failed to create story repository", "error", err)
		os.Exit(1)
	}

	// Initialize the session registry
	sessionRegistry := registry.New()

	// The websocket handler doubles as the push publisher; the coordinator
	// is wired in after construction to break the dependency cycle.
	handler, err := ws.New(&ws.Config{Logger: logger})
	if err != nil {
		logger.Error("failed to create websocket handler", "error", err)
		os.Exit(1)
	}

	coordSvc, err := coordinator.New(&coordinator.Config{
		StoryRepo: repo,
		Registry:  sessionRegistry,
		Publisher: handler,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create coordinator", "error", err)
		os.Exit(1)
	}
	handler.SetCoordinator(coordSvc)

	turnScheduler, err := scheduler.New(&scheduler.Config{
		Registry:  sessionRegistry,
		StoryRepo: repo,
		Publisher: handler,
		Clock:     systemClock,
		Interval:  cfg.TickInterval,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go turnScheduler.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", "error", err)
	}

	logger.Info("server has been shut down")
}
