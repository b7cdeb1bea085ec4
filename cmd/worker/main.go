// Package main provides the entrypoint for the Plateful background worker.
// It consumes meal-changed events and keeps daily summary snapshots fresh.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/summary"
	"github.com/plateful/plateful/internal/user"
	"github.com/plateful/plateful/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "plateful-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Plateful worker")

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID == "" {
		log.Fatal().Msg("PUBSUB_PROJECT_ID is required")
	}

	subscriptionName := os.Getenv("PUBSUB_SUBSCRIPTION")
	if subscriptionName == "" {
		subscriptionName = "meal-changed-snapshots"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Wire the services the snapshot job reads from and writes to. The
	// worker never publishes events itself, so the meal service gets no
	// notifier.
	userService := user.NewService(user.NewPostgresRepository(pool))
	goalService := goal.NewService(goal.NewPostgresRepository(pool))
	mealService := meal.NewService(meal.ServiceConfig{
		Repository: meal.NewPostgresRepository(pool),
		Logger:     log,
	})
	summaryService := summary.NewService(summary.ServiceConfig{
		Repository: summary.NewPostgresRepository(pool),
		Goals:      goalService,
		Meals:      mealService,
		Logger:     log,
	})

	snapshotJob := worker.NewSnapshotJob(worker.SnapshotJobConfig{
		Config:    worker.DefaultSnapshotConfig(),
		Summaries: summaryService,
		Users:     userService,
		Logger:    log,
	})

	handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
		ProjectID:        projectID,
		SubscriptionName: subscriptionName,
		SnapshotJob:      snapshotJob,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create pubsub handler")
	}
	defer func() {
		if closeErr := handler.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close pubsub handler")
		}
	}()

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		metrics := snapshotJob.Metrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":%q,"processed":%d,"failed":%d}`,
			Version, metrics.Processed, metrics.Failed)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Receive blocks until the context is cancelled
	receiveErr := make(chan error, 1)
	go func() {
		receiveErr <- handler.Start(ctx)
	}()

	// Wait for interrupt signal or receive failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("shutting down worker")
	case err := <-receiveErr:
		if err != nil {
			log.Error().Err(err).Msg("pubsub receive failed")
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	metrics := snapshotJob.Metrics()
	log.Info().
		Int64("processed", metrics.Processed).
		Int64("failed", metrics.Failed).
		Msg("worker stopped")
}
