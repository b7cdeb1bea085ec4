// Package main provides the entrypoint for the Plateful API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/api/middleware"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/events"
	"github.com/plateful/plateful/internal/favorite"
	"github.com/plateful/plateful/internal/foodfacts"
	"github.com/plateful/plateful/internal/foodfacts/openfoodfacts"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/summary"
	"github.com/plateful/plateful/internal/telemetry"
	"github.com/plateful/plateful/internal/token"
	"github.com/plateful/plateful/internal/user"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "plateful-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Plateful API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Initialize the access token verifier (tokens are minted by the
	// identity provider, never here)
	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "https://id.plateful.app"
	}

	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "plateful-api"
	}

	verifier := token.NewVerifier(token.VerifierConfig{
		SigningKey: signingKey,
		Issuer:     issuer,
		Audience:   audience,
	})
	log.Info().Str("issuer", issuer).Msg("token verifier initialized")

	// Initialize the meal-changed event publisher (optional; meals work
	// without it, summary snapshots just go stale until read)
	var notifier meal.ChangeNotifier
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID != "" {
		topicName := os.Getenv("PUBSUB_TOPIC")
		if topicName == "" {
			topicName = "meal-changed"
		}

		publisher, err := events.NewPublisher(ctx, events.PublisherConfig{
			ProjectID: projectID,
			TopicName: topicName,
			Logger:    log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close event publisher")
			}
		}()
		notifier = publisher
		log.Info().
			Str("project", projectID).
			Str("topic", topicName).
			Msg("event publisher initialized")
	} else {
		log.Warn().Msg("PUBSUB_PROJECT_ID not set - summary snapshots will not be refreshed")
	}

	// Initialize user repository and service
	userService := user.NewService(user.NewPostgresRepository(pool))
	log.Info().Msg("user service initialized")

	// Initialize goal repository and service
	goalService := goal.NewService(goal.NewPostgresRepository(pool))
	log.Info().Msg("goal service initialized")

	// Initialize meal repository and service
	mealService := meal.NewService(meal.ServiceConfig{
		Repository: meal.NewPostgresRepository(pool),
		Notifier:   notifier,
		Logger:     log,
	})
	log.Info().Msg("meal service initialized")

	// Initialize favorite repository and service
	favoriteService := favorite.NewService(favorite.ServiceConfig{
		Repository: favorite.NewPostgresRepository(pool),
		Meals:      mealService,
		Logger:     log,
	})
	log.Info().Msg("favorite service initialized")

	// Initialize summary service
	summaryService := summary.NewService(summary.ServiceConfig{
		Repository: summary.NewPostgresRepository(pool),
		Goals:      goalService,
		Meals:      mealService,
		Logger:     log,
	})
	log.Info().Msg("summary service initialized")

	// Initialize the Open Food Facts provider and service
	offClient := openfoodfacts.NewClient(openfoodfacts.ClientConfig{
		BaseURL:   os.Getenv("OPENFOODFACTS_BASE_URL"),
		UserAgent: os.Getenv("OPENFOODFACTS_USER_AGENT"),
		Logger:    log,
	})
	foodService := foodfacts.NewService(offClient, log)
	log.Info().Msg("food facts service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		TokenVerifier:   verifier,
		UserService:     userService,
		GoalService:     goalService,
		MealService:     mealService,
		FavoriteService: favoriteService,
		SummaryService:  summaryService,
		FoodService:     foodService,
		Pool:            pool,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
