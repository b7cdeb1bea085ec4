// Package api provides the HTTP API for Plateful.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api/handler"
	"github.com/plateful/plateful/internal/api/middleware"
	"github.com/plateful/plateful/internal/favorite"
	"github.com/plateful/plateful/internal/foodfacts"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/summary"
	"github.com/plateful/plateful/internal/token"
	"github.com/plateful/plateful/internal/user"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	TokenVerifier *token.Verifier

	UserService     *user.Service
	GoalService     *goal.Service
	MealService     *meal.Service
	FavoriteService *favorite.Service
	SummaryService  *summary.Service
	FoodService     *foodfacts.Service

	// Pool is pinged by the readiness endpoint; nil skips the check.
	Pool *pgxpool.Pool
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "plateful-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Pool)
	userHandler := handler.NewUserHandler(cfg.UserService)
	goalHandler := handler.NewGoalHandler(cfg.GoalService)
	mealHandler := handler.NewMealHandler(cfg.MealService)
	favoriteHandler := handler.NewFavoriteHandler(cfg.FavoriteService)
	summaryHandler := handler.NewSummaryHandler(cfg.SummaryService, cfg.UserService)
	foodHandler := handler.NewFoodHandler(cfg.FoodService)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.TokenVerifier)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Packaged food lookups proxy an external database - strict rate
		// limiting, public (barcode scans happen before login too)
		r.With(expensiveRateLimit).Get("/foods/{barcode}", foodHandler.GetFoodFacts)

		// Me endpoints (authenticated) - user-based rate limiting
		r.Route("/me", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RateLimitByUser(middleware.StandardRateLimit)) // 100 req/min per user

			// Profile
			r.Get("/profile", userHandler.GetProfile)
			r.Put("/profile", userHandler.UpdateProfile)

			// Goal profile
			r.Route("/goal", func(r chi.Router) {
				r.Get("/", goalHandler.GetGoal)
				r.Put("/", goalHandler.UpsertGoal)
				r.Get("/presets", goalHandler.GetPresets)
			})

			// Meals
			r.Route("/meals", func(r chi.Router) {
				r.Get("/", mealHandler.ListMeals)
				r.Post("/", mealHandler.CreateMeal)
				r.Route("/{mealId}", func(r chi.Router) {
					r.Get("/", mealHandler.GetMeal)
					r.Put("/", mealHandler.UpdateMeal)
					r.Delete("/", mealHandler.DeleteMeal)
				})
			})
			r.Post("/meals:fromFavorite", favoriteHandler.LogFromFavorite)

			// Favorites
			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favoriteHandler.ListFavorites)
				r.Post("/", favoriteHandler.CreateFavorite)
				r.Delete("/{favoriteId}", favoriteHandler.DeleteFavorite)
			})

			// Daily summary
			r.Get("/summary", summaryHandler.GetDailySummary)
		})
	})

	return r
}
